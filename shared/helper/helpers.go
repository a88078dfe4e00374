package helper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnexpectedType is returned when a raw value does not hold the requested type.
var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf asserts the result of a getter to T.
// Getter errors are wrapped; a type mismatch yields ErrUnexpectedType.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, res, zero)
	}

	return val, nil
}

var ErrMaxAttempts = errors.New("max attempts reached")

// Retry calls fn until it succeeds or maxAttempts calls have failed.
// The last failure is wrapped together with ErrMaxAttempts.
func Retry(maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, maxAttempts, err)
}

// EncodeKey renders a key as "%T:%#v". Pointer and channel keys render their
// address instead, so they compare by identity exactly as == does.
func EncodeKey(key any) string {
	switch v := reflect.ValueOf(key); v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%T:%#x", key, v.Pointer())
	default:
		return fmt.Sprintf("%T:%#v", key, key)
	}
}
