package purefn

import (
	"github.com/on-the-ground/memo_ive_go/pure"
)

// TableizeI1O1 turns a pure function into a lazy table: every distinct input
// is computed once and remembered for the life of the returned closure.
func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	opts ...pure.Option,
) func(I1) O1 {
	memo := pure.NewKeyed(infallible(pureFn), opts...)
	return func(i1 I1) O1 {
		o1, _ := memo.Call(i1)
		return o1
	}
}

// TableizeI1O2 is TableizeI1O1 for functions that may fail.
// Errors are passed through and never remembered.
func TableizeI1O2[I1 comparable, O1 any](
	pureFn func(I1) (O1, error),
	opts ...pure.Option,
) func(I1) (O1, error) {
	return pure.NewKeyed(pure.Func[I1, O1](pureFn), opts...).Call
}

// LastI1O1 remembers only the latest input and its output. Each call of
// LastI1O1 returns a closure with its own private slot.
func LastI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	opts ...pure.Option,
) func(I1) O1 {
	memo := pure.NewSingleSlot(infallible(pureFn), opts...)
	return func(i1 I1) O1 {
		o1, _ := memo.Call(i1)
		return o1
	}
}

// LastI1O2 is LastI1O1 for functions that may fail.
func LastI1O2[I1 comparable, O1 any](
	pureFn func(I1) (O1, error),
	opts ...pure.Option,
) func(I1) (O1, error) {
	return pure.NewSingleSlot(pure.Func[I1, O1](pureFn), opts...).Call
}

func infallible[I1, O1 any](pureFn func(I1) O1) pure.Func[I1, O1] {
	if pureFn == nil {
		panic("pureFn should not be nil")
	}
	return func(i1 I1) (O1, error) {
		return pureFn(i1), nil
	}
}
