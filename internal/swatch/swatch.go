// Package swatch is the demo domain: rendering a colour swatch is the
// expensive pure function the memoizers are exercised with.
package swatch

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoColor = errors.New("swatch has no color")

// Renderer renders swatches and counts how often it was asked to.
type Renderer struct {
	out   io.Writer
	calls int
}

// NewRenderer returns a Renderer printing one line per render to out.
// A nil out renders silently.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render returns "Swatch render: <color>". A blank color fails.
func (r *Renderer) Render(color string) (string, error) {
	r.calls++
	if strings.TrimSpace(color) == "" {
		return "", ErrNoColor
	}
	line := "Swatch render: " + color
	if r.out != nil {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return "", fmt.Errorf("write swatch: %w", err)
		}
	}
	return line, nil
}

// Calls reports how many times Render ran, failures included.
func (r *Renderer) Calls() int {
	return r.calls
}
