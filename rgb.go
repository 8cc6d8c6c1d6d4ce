package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// RGB is an additive red/green/blue color. All three channels are
// bounded-positive: the full range for unsigned scalars, [0, 1] for
// floats.
type RGB[T channel.Scalar] struct {
	r, g, b T
}

// NewRGB constructs an RGB color from channel values.
func NewRGB[T channel.Scalar](r, g, b T) RGB[T] {
	return RGB[T]{r: r, g: g, b: b}
}

// Red returns the red channel.
func (c RGB[T]) Red() T { return c.r }

// Green returns the green channel.
func (c RGB[T]) Green() T { return c.g }

// Blue returns the blue channel.
func (c RGB[T]) Blue() T { return c.b }

// WithRed returns a copy with the red channel replaced.
func (c RGB[T]) WithRed(v T) RGB[T] { c.r = v; return c }

// WithGreen returns a copy with the green channel replaced.
func (c RGB[T]) WithGreen(v T) RGB[T] { c.g = v; return c }

// WithBlue returns a copy with the blue channel replaced.
func (c RGB[T]) WithBlue(v T) RGB[T] { c.b = v; return c }

// NumChannels returns 3.
func (RGB[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c RGB[T]) ToTuple() (r, g, b T) { return c.r, c.g, c.b }

// IsNormalized reports whether every channel is within bounds.
func (c RGB[T]) IsNormalized() bool {
	return channel.IsNormalizedPos(c.r) && channel.IsNormalizedPos(c.g) && channel.IsNormalizedPos(c.b)
}

// Normalize clamps every channel into bounds.
func (c RGB[T]) Normalize() RGB[T] {
	return RGB[T]{channel.ClampPos(c.r), channel.ClampPos(c.g), channel.ClampPos(c.b)}
}

// Invert reflects every channel across its range.
func (c RGB[T]) Invert() RGB[T] {
	return RGB[T]{channel.InvertPos(c.r), channel.InvertPos(c.g), channel.InvertPos(c.b)}
}

// Lerp interpolates componentwise toward right. The position is not
// clamped.
func (c RGB[T]) Lerp(right RGB[T], pos float64) RGB[T] {
	return RGB[T]{
		channel.Lerp(c.r, right.r, pos),
		channel.Lerp(c.g, right.g, pos),
		channel.Lerp(c.b, right.b, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c RGB[T]) AsSlice() []T { return []T{c.r, c.g, c.b} }

// FromSlice builds an RGB color from the first three elements of vals,
// panicking if fewer are present.
func (RGB[T]) FromSlice(vals []T) RGB[T] {
	checkSliceLen("RGB", vals, 3)
	return RGB[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c RGB[T]) String() string {
	return fmt.Sprintf("RGB(%v, %v, %v)", c.r, c.g, c.b)
}
