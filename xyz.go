package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// XYZ is a CIE 1931 XYZ tristimulus color. All three channels are free
// (unbounded): Y is typically in [0, 1] for reflective colors but nothing
// constrains it, and X and Z scale with the illuminant.
type XYZ[T channel.Float] struct {
	x, y, z T
}

// NewXYZ constructs an XYZ color from tristimulus values.
func NewXYZ[T channel.Float](x, y, z T) XYZ[T] {
	return XYZ[T]{x: x, y: y, z: z}
}

// X returns the X tristimulus channel.
func (c XYZ[T]) X() T { return c.x }

// Y returns the Y (luminance) channel.
func (c XYZ[T]) Y() T { return c.y }

// Z returns the Z tristimulus channel.
func (c XYZ[T]) Z() T { return c.z }

// WithX returns a copy with the X channel replaced.
func (c XYZ[T]) WithX(v T) XYZ[T] { c.x = v; return c }

// WithY returns a copy with the Y channel replaced.
func (c XYZ[T]) WithY(v T) XYZ[T] { c.y = v; return c }

// WithZ returns a copy with the Z channel replaced.
func (c XYZ[T]) WithZ(v T) XYZ[T] { c.z = v; return c }

// NumChannels returns 3.
func (XYZ[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c XYZ[T]) ToTuple() (x, y, z T) { return c.x, c.y, c.z }

// IsNormalized always reports true; free channels have no bounds.
func (XYZ[T]) IsNormalized() bool { return true }

// Normalize is the identity for free channels.
func (c XYZ[T]) Normalize() XYZ[T] { return c }

// Lerp interpolates componentwise toward right.
func (c XYZ[T]) Lerp(right XYZ[T], pos float64) XYZ[T] {
	return XYZ[T]{
		channel.Lerp(c.x, right.x, pos),
		channel.Lerp(c.y, right.y, pos),
		channel.Lerp(c.z, right.z, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c XYZ[T]) AsSlice() []T { return []T{c.x, c.y, c.z} }

// FromSlice builds an XYZ color from the first three elements of vals,
// panicking if fewer are present.
func (XYZ[T]) FromSlice(vals []T) XYZ[T] {
	checkSliceLen("XYZ", vals, 3)
	return XYZ[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c XYZ[T]) String() string {
	return fmt.Sprintf("XYZ(%v, %v, %v)", c.x, c.y, c.z)
}
