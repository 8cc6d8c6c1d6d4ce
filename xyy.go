package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// XyY is a CIE xyY chromaticity color: x and y are chromaticity ratios
// and Y is the free luminance channel. x and y must each lie in [0, 1]
// and sum to at most 1; the implicit z chromaticity is 1 - x - y.
//
// The sum invariant is enforced at construction and preserved by the
// With* setters: setting one chromaticity rescales the other two
// proportionally (or splits the remainder evenly when both are zero).
// Violating the invariant is a programming error and panics.
type XyY[T channel.Float] struct {
	x, y, yy T
}

// NewXyY constructs an xyY color, panicking when x or y is negative,
// above 1, or when x + y exceeds 1.
func NewXyY[T channel.Float](x, y, Y T) XyY[T] {
	if x < 0 || y < 0 {
		panic("chroma: xyY chromaticity channels must not be negative")
	}
	if x+y > 1 {
		panic("chroma: xyY chromaticity channels x and y must sum to at most 1")
	}
	return XyY[T]{x: x, y: y, yy: Y}
}

// X returns the x chromaticity channel.
func (c XyY[T]) X() T { return c.x }

// Yc returns the y chromaticity channel.
func (c XyY[T]) Yc() T { return c.y }

// Z returns the implicit z chromaticity, 1 - x - y.
func (c XyY[T]) Z() T { return 1 - c.x - c.y }

// Y returns the luminance channel.
func (c XyY[T]) Y() T { return c.yy }

// WithX returns a copy with the x chromaticity set to v and the y and z
// chromaticities rescaled so the three still sum to 1. Panics when v is
// outside [0, 1].
func (c XyY[T]) WithX(v T) XyY[T] {
	x, y, _ := rescaleChromaticity(v, c.Yc(), c.Z())
	return XyY[T]{x: x, y: y, yy: c.yy}
}

// WithYc returns a copy with the y chromaticity set to v and the x and z
// chromaticities rescaled. Panics when v is outside [0, 1].
func (c XyY[T]) WithYc(v T) XyY[T] {
	y, x, _ := rescaleChromaticity(v, c.X(), c.Z())
	return XyY[T]{x: x, y: y, yy: c.yy}
}

// WithZ returns a copy with the implicit z chromaticity set to v and the
// x and y chromaticities rescaled. Panics when v is outside [0, 1].
func (c XyY[T]) WithZ(v T) XyY[T] {
	_, x, y := rescaleChromaticity(v, c.X(), c.Yc())
	return XyY[T]{x: x, y: y, yy: c.yy}
}

// WithY returns a copy with the luminance channel replaced. Luminance is
// free and carries no invariant.
func (c XyY[T]) WithY(v T) XyY[T] { c.yy = v; return c }

// rescaleChromaticity sets the primary chromaticity and redistributes the
// remainder 1-primary over the other two in their existing proportion,
// splitting evenly when both are zero.
func rescaleChromaticity[T channel.Float](primary, c2, c3 T) (T, T, T) {
	if primary < 0 || primary > 1 {
		panic("chroma: xyY chromaticity channels must be between 0 and 1")
	}
	rem := 1 - primary
	if scale := c2 + c3; scale > 0 {
		return primary, (c2 / scale) * rem, (c3 / scale) * rem
	}
	return primary, rem / 2, rem / 2
}

// NumChannels returns 3.
func (XyY[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order: x, y, Y.
func (c XyY[T]) ToTuple() (x, y, Y T) { return c.x, c.y, c.yy }

// IsNormalized always reports true: construction maintains the
// chromaticity bounds and luminance is free.
func (XyY[T]) IsNormalized() bool { return true }

// Normalize is the identity; the construction invariant already holds.
func (c XyY[T]) Normalize() XyY[T] { return c }

// Lerp interpolates componentwise toward right. Interpolation between two
// valid xyY colors stays within the chromaticity invariant.
func (c XyY[T]) Lerp(right XyY[T], pos float64) XyY[T] {
	return XyY[T]{
		channel.Lerp(c.x, right.x, pos),
		channel.Lerp(c.y, right.y, pos),
		channel.Lerp(c.yy, right.yy, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c XyY[T]) AsSlice() []T { return []T{c.x, c.y, c.yy} }

// FromSlice builds an xyY color from the first three elements of vals,
// panicking if fewer are present or the chromaticity invariant fails.
func (XyY[T]) FromSlice(vals []T) XyY[T] {
	checkSliceLen("XyY", vals, 3)
	return NewXyY(vals[0], vals[1], vals[2])
}

// String implements fmt.Stringer.
func (c XyY[T]) String() string {
	return fmt.Sprintf("xyY(%v, %v, %v)", c.x, c.y, c.yy)
}

// XyYFromXYZ converts an XYZ color to xyY. XYZ colors with negative
// channels have no xyY representation and panic; the black point (all
// zeros) maps to the origin.
func XyYFromXYZ[T channel.Float](from XYZ[T]) XyY[T] {
	if from.x < 0 || from.y < 0 || from.z < 0 {
		panic("chroma: cannot convert an XYZ color with negative channels to xyY")
	}
	sum := from.x + from.y + from.z
	if sum == 0 {
		return XyY[T]{}
	}
	return NewXyY(from.x/sum, from.y/sum, from.y)
}

// XYZFromXyY converts an xyY color to XYZ. Zero y chromaticity maps to
// the black point.
func XYZFromXyY[T channel.Float](from XyY[T]) XYZ[T] {
	if from.y == 0 {
		return XYZ[T]{}
	}
	scale := from.yy / from.y
	return XYZ[T]{x: scale * from.x, y: from.yy, z: scale * from.Z()}
}
