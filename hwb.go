package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/angle"
	"github.com/chromakit/chroma/channel"
)

// HWB is a hue/whiteness/blackness color. Hue is an angular channel stored
// in degrees; whiteness and blackness are bounded-positive in [0, 1].
// Whiteness and blackness are only jointly meaningful when w + b <= 1;
// values violating that describe the same color as their proportional
// rescale.
type HWB[T channel.Float] struct {
	h, w, b T
}

// NewHWB constructs an HWB color with hue in degrees.
func NewHWB[T channel.Float](h, w, b T) HWB[T] {
	return HWB[T]{h: h, w: w, b: b}
}

// Hue returns the hue channel in degrees.
func (c HWB[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c HWB[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// Whiteness returns the whiteness channel.
func (c HWB[T]) Whiteness() T { return c.w }

// Blackness returns the blackness channel.
func (c HWB[T]) Blackness() T { return c.b }

// WithHue returns a copy with the hue channel replaced.
func (c HWB[T]) WithHue(v T) HWB[T] { c.h = v; return c }

// WithWhiteness returns a copy with the whiteness channel replaced.
func (c HWB[T]) WithWhiteness(v T) HWB[T] { c.w = v; return c }

// WithBlackness returns a copy with the blackness channel replaced.
func (c HWB[T]) WithBlackness(v T) HWB[T] { c.b = v; return c }

// NumChannels returns 3.
func (HWB[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c HWB[T]) ToTuple() (h, w, b T) { return c.h, c.w, c.b }

// IsNormalized reports whether the hue lies in [0, 360) and whiteness and
// blackness in [0, 1].
func (c HWB[T]) IsNormalized() bool {
	return angle.IsNormalized(c.h, T(360)) && channel.IsNormalizedPos(c.w) && channel.IsNormalizedPos(c.b)
}

// Normalize wraps the hue and clamps the other channels.
func (c HWB[T]) Normalize() HWB[T] {
	return HWB[T]{angle.Normalize(c.h, T(360)), channel.ClampPos(c.w), channel.ClampPos(c.b)}
}

// Invert rotates the hue by half a turn and reflects the other channels.
func (c HWB[T]) Invert() HWB[T] {
	return HWB[T]{angle.Invert(c.h, T(360)), channel.InvertPos(c.w), channel.InvertPos(c.b)}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c HWB[T]) Lerp(right HWB[T], pos float64) HWB[T] {
	return HWB[T]{
		angle.Lerp(c.h, right.h, pos, T(360)),
		channel.Lerp(c.w, right.w, pos),
		channel.Lerp(c.b, right.b, pos),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c HWB[T]) AsSlice() []T { return []T{c.h, c.w, c.b} }

// FromSlice builds an HWB color from the first three elements of vals,
// panicking if fewer are present.
func (HWB[T]) FromSlice(vals []T) HWB[T] {
	checkSliceLen("HWB", vals, 3)
	return HWB[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c HWB[T]) String() string {
	return fmt.Sprintf("HWB(%v°, %v, %v)", c.h, c.w, c.b)
}

// HWBFromHSV converts an HSV color to HWB: w = (1-s)v, b = 1-v.
func HWBFromHSV[T channel.Float](c HSV[T]) HWB[T] {
	return HWB[T]{h: c.h, w: (1 - c.s) * c.v, b: 1 - c.v}
}

// HSVFromHWB converts an HWB color to HSV. When w + b exceeds 1 the two
// channels are rescaled proportionally first, per the CSS convention.
func HSVFromHWB[T channel.Float](c HWB[T]) HSV[T] {
	w, b := c.w, c.b
	if sum := w + b; sum > 1 {
		w /= sum
		b /= sum
	}
	v := 1 - b
	var s T
	if v > 0 {
		s = 1 - w/v
	}
	return HSV[T]{h: c.h, s: s, v: v}
}

// HWBFromRGB converts an RGB color to HWB through HSV.
func HWBFromRGB[T channel.Float](c RGB[T]) HWB[T] {
	return HWBFromHSV(HSVFromRGB(c))
}

// RGBFromHWB converts an HWB color to RGB through HSV.
func RGBFromHWB[T channel.Float](c HWB[T]) RGB[T] {
	return RGBFromHSV(HSVFromHWB(c))
}
