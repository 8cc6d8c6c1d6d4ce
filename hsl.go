package chroma

import (
	"fmt"
	"math"

	"github.com/chromakit/chroma/angle"
	"github.com/chromakit/chroma/channel"
)

// HSL is a hue/saturation/lightness color. Hue is an angular channel
// stored in degrees; saturation and lightness are bounded-positive in
// [0, 1].
type HSL[T channel.Float] struct {
	h, s, l T
}

// NewHSL constructs an HSL color with hue in degrees.
func NewHSL[T channel.Float](h, s, l T) HSL[T] {
	return HSL[T]{h: h, s: s, l: l}
}

// Hue returns the hue channel in degrees.
func (c HSL[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c HSL[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// Saturation returns the saturation channel.
func (c HSL[T]) Saturation() T { return c.s }

// Lightness returns the lightness channel.
func (c HSL[T]) Lightness() T { return c.l }

// WithHue returns a copy with the hue channel replaced.
func (c HSL[T]) WithHue(v T) HSL[T] { c.h = v; return c }

// WithSaturation returns a copy with the saturation channel replaced.
func (c HSL[T]) WithSaturation(v T) HSL[T] { c.s = v; return c }

// WithLightness returns a copy with the lightness channel replaced.
func (c HSL[T]) WithLightness(v T) HSL[T] { c.l = v; return c }

// NumChannels returns 3.
func (HSL[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c HSL[T]) ToTuple() (h, s, l T) { return c.h, c.s, c.l }

// IsNormalized reports whether the hue lies in [0, 360) and the other
// channels in [0, 1].
func (c HSL[T]) IsNormalized() bool {
	return angle.IsNormalized(c.h, T(360)) && channel.IsNormalizedPos(c.s) && channel.IsNormalizedPos(c.l)
}

// Normalize wraps the hue and clamps the other channels.
func (c HSL[T]) Normalize() HSL[T] {
	return HSL[T]{angle.Normalize(c.h, T(360)), channel.ClampPos(c.s), channel.ClampPos(c.l)}
}

// Invert rotates the hue by half a turn and reflects the other channels.
func (c HSL[T]) Invert() HSL[T] {
	return HSL[T]{angle.Invert(c.h, T(360)), channel.InvertPos(c.s), channel.InvertPos(c.l)}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c HSL[T]) Lerp(right HSL[T], pos float64) HSL[T] {
	return HSL[T]{
		angle.Lerp(c.h, right.h, pos, T(360)),
		channel.Lerp(c.s, right.s, pos),
		channel.Lerp(c.l, right.l, pos),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c HSL[T]) AsSlice() []T { return []T{c.h, c.s, c.l} }

// FromSlice builds an HSL color from the first three elements of vals,
// panicking if fewer are present.
func (HSL[T]) FromSlice(vals []T) HSL[T] {
	checkSliceLen("HSL", vals, 3)
	return HSL[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c HSL[T]) String() string {
	return fmt.Sprintf("HSL(%v°, %v, %v)", c.h, c.s, c.l)
}

// HSLFromRGB converts an RGB color to HSL.
func HSLFromRGB[T channel.Float](c RGB[T]) HSL[T] {
	maxc, minc, hue := hexHue(c)
	l := (maxc + minc) / 2

	var s T
	if maxc != minc {
		if l < T(0.5) {
			s = (maxc - minc) / (maxc + minc)
		} else {
			s = (maxc - minc) / (2 - maxc - minc)
		}
	}
	return HSL[T]{h: hue, s: s, l: l}
}

// RGBFromHSL converts an HSL color to RGB.
func RGBFromHSL[T channel.Float](c HSL[T]) RGB[T] {
	chroma := (1 - T(math.Abs(float64(2*c.l-1)))) * c.s
	return rgbFromHueChroma(c.h, chroma, c.l-chroma/2)
}
