package chroma

import (
	"fmt"
	"math"

	"github.com/chromakit/chroma/angle"
	"github.com/chromakit/chroma/channel"
)

// HSV is a hue/saturation/value color. Hue is an angular channel stored in
// degrees; saturation and value are bounded-positive in [0, 1].
type HSV[T channel.Float] struct {
	h, s, v T
}

// NewHSV constructs an HSV color. Hue is in degrees and is stored as
// given; call Normalize to wrap it into [0, 360).
func NewHSV[T channel.Float](h, s, v T) HSV[T] {
	return HSV[T]{h: h, s: s, v: v}
}

// Hue returns the hue channel in degrees.
func (c HSV[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c HSV[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// Saturation returns the saturation channel.
func (c HSV[T]) Saturation() T { return c.s }

// Value returns the value channel.
func (c HSV[T]) Value() T { return c.v }

// WithHue returns a copy with the hue channel replaced.
func (c HSV[T]) WithHue(v T) HSV[T] { c.h = v; return c }

// WithSaturation returns a copy with the saturation channel replaced.
func (c HSV[T]) WithSaturation(v T) HSV[T] { c.s = v; return c }

// WithValue returns a copy with the value channel replaced.
func (c HSV[T]) WithValue(v T) HSV[T] { c.v = v; return c }

// NumChannels returns 3.
func (HSV[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c HSV[T]) ToTuple() (h, s, v T) { return c.h, c.s, c.v }

// IsNormalized reports whether the hue lies in [0, 360) and the other
// channels in [0, 1].
func (c HSV[T]) IsNormalized() bool {
	return angle.IsNormalized(c.h, T(360)) && channel.IsNormalizedPos(c.s) && channel.IsNormalizedPos(c.v)
}

// Normalize wraps the hue and clamps the other channels.
func (c HSV[T]) Normalize() HSV[T] {
	return HSV[T]{angle.Normalize(c.h, T(360)), channel.ClampPos(c.s), channel.ClampPos(c.v)}
}

// Invert rotates the hue by half a turn and reflects the other channels.
func (c HSV[T]) Invert() HSV[T] {
	return HSV[T]{angle.Invert(c.h, T(360)), channel.InvertPos(c.s), channel.InvertPos(c.v)}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c HSV[T]) Lerp(right HSV[T], pos float64) HSV[T] {
	return HSV[T]{
		angle.Lerp(c.h, right.h, pos, T(360)),
		channel.Lerp(c.s, right.s, pos),
		channel.Lerp(c.v, right.v, pos),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c HSV[T]) AsSlice() []T { return []T{c.h, c.s, c.v} }

// FromSlice builds an HSV color from the first three elements of vals,
// panicking if fewer are present.
func (HSV[T]) FromSlice(vals []T) HSV[T] {
	checkSliceLen("HSV", vals, 3)
	return HSV[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c HSV[T]) String() string {
	return fmt.Sprintf("HSV(%v°, %v, %v)", c.h, c.s, c.v)
}

// HSVFromRGB converts an RGB color to HSV using the hexagonal hue model.
func HSVFromRGB[T channel.Float](c RGB[T]) HSV[T] {
	maxc, minc, hue := hexHue(c)
	delta := maxc - minc

	var s T
	if maxc > 0 {
		s = delta / maxc
	}
	return HSV[T]{h: hue, s: s, v: maxc}
}

// RGBFromHSV converts an HSV color to RGB.
func RGBFromHSV[T channel.Float](c HSV[T]) RGB[T] {
	chroma := c.v * c.s
	return rgbFromHueChroma(c.h, chroma, c.v-chroma)
}

// hexHue computes the piecewise hexagonal hue in degrees together with the
// channel maximum and minimum.
func hexHue[T channel.Float](c RGB[T]) (maxc, minc, hue T) {
	r, g, b := c.ToTuple()
	maxc = max(r, g, b)
	minc = min(r, g, b)
	delta := maxc - minc
	if delta == 0 {
		return maxc, minc, 0
	}
	switch maxc {
	case r:
		hue = (g - b) / delta
		if g < b {
			hue += 6
		}
	case g:
		hue = 2 + (b-r)/delta
	default:
		hue = 4 + (r-g)/delta
	}
	return maxc, minc, hue * 60
}

// rgbFromHueChroma rebuilds RGB from a hue in degrees, a chroma, and the
// per-channel offset m shared by the HSV and HSL inverses.
func rgbFromHueChroma[T channel.Float](h, chroma, m T) RGB[T] {
	h = angle.Normalize(h, T(360)) / 60
	x := chroma * T(1-math.Abs(math.Mod(float64(h), 2)-1))

	var r, g, b T
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB[T]{r + m, g + m, b + m}
}
