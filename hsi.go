package chroma

import (
	"fmt"
	"math"

	"github.com/chromakit/chroma/angle"
	"github.com/chromakit/chroma/channel"
)

// HSI is a hue/saturation/intensity color. Unlike HSV and HSL, HSI uses
// the circular hue definition (the angle of the RGB vector projected onto
// the chromaticity plane), so its hue differs slightly from the hexagonal
// hue of the other polar spaces. Intensity is the arithmetic mean of the
// RGB channels.
type HSI[T channel.Float] struct {
	h, s, i T
}

// NewHSI constructs an HSI color with hue in degrees.
func NewHSI[T channel.Float](h, s, i T) HSI[T] {
	return HSI[T]{h: h, s: s, i: i}
}

// Hue returns the hue channel in degrees.
func (c HSI[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c HSI[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// Saturation returns the saturation channel.
func (c HSI[T]) Saturation() T { return c.s }

// Intensity returns the intensity channel.
func (c HSI[T]) Intensity() T { return c.i }

// WithHue returns a copy with the hue channel replaced.
func (c HSI[T]) WithHue(v T) HSI[T] { c.h = v; return c }

// WithSaturation returns a copy with the saturation channel replaced.
func (c HSI[T]) WithSaturation(v T) HSI[T] { c.s = v; return c }

// WithIntensity returns a copy with the intensity channel replaced.
func (c HSI[T]) WithIntensity(v T) HSI[T] { c.i = v; return c }

// NumChannels returns 3.
func (HSI[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c HSI[T]) ToTuple() (h, s, i T) { return c.h, c.s, c.i }

// IsNormalized reports whether the hue lies in [0, 360) and the other
// channels in [0, 1].
func (c HSI[T]) IsNormalized() bool {
	return angle.IsNormalized(c.h, T(360)) && channel.IsNormalizedPos(c.s) && channel.IsNormalizedPos(c.i)
}

// Normalize wraps the hue and clamps the other channels.
func (c HSI[T]) Normalize() HSI[T] {
	return HSI[T]{angle.Normalize(c.h, T(360)), channel.ClampPos(c.s), channel.ClampPos(c.i)}
}

// Invert rotates the hue by half a turn and reflects the other channels.
func (c HSI[T]) Invert() HSI[T] {
	return HSI[T]{angle.Invert(c.h, T(360)), channel.InvertPos(c.s), channel.InvertPos(c.i)}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c HSI[T]) Lerp(right HSI[T], pos float64) HSI[T] {
	return HSI[T]{
		angle.Lerp(c.h, right.h, pos, T(360)),
		channel.Lerp(c.s, right.s, pos),
		channel.Lerp(c.i, right.i, pos),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c HSI[T]) AsSlice() []T { return []T{c.h, c.s, c.i} }

// FromSlice builds an HSI color from the first three elements of vals,
// panicking if fewer are present.
func (HSI[T]) FromSlice(vals []T) HSI[T] {
	checkSliceLen("HSI", vals, 3)
	return HSI[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c HSI[T]) String() string {
	return fmt.Sprintf("HSI(%v°, %v, %v)", c.h, c.s, c.i)
}

// HSIFromRGB converts an RGB color to HSI using the circular hue formula.
func HSIFromRGB[T channel.Float](c RGB[T]) HSI[T] {
	r, g, b := float64(c.r), float64(c.g), float64(c.b)

	i := (r + g + b) / 3
	var s float64
	if i > 0 {
		s = 1 - math.Min(r, math.Min(g, b))/i
	}

	h := math.Atan2(math.Sqrt(3)*(g-b), 2*r-g-b) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return HSI[T]{h: T(h), s: T(s), i: T(i)}
}

// RGBFromHSI converts an HSI color to RGB using the sector formula.
// Combinations of high saturation and intensity describe points outside
// the RGB cube; mode selects whether the exact result is preserved or
// clipped into gamut.
func RGBFromHSI[T channel.Float](c HSI[T], mode GamutMode) RGB[T] {
	h := float64(angle.Normalize(c.h, T(360)))
	s, i := float64(c.s), float64(c.i)

	sector := func(h float64) (major, minor float64) {
		hr := h * (math.Pi / 180)
		minor = i * (1 - s)
		major = i * (1 + s*math.Cos(hr)/math.Cos(math.Pi/3-hr))
		return major, minor
	}

	var r, g, b float64
	switch {
	case h < 120:
		r, b = sector(h)
		g = 3*i - r - b
	case h < 240:
		g, r = sector(h - 120)
		b = 3*i - r - g
	default:
		b, g = sector(h - 240)
		r = 3*i - g - b
	}

	out := RGB[T]{T(r), T(g), T(b)}
	if mode == GamutClip {
		return out.Normalize()
	}
	return out
}

// TryRGBFromHSI converts an HSI color to RGB, reporting ok=false when the
// exact result lies outside the RGB gamut.
func TryRGBFromHSI[T channel.Float](c HSI[T]) (RGB[T], bool) {
	out := RGBFromHSI(c, GamutPreserve)
	return out, out.IsNormalized()
}
