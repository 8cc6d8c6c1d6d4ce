package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// AlphaInner is the contract an inner color must satisfy to be wrapped
// by Alpha: the full capability set over its own type.
type AlphaInner[C any, T channel.Scalar] interface {
	Color
	Bounded[C]
	Invertible[C]
	Lerper[C]
	Flattener[C, T]
}

// Alpha wraps any color with an independent bounded-positive alpha
// channel. Every contract operation delegates to the inner color and
// applies the matching channel operation to alpha; the alpha channel is
// always last in flattened form.
type Alpha[T channel.Scalar, C AlphaInner[C, T]] struct {
	color C
	alpha T
}

// RGBA is an RGB color with an alpha channel.
type RGBA[T channel.Scalar] = Alpha[T, RGB[T]]

// HSVA is an HSV color with an alpha channel.
type HSVA[T channel.Float] = Alpha[T, HSV[T]]

// HSLA is an HSL color with an alpha channel.
type HSLA[T channel.Float] = Alpha[T, HSL[T]]

// HWBA is an HWB color with an alpha channel.
type HWBA[T channel.Float] = Alpha[T, HWB[T]]

// HSIA is an HSI color with an alpha channel.
type HSIA[T channel.Float] = Alpha[T, HSI[T]]

// YCbCrA is a YCbCr color with an alpha channel.
type YCbCrA[T channel.Scalar, M Model] = Alpha[T, YCbCr[T, M]]

// NewAlpha wraps color with an alpha channel.
func NewAlpha[T channel.Scalar, C AlphaInner[C, T]](color C, alpha T) Alpha[T, C] {
	return Alpha[T, C]{color: color, alpha: alpha}
}

// NewRGBA constructs an RGBA color from channel values.
func NewRGBA[T channel.Scalar](r, g, b, a T) RGBA[T] {
	return NewAlpha(NewRGB(r, g, b), a)
}

// Color returns the inner color.
func (c Alpha[T, C]) Color() C { return c.color }

// Alpha returns the alpha channel.
func (c Alpha[T, C]) Alpha() T { return c.alpha }

// WithColor returns a copy with the inner color replaced.
func (c Alpha[T, C]) WithColor(v C) Alpha[T, C] { c.color = v; return c }

// WithAlpha returns a copy with the alpha channel replaced.
func (c Alpha[T, C]) WithAlpha(v T) Alpha[T, C] { c.alpha = v; return c }

// NumChannels returns the inner color's channel count plus one.
func (c Alpha[T, C]) NumChannels() int { return c.color.NumChannels() + 1 }

// IsNormalized reports whether the inner color and the alpha channel are
// both within bounds.
func (c Alpha[T, C]) IsNormalized() bool {
	return c.color.IsNormalized() && channel.IsNormalizedPos(c.alpha)
}

// Normalize normalizes the inner color and clamps the alpha channel.
func (c Alpha[T, C]) Normalize() Alpha[T, C] {
	return Alpha[T, C]{color: c.color.Normalize(), alpha: channel.ClampPos(c.alpha)}
}

// Invert inverts the inner color and reflects the alpha channel.
func (c Alpha[T, C]) Invert() Alpha[T, C] {
	return Alpha[T, C]{color: c.color.Invert(), alpha: channel.InvertPos(c.alpha)}
}

// Lerp interpolates the inner color and the alpha channel independently.
func (c Alpha[T, C]) Lerp(right Alpha[T, C], pos float64) Alpha[T, C] {
	return Alpha[T, C]{
		color: c.color.Lerp(right.color, pos),
		alpha: channel.Lerp(c.alpha, right.alpha, pos),
	}
}

// AsSlice returns the inner channels followed by alpha.
func (c Alpha[T, C]) AsSlice() []T {
	return append(c.color.AsSlice(), c.alpha)
}

// FromSlice builds an Alpha color from vals: the inner channels first,
// then alpha. Panics if vals is too short. The inner color is rebuilt
// through the receiver's, so inner state beyond the channels (a custom
// YCbCr model, for instance) survives.
func (c Alpha[T, C]) FromSlice(vals []T) Alpha[T, C] {
	n := c.color.NumChannels()
	checkSliceLen("Alpha", vals, n+1)
	return Alpha[T, C]{color: c.color.FromSlice(vals[:n]), alpha: vals[n]}
}

// String implements fmt.Stringer.
func (c Alpha[T, C]) String() string {
	return fmt.Sprintf("Alpha(%v, %v)", c.color, c.alpha)
}
