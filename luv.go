package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// Luv is a CIE L*u*v* color. It shares the L* lightness scale with Lab
// but builds its chromatic channels from the u'v' uniform chromaticity
// diagram, which makes it better suited to additive light mixtures. All
// three channels are free.
type Luv[T channel.Float] struct {
	l, u, v T
}

// NewLuv constructs a Luv color from channel values.
func NewLuv[T channel.Float](l, u, v T) Luv[T] {
	return Luv[T]{l: l, u: u, v: v}
}

// L returns the lightness channel.
func (c Luv[T]) L() T { return c.l }

// U returns the u* chromatic channel.
func (c Luv[T]) U() T { return c.u }

// V returns the v* chromatic channel.
func (c Luv[T]) V() T { return c.v }

// WithL returns a copy with the lightness channel replaced.
func (c Luv[T]) WithL(v T) Luv[T] { c.l = v; return c }

// WithU returns a copy with the u* channel replaced.
func (c Luv[T]) WithU(v T) Luv[T] { c.u = v; return c }

// WithV returns a copy with the v* channel replaced.
func (c Luv[T]) WithV(v T) Luv[T] { c.v = v; return c }

// NumChannels returns 3.
func (Luv[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c Luv[T]) ToTuple() (l, u, v T) { return c.l, c.u, c.v }

// IsNormalized always reports true; free channels have no bounds.
func (Luv[T]) IsNormalized() bool { return true }

// Normalize is the identity for free channels.
func (c Luv[T]) Normalize() Luv[T] { return c }

// Lerp interpolates componentwise toward right.
func (c Luv[T]) Lerp(right Luv[T], pos float64) Luv[T] {
	return Luv[T]{
		channel.Lerp(c.l, right.l, pos),
		channel.Lerp(c.u, right.u, pos),
		channel.Lerp(c.v, right.v, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c Luv[T]) AsSlice() []T { return []T{c.l, c.u, c.v} }

// FromSlice builds a Luv color from the first three elements of vals,
// panicking if fewer are present.
func (Luv[T]) FromSlice(vals []T) Luv[T] {
	checkSliceLen("Luv", vals, 3)
	return Luv[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c Luv[T]) String() string {
	return fmt.Sprintf("L*u*v*(%v, %v, %v)", c.l, c.u, c.v)
}

// LuvFromXYZ converts an XYZ color to Luv relative to the white point wp.
func LuvFromXYZ[T channel.Float](from, wp XYZ[T]) Luv[T] {
	x, y, z := float64(from.x), float64(from.y), float64(from.z)

	up, vp := uvPrime(x, y, z)
	upn, vpn := uvPrime(float64(wp.x), float64(wp.y), float64(wp.z))

	yr := y / float64(wp.y)
	var l float64
	if yr > labEpsilon {
		l = 116*labF(yr) - 16
	} else {
		l = labKappa * yr
	}

	return Luv[T]{
		l: T(l),
		u: T(13 * l * (up - upn)),
		v: T(13 * l * (vp - vpn)),
	}
}

// XYZFromLuv converts a Luv color back to XYZ under the same white point
// that produced it. Zero lightness maps to the black point.
func XYZFromLuv[T channel.Float](from Luv[T], wp XYZ[T]) XYZ[T] {
	l := float64(from.l)
	if l == 0 {
		return XYZ[T]{}
	}

	upn, vpn := uvPrime(float64(wp.x), float64(wp.y), float64(wp.z))
	up := float64(from.u)/(13*l) + upn
	vp := float64(from.v)/(13*l) + vpn

	y := labInvL(l) * float64(wp.y)
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)

	return XYZ[T]{x: T(x), y: T(y), z: T(z)}
}

// uvPrime computes the u'v' uniform chromaticity coordinates of an XYZ
// point. The black point maps to the origin.
func uvPrime(x, y, z float64) (up, vp float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}
