package chroma

import (
	"fmt"
	"math"

	"github.com/chromakit/chroma/angle"
	"github.com/chromakit/chroma/channel"
)

// LChab is the cylindrical form of Lab: lightness, chroma (distance from
// the neutral axis) and hue (the angle of the a*b* vector, in degrees).
// L and C are free channels; negative chroma is representable but is
// produced by no conversion.
type LChab[T channel.Float] struct {
	l, c, h T
}

// NewLChab constructs an LCh(ab) color with hue in degrees.
func NewLChab[T channel.Float](l, c, h T) LChab[T] {
	return LChab[T]{l: l, c: c, h: h}
}

// L returns the lightness channel.
func (c LChab[T]) L() T { return c.l }

// Chroma returns the chroma channel.
func (c LChab[T]) Chroma() T { return c.c }

// Hue returns the hue channel in degrees.
func (c LChab[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c LChab[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// WithL returns a copy with the lightness channel replaced.
func (c LChab[T]) WithL(v T) LChab[T] { c.l = v; return c }

// WithChroma returns a copy with the chroma channel replaced.
func (c LChab[T]) WithChroma(v T) LChab[T] { c.c = v; return c }

// WithHue returns a copy with the hue channel replaced.
func (c LChab[T]) WithHue(v T) LChab[T] { c.h = v; return c }

// NumChannels returns 3.
func (LChab[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c LChab[T]) ToTuple() (l, ch, h T) { return c.l, c.c, c.h }

// IsNormalized reports whether the hue lies in [0, 360). L and C are free.
func (c LChab[T]) IsNormalized() bool { return angle.IsNormalized(c.h, T(360)) }

// Normalize wraps the hue into [0, 360).
func (c LChab[T]) Normalize() LChab[T] {
	return LChab[T]{c.l, c.c, angle.Normalize(c.h, T(360))}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c LChab[T]) Lerp(right LChab[T], pos float64) LChab[T] {
	return LChab[T]{
		channel.Lerp(c.l, right.l, pos),
		channel.Lerp(c.c, right.c, pos),
		angle.Lerp(c.h, right.h, pos, T(360)),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c LChab[T]) AsSlice() []T { return []T{c.l, c.c, c.h} }

// FromSlice builds an LCh(ab) color from the first three elements of
// vals, panicking if fewer are present.
func (LChab[T]) FromSlice(vals []T) LChab[T] {
	checkSliceLen("LChab", vals, 3)
	return LChab[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c LChab[T]) String() string {
	return fmt.Sprintf("LCh(ab)(%v, %v, %v°)", c.l, c.c, c.h)
}

// LChabFromLab converts a Lab color to its cylindrical form.
func LChabFromLab[T channel.Float](from Lab[T]) LChab[T] {
	ch, h := toPolar(float64(from.a), float64(from.b))
	return LChab[T]{l: from.l, c: T(ch), h: T(h)}
}

// LabFromLChab converts an LCh(ab) color back to rectangular Lab.
func LabFromLChab[T channel.Float](from LChab[T]) Lab[T] {
	a, b := fromPolar(float64(from.c), float64(from.h))
	return Lab[T]{l: from.l, a: T(a), b: T(b)}
}

// LChuv is the cylindrical form of Luv, with the same channel structure
// as LChab but measured over the u*v* plane.
type LChuv[T channel.Float] struct {
	l, c, h T
}

// NewLChuv constructs an LCh(uv) color with hue in degrees.
func NewLChuv[T channel.Float](l, c, h T) LChuv[T] {
	return LChuv[T]{l: l, c: c, h: h}
}

// L returns the lightness channel.
func (c LChuv[T]) L() T { return c.l }

// Chroma returns the chroma channel.
func (c LChuv[T]) Chroma() T { return c.c }

// Hue returns the hue channel in degrees.
func (c LChuv[T]) Hue() T { return c.h }

// HueIn returns the hue converted to the given angular unit.
func (c LChuv[T]) HueIn(u angle.Unit) T { return angle.Convert(c.h, angle.Degrees, u) }

// WithL returns a copy with the lightness channel replaced.
func (c LChuv[T]) WithL(v T) LChuv[T] { c.l = v; return c }

// WithChroma returns a copy with the chroma channel replaced.
func (c LChuv[T]) WithChroma(v T) LChuv[T] { c.c = v; return c }

// WithHue returns a copy with the hue channel replaced.
func (c LChuv[T]) WithHue(v T) LChuv[T] { c.h = v; return c }

// NumChannels returns 3.
func (LChuv[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c LChuv[T]) ToTuple() (l, ch, h T) { return c.l, c.c, c.h }

// IsNormalized reports whether the hue lies in [0, 360). L and C are free.
func (c LChuv[T]) IsNormalized() bool { return angle.IsNormalized(c.h, T(360)) }

// Normalize wraps the hue into [0, 360).
func (c LChuv[T]) Normalize() LChuv[T] {
	return LChuv[T]{c.l, c.c, angle.Normalize(c.h, T(360))}
}

// Lerp interpolates toward right, taking the shorter arc for hue.
func (c LChuv[T]) Lerp(right LChuv[T], pos float64) LChuv[T] {
	return LChuv[T]{
		channel.Lerp(c.l, right.l, pos),
		channel.Lerp(c.c, right.c, pos),
		angle.Lerp(c.h, right.h, pos, T(360)),
	}
}

// AsSlice returns the channels as a slice, hue in degrees.
func (c LChuv[T]) AsSlice() []T { return []T{c.l, c.c, c.h} }

// FromSlice builds an LCh(uv) color from the first three elements of
// vals, panicking if fewer are present.
func (LChuv[T]) FromSlice(vals []T) LChuv[T] {
	checkSliceLen("LChuv", vals, 3)
	return LChuv[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c LChuv[T]) String() string {
	return fmt.Sprintf("LCh(uv)(%v, %v, %v°)", c.l, c.c, c.h)
}

// LChuvFromLuv converts a Luv color to its cylindrical form.
func LChuvFromLuv[T channel.Float](from Luv[T]) LChuv[T] {
	ch, h := toPolar(float64(from.u), float64(from.v))
	return LChuv[T]{l: from.l, c: T(ch), h: T(h)}
}

// LuvFromLChuv converts an LCh(uv) color back to rectangular Luv.
func LuvFromLChuv[T channel.Float](from LChuv[T]) Luv[T] {
	u, v := fromPolar(float64(from.c), float64(from.h))
	return Luv[T]{l: from.l, u: T(u), v: T(v)}
}

// toPolar converts rectangular chromatic coordinates to chroma and a hue
// in [0, 360) degrees.
func toPolar(a, b float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	hue = math.Atan2(b, a) * (180 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return chroma, hue
}

// fromPolar converts chroma and a hue in degrees back to rectangular
// coordinates.
func fromPolar(chroma, hue float64) (a, b float64) {
	hr := hue * (math.Pi / 180)
	return chroma * math.Cos(hr), chroma * math.Sin(hr)
}
