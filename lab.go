package chroma

import (
	"fmt"
	"math"

	"github.com/chromakit/chroma/channel"
)

// CIE-standard constants of the Lab/Luv lightness function. Exact values;
// the commonly quoted 0.008856 and 903.3 are truncations.
const (
	// labEpsilon is (6/29)^3, the threshold between the cube root and
	// linear segments.
	labEpsilon = 0.008856451679035631
	// labKappa is (29/3)^3, the slope of the linear segment.
	labKappa = 903.2962962963
)

// Lab is a CIE L*a*b* color. L* is lightness in [0, 100] for in-gamut
// colors; a* and b* are free opponent channels (positive a* toward red,
// positive b* toward yellow). All three channels are free: out-of-range
// values are representable and survive round trips.
type Lab[T channel.Float] struct {
	l, a, b T
}

// NewLab constructs a Lab color from channel values.
func NewLab[T channel.Float](l, a, b T) Lab[T] {
	return Lab[T]{l: l, a: a, b: b}
}

// L returns the lightness channel.
func (c Lab[T]) L() T { return c.l }

// A returns the a* opponent channel.
func (c Lab[T]) A() T { return c.a }

// B returns the b* opponent channel.
func (c Lab[T]) B() T { return c.b }

// WithL returns a copy with the lightness channel replaced.
func (c Lab[T]) WithL(v T) Lab[T] { c.l = v; return c }

// WithA returns a copy with the a* channel replaced.
func (c Lab[T]) WithA(v T) Lab[T] { c.a = v; return c }

// WithB returns a copy with the b* channel replaced.
func (c Lab[T]) WithB(v T) Lab[T] { c.b = v; return c }

// NumChannels returns 3.
func (Lab[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c Lab[T]) ToTuple() (l, a, b T) { return c.l, c.a, c.b }

// IsNormalized always reports true; free channels have no bounds.
func (Lab[T]) IsNormalized() bool { return true }

// Normalize is the identity for free channels.
func (c Lab[T]) Normalize() Lab[T] { return c }

// Lerp interpolates componentwise toward right.
func (c Lab[T]) Lerp(right Lab[T], pos float64) Lab[T] {
	return Lab[T]{
		channel.Lerp(c.l, right.l, pos),
		channel.Lerp(c.a, right.a, pos),
		channel.Lerp(c.b, right.b, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c Lab[T]) AsSlice() []T { return []T{c.l, c.a, c.b} }

// FromSlice builds a Lab color from the first three elements of vals,
// panicking if fewer are present.
func (Lab[T]) FromSlice(vals []T) Lab[T] {
	checkSliceLen("Lab", vals, 3)
	return Lab[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c Lab[T]) String() string {
	return fmt.Sprintf("L*a*b*(%v, %v, %v)", c.l, c.a, c.b)
}

// LabFromXYZ converts an XYZ color to Lab relative to the white point wp
// (see WhitePoint for the standard illuminants).
func LabFromXYZ[T channel.Float](from, wp XYZ[T]) Lab[T] {
	fx := labF(float64(from.x) / float64(wp.x))
	fy := labF(float64(from.y) / float64(wp.y))
	fz := labF(float64(from.z) / float64(wp.z))

	return Lab[T]{
		l: T(116*fy - 16),
		a: T(500 * (fx - fy)),
		b: T(200 * (fy - fz)),
	}
}

// XYZFromLab converts a Lab color back to XYZ under the same white point
// that produced it. Round trips are exact to within ~1e-4.
func XYZFromLab[T channel.Float](from Lab[T], wp XYZ[T]) XYZ[T] {
	l := float64(from.l)
	fy := (l + 16) / 116
	fx := float64(from.a)/500 + fy
	fz := fy - float64(from.b)/200

	return XYZ[T]{
		x: T(labInvF(fx) * float64(wp.x)),
		y: T(labInvL(l) * float64(wp.y)),
		z: T(labInvF(fz) * float64(wp.z)),
	}
}

// labF is the forward lightness function: a cube root above the epsilon
// threshold, linear below it.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labInvF inverts labF for the x and z channels, branching on f^3 against
// the threshold.
func labInvF(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// labInvL recovers the y ratio from L*, branching on L* against
// kappa*epsilon (the image of the threshold under the forward transform).
func labInvL(l float64) float64 {
	if l > labKappa*labEpsilon {
		n := (l + 16) / 116
		return n * n * n
	}
	return l / labKappa
}
