package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// Color is the contract every color type satisfies.
type Color interface {
	// NumChannels returns the number of scalar channels in the color,
	// in declared field order.
	NumChannels() int
}

// Bounded is implemented by colors whose channels have bounds.
type Bounded[C any] interface {
	// IsNormalized reports whether every channel is within its bounds.
	IsNormalized() bool
	// Normalize clamps every channel into bounds. Idempotent.
	Normalize() C
}

// Invertible is implemented by colors whose channels can be reflected
// across their range. Inverting twice returns the original color (exactly
// for integer channels, within float epsilon otherwise).
type Invertible[C any] interface {
	Invert() C
}

// Lerper is implemented by colors supporting componentwise linear
// interpolation. The position is not clamped to [0, 1]; angular channels
// interpolate along the shorter arc and integer channels through a float
// round trip.
type Lerper[C any] interface {
	Lerp(right C, pos float64) C
}

// Flattener is implemented by colors that convert to and from a
// contiguous slice of their channels in declared field order. FromSlice
// panics if the slice is shorter than NumChannels; extra elements are
// ignored.
type Flattener[C any, T channel.Scalar] interface {
	Color
	AsSlice() []T
	FromSlice(vals []T) C
}

// CastColor converts a color between scalar formats channel by channel
// using the cast engine. It applies to spaces whose channels all share the
// bounded-positive or free interpretation of their scalar (RGB, the HS*
// family, XYZ, Lab, ...); the YCbCr family has YCbCrCast, which re-centers
// its symmetric chroma channels.
//
// The target color type and both scalar formats are named explicitly; the
// source color type is inferred:
//
//	wide := chroma.CastColor[chroma.RGB[uint16], uint16, uint8](narrow)
func CastColor[OutC Flattener[OutC, Out], Out, In channel.Scalar, InC Flattener[InC, In]](c InC) OutC {
	in := c.AsSlice()
	out := make([]Out, len(in))
	for i, v := range in {
		out[i] = channel.Cast[Out](v)
	}
	var zero OutC
	return zero.FromSlice(out)
}

// AlmostEqual reports whether two colors of the same space are equal to
// within eps on every channel. It is the structural comparison used to
// validate round trips; angular channels are compared as stored, without
// wraparound.
func AlmostEqual[C Flattener[C, T], T channel.Float](a, b C, eps T) bool {
	as, bs := a.AsSlice(), b.AsSlice()
	for i := range as {
		d := as[i] - bs[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}

// checkSliceLen panics when a flatten source slice cannot fill a color's
// channels. Short slices are programming errors, mirroring construction
// invariant violations.
func checkSliceLen[T channel.Scalar](space string, vals []T, want int) {
	if len(vals) < want {
		panic(fmt.Sprintf("chroma: %s.FromSlice needs %d channels, got %d", space, want, len(vals)))
	}
}
