package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// LMS is a cone response color: the stimulus of the long, medium and
// short wavelength cones. All three channels are free. LMS is primarily
// an intermediate for chromatic adaptation; which XYZ transform produced
// a value is not recorded in the type, so converting back must use the
// same LMSTransform.
type LMS[T channel.Float] struct {
	l, m, s T
}

// NewLMS constructs an LMS color from cone response values.
func NewLMS[T channel.Float](l, m, s T) LMS[T] {
	return LMS[T]{l: l, m: m, s: s}
}

// L returns the long-wavelength cone channel.
func (c LMS[T]) L() T { return c.l }

// M returns the medium-wavelength cone channel.
func (c LMS[T]) M() T { return c.m }

// S returns the short-wavelength cone channel.
func (c LMS[T]) S() T { return c.s }

// WithL returns a copy with the L channel replaced.
func (c LMS[T]) WithL(v T) LMS[T] { c.l = v; return c }

// WithM returns a copy with the M channel replaced.
func (c LMS[T]) WithM(v T) LMS[T] { c.m = v; return c }

// WithS returns a copy with the S channel replaced.
func (c LMS[T]) WithS(v T) LMS[T] { c.s = v; return c }

// NumChannels returns 3.
func (LMS[T]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order.
func (c LMS[T]) ToTuple() (l, m, s T) { return c.l, c.m, c.s }

// IsNormalized always reports true; free channels have no bounds.
func (LMS[T]) IsNormalized() bool { return true }

// Normalize is the identity for free channels.
func (c LMS[T]) Normalize() LMS[T] { return c }

// Lerp interpolates componentwise toward right.
func (c LMS[T]) Lerp(right LMS[T], pos float64) LMS[T] {
	return LMS[T]{
		channel.Lerp(c.l, right.l, pos),
		channel.Lerp(c.m, right.m, pos),
		channel.Lerp(c.s, right.s, pos),
	}
}

// AsSlice returns the channels as a slice in declared order.
func (c LMS[T]) AsSlice() []T { return []T{c.l, c.m, c.s} }

// FromSlice builds an LMS color from the first three elements of vals,
// panicking if fewer are present.
func (LMS[T]) FromSlice(vals []T) LMS[T] {
	checkSliceLen("LMS", vals, 3)
	return LMS[T]{vals[0], vals[1], vals[2]}
}

// String implements fmt.Stringer.
func (c LMS[T]) String() string {
	return fmt.Sprintf("LMS(%v, %v, %v)", c.l, c.m, c.s)
}

// LMSTransform is a paired XYZ->LMS matrix and its inverse. The inverse
// is always derived numerically from the forward matrix, so a round trip
// through any transform recovers the input to float64 precision.
type LMSTransform struct {
	forward, inverse Matrix3
}

// NewLMSTransform builds a transform from a forward XYZ->LMS matrix,
// computing the inverse. It returns an error for singular matrices.
func NewLMSTransform(forward Matrix3) (LMSTransform, error) {
	inverse, err := forward.Inverse()
	if err != nil {
		return LMSTransform{}, err
	}
	return LMSTransform{forward: forward, inverse: inverse}, nil
}

// ForwardTransform returns the XYZ->LMS matrix.
func (t LMSTransform) ForwardTransform() Matrix3 { return t.forward }

// InverseTransform returns the LMS->XYZ matrix.
func (t LMSTransform) InverseTransform() Matrix3 { return t.inverse }

// Standard chromatic adaptation transforms.
var (
	// CAT02 is the CIECAM02 chromatic adaptation transform.
	CAT02 = mustLMSTransform(Matrix3{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	})
	// Bradford is the Bradford adaptation transform used by ICC profile
	// connection.
	Bradford = mustLMSTransform(Matrix3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	})
	// VonKries is the Hunt-Pointer-Estevez transform normalized to D65.
	VonKries = mustLMSTransform(Matrix3{
		0.4002, 0.7076, -0.0808,
		-0.2263, 1.1653, 0.0457,
		0.0000, 0.0000, 0.9182,
	})
)

func mustLMSTransform(forward Matrix3) LMSTransform {
	return LMSTransform{forward: forward, inverse: forward.MustInverse()}
}

// LMSFromXYZ converts an XYZ color to cone responses under tr.
func LMSFromXYZ[T channel.Float](from XYZ[T], tr LMSTransform) LMS[T] {
	l, m, s := tr.forward.Apply(float64(from.x), float64(from.y), float64(from.z))
	return LMS[T]{l: T(l), m: T(m), s: T(s)}
}

// XYZFromLMS converts cone responses back to XYZ under the same transform
// that produced them.
func XYZFromLMS[T channel.Float](from LMS[T], tr LMSTransform) XYZ[T] {
	x, y, z := tr.inverse.Apply(float64(from.l), float64(from.m), float64(from.s))
	return XYZ[T]{x: T(x), y: T(y), z: T(z)}
}
