package chroma

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a 3x3 matrix of float64 values in row-major order. It is the
// numeric backbone of the linear color transforms (RGB<->XYZ, XYZ<->LMS
// and the YCbCr model family).
type Matrix3 [9]float64

// Apply multiplies the matrix with the column vector (x, y, z).
func (m Matrix3) Apply(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// Inverse returns the matrix inverse, or an error when the matrix is
// singular or so ill-conditioned that no reliable inverse exists.
func (m Matrix3) Inverse() (Matrix3, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(3, 3, m[:])); err != nil {
		return Matrix3{}, fmt.Errorf("chroma: inverting matrix: %w", err)
	}

	var out Matrix3
	copy(out[:], inv.RawMatrix().Data)
	return out, nil
}

// MustInverse is like Inverse but panics on failure. It is intended for
// the package-level standard transform matrices, which are known to be
// invertible.
func (m Matrix3) MustInverse() Matrix3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}
