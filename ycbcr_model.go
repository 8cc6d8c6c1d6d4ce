package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// Model describes a YCbCr-family color model: a forward RGB->YCbCr
// matrix and its inverse. The matrices operate on raw channel values
// (0..max for unsigned formats, 0..1 for floats); the chroma channels
// they produce are symmetric, and StandardShift re-centers them for
// unsigned formats, where the symmetric range is stored offset onto
// [0, max].
//
// The unit models (JPEGModel, BT709Model, YIQModel) are empty structs
// whose zero value is ready to use, so a color carries one at no size
// cost. CustomModel holds its matrices in memory and is carried by
// pointer.
type Model interface {
	ForwardTransform() Matrix3
	InverseTransform() Matrix3
}

// CanonicalModel is a Model whose standard defines channel ranges other
// than the [0, 1] / [-1, 1] used here, along with the scale factors to
// reach them. See CanonicalRepresentation.
type CanonicalModel interface {
	Model
	CanonicalScale() (y, cb, cr float64)
}

// StandardShift returns the additive chroma shift for the scalar format
// T: zero for float formats, (0, max/2+1, max/2+1) for unsigned formats.
// Every model in this package shifts this way.
func StandardShift[T channel.Scalar]() (y, cb, cr T) {
	if channel.IsFloat[T]() {
		return 0, 0, 0
	}
	half := channel.Max[T]()/2 + 1
	return 0, half, half
}

// modelMatrix derives the forward transform from the luma coefficients
// kr and kb: luma is the weighted sum of RGB and the chroma rows scale
// (B - Y) and (R - Y) into [-1/2, 1/2], doubled onto the symmetric range.
func modelMatrix(kr, kb float64) Matrix3 {
	kg := 1 - kr - kb
	return Matrix3{
		kr, kg, kb,
		-0.5 * kr / (1 - kb), -0.5 * kg / (1 - kb), 0.5,
		0.5, -0.5 * kg / (1 - kr), -0.5 * kb / (1 - kr),
	}
}

// JPEGModel is the JFIF full-range BT.601 model used by JPEG. Both
// matrices match the published standard to its stated precision; the
// inverse is the standard's own rather than a numerical inversion.
type JPEGModel struct{}

// ForwardTransform returns the RGB->YCbCr matrix.
func (JPEGModel) ForwardTransform() Matrix3 {
	return Matrix3{
		0.299, 0.587, 0.114,
		-0.168736, -0.331264, 0.5,
		0.5, -0.418688, -0.081312,
	}
}

// InverseTransform returns the YCbCr->RGB matrix.
func (JPEGModel) InverseTransform() Matrix3 {
	return Matrix3{
		1, 0, 1.402,
		1, -0.3441, -0.7141,
		1, 1.772, 0,
	}
}

// CanonicalScale returns the BT.601 analog ranges: Cb in [-0.436, 0.436]
// and Cr in [-0.615, 0.615].
func (JPEGModel) CanonicalScale() (float64, float64, float64) {
	return 1, 0.436, 0.615
}

// bt709Forward is derived from the BT.709 luma coefficients; the inverse
// is computed numerically so the round trip closes exactly.
var (
	bt709Forward = modelMatrix(0.2126, 0.0722)
	bt709Inverse = bt709Forward.MustInverse()
)

// BT709Model is the ITU-R BT.709 model used by HDTV, full range.
type BT709Model struct{}

// ForwardTransform returns the RGB->YCbCr matrix.
func (BT709Model) ForwardTransform() Matrix3 { return bt709Forward }

// InverseTransform returns the YCbCr->RGB matrix.
func (BT709Model) InverseTransform() Matrix3 { return bt709Inverse }

// yiqForward is the canonical NTSC YIQ matrix with the I and Q rows
// rescaled from their analog ranges onto [-1, 1].
var (
	yiqCanonicalI = 0.5957
	yiqCanonicalQ = 0.5226

	yiqForward = Matrix3{
		0.299, 0.587, 0.114,
		0.595716 / yiqCanonicalI, -0.274453 / yiqCanonicalI, -0.321263 / yiqCanonicalI,
		0.211456 / yiqCanonicalQ, -0.522591 / yiqCanonicalQ, 0.311135 / yiqCanonicalQ,
	}
	yiqInverse = yiqForward.MustInverse()
)

// YIQModel is the NTSC YIQ model. The I and Q channels occupy the Cb and
// Cr positions, rescaled onto the symmetric range; CanonicalScale
// recovers the analog ranges.
type YIQModel struct{}

// ForwardTransform returns the RGB->YIQ matrix.
func (YIQModel) ForwardTransform() Matrix3 { return yiqForward }

// InverseTransform returns the YIQ->RGB matrix.
func (YIQModel) InverseTransform() Matrix3 { return yiqInverse }

// CanonicalScale returns the NTSC analog ranges: I in [-0.5957, 0.5957]
// and Q in [-0.5226, 0.5226].
func (YIQModel) CanonicalScale() (float64, float64, float64) {
	return 1, yiqCanonicalI, yiqCanonicalQ
}

// CustomModel is a runtime-built model derived from a pair of luma
// coefficients. Colors carry it by pointer: YCbCr[T, *CustomModel].
type CustomModel struct {
	forward, inverse Matrix3
}

// NewCustomModel derives a model from the luma coefficients kr and kb.
// The inverse matrix is computed numerically, so inverse-after-forward
// recovers the input to float64 precision. Coefficient pairs whose
// matrix is singular return an error.
func NewCustomModel(kr, kb float64) (*CustomModel, error) {
	if kr == 1 || kb == 1 {
		return nil, fmt.Errorf("chroma: luma coefficients kr=%v kb=%v give a singular transform", kr, kb)
	}
	forward := modelMatrix(kr, kb)
	inverse, err := forward.Inverse()
	if err != nil {
		return nil, fmt.Errorf("chroma: luma coefficients kr=%v kb=%v: %w", kr, kb, err)
	}
	return &CustomModel{forward: forward, inverse: inverse}, nil
}

// ForwardTransform returns the RGB->YCbCr matrix.
func (m *CustomModel) ForwardTransform() Matrix3 { return m.forward }

// InverseTransform returns the YCbCr->RGB matrix.
func (m *CustomModel) InverseTransform() Matrix3 { return m.inverse }
