package chroma

import (
	"math"

	"github.com/chromakit/chroma/channel"
)

// sRGB transfer function parameters (IEC 61966-2-1).
const (
	srgbLinearCutoff  = 0.0031308
	srgbEncodedCutoff = 0.04045
	srgbLinearSlope   = 12.92
	srgbOffset        = 0.055
	srgbGamma         = 2.4
)

// srgbToXYZ maps linear sRGB to XYZ under D65. The inverse is derived
// numerically so the round trip is exact to float64 precision.
var (
	srgbToXYZ = Matrix3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToSRGB = srgbToXYZ.MustInverse()
)

// SRGBEncode applies the sRGB transfer function to a linear RGB color,
// producing gamma-encoded channels. Negative channels are mirrored
// through the origin so the function remains odd for out-of-gamut input.
func SRGBEncode[T channel.Float](c RGB[T]) RGB[T] {
	return RGB[T]{
		T(srgbEncode(float64(c.r))),
		T(srgbEncode(float64(c.g))),
		T(srgbEncode(float64(c.b))),
	}
}

// SRGBDecode inverts the sRGB transfer function, recovering linear RGB
// from gamma-encoded channels.
func SRGBDecode[T channel.Float](c RGB[T]) RGB[T] {
	return RGB[T]{
		T(srgbDecode(float64(c.r))),
		T(srgbDecode(float64(c.g))),
		T(srgbDecode(float64(c.b))),
	}
}

// XYZFromLinearRGB converts a linear sRGB color to XYZ under the D65
// white point.
func XYZFromLinearRGB[T channel.Float](c RGB[T]) XYZ[T] {
	x, y, z := srgbToXYZ.Apply(float64(c.r), float64(c.g), float64(c.b))
	return XYZ[T]{x: T(x), y: T(y), z: T(z)}
}

// LinearRGBFromXYZ converts an XYZ color to linear sRGB under D65. XYZ
// covers more than the sRGB gamut; mode selects whether out-of-gamut
// results are preserved or clipped.
func LinearRGBFromXYZ[T channel.Float](c XYZ[T], mode GamutMode) RGB[T] {
	r, g, b := xyzToSRGB.Apply(float64(c.x), float64(c.y), float64(c.z))
	out := RGB[T]{T(r), T(g), T(b)}
	if mode == GamutClip {
		return out.Normalize()
	}
	return out
}

// XYZFromSRGB converts a gamma-encoded sRGB color to XYZ, linearizing
// first.
func XYZFromSRGB[T channel.Float](c RGB[T]) XYZ[T] {
	return XYZFromLinearRGB(SRGBDecode(c))
}

// SRGBFromXYZ converts an XYZ color to gamma-encoded sRGB, applying mode
// to the linear result before encoding.
func SRGBFromXYZ[T channel.Float](c XYZ[T], mode GamutMode) RGB[T] {
	return SRGBEncode(LinearRGBFromXYZ(c, mode))
}

func srgbEncode(v float64) float64 {
	if v < 0 {
		return -srgbEncode(-v)
	}
	if v <= srgbLinearCutoff {
		return v * srgbLinearSlope
	}
	return (1+srgbOffset)*math.Pow(v, 1/srgbGamma) - srgbOffset
}

func srgbDecode(v float64) float64 {
	if v < 0 {
		return -srgbDecode(-v)
	}
	if v <= srgbEncodedCutoff {
		return v / srgbLinearSlope
	}
	return math.Pow((v+srgbOffset)/(1+srgbOffset), srgbGamma)
}
