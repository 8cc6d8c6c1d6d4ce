// Package chroma represents colors across many color spaces and converts
// between them exactly and reversibly where the math allows.
//
// Every color is an immutable value type: a fixed-arity tuple of channels
// generic over the scalar format they are stored in (any of uint8, uint16,
// uint32, uint64, float32, float64; see package channel). Supported
// spaces are RGB, the polar HSV/HSL/HWB/HSI family, the YCbCr family
// (including YIQ) with pluggable conversion models, CIE XYZ, xyY, Lab,
// Luv, the LCh polar forms of both, and LMS cone response.
//
// # Contracts
//
// A color type implements exactly the capability contracts its channels
// support: Bounded for clamping into range, Invertible for channel
// reflection, Lerper for linear interpolation, and Flattener for
// conversion to and from a contiguous channel slice. Generic helpers such
// as CastColor and AlmostEqual operate over those contracts, so behavior
// never drifts between the ~15 concrete types.
//
// Interpolation positions are deliberately not clamped to [0, 1]; callers
// may extrapolate.
//
// # Conversions
//
// Conversions are directed package-level functions, named <Dst>From<Src>,
// and route through CIE XYZ as the common linear intermediate where no
// direct path exists. Conversions that can leave the target gamut either
// take a GamutMode (Preserve or Clip) or come in a Try variant that
// reports absence for out-of-gamut results.
//
// # Errors
//
// Construction invariant violations (an xyY chromaticity sum above one, a
// flatten slice that is too short) are programming errors and panic.
// Casting never fails; narrowing precision loss is accepted behavior.
package chroma
