package chroma

import (
	"fmt"

	"github.com/chromakit/chroma/channel"
)

// YCbCr is a color in the YCbCr family. The luma channel is
// bounded-positive; Cb and Cr are bounded-symmetric, so unsigned formats
// store them shifted onto [0, max] with the neutral point at max/2+1.
//
// The model travels with the color. Unit models cost nothing, so
// YCbCr[uint8, JPEGModel] is exactly three bytes of channels. Custom
// models are carried by pointer and must be supplied at construction
// with NewYCbCrWithModel.
type YCbCr[T channel.Scalar, M Model] struct {
	y, cb, cr T
	model     M
}

// YIQ is a YCbCr color under the NTSC YIQ model. The I channel occupies
// the Cb position and Q the Cr position.
type YIQ[T channel.Scalar] = YCbCr[T, YIQModel]

// YCbCrJPEG is a YCbCr color under the JPEG full-range BT.601 model.
type YCbCrJPEG[T channel.Scalar] = YCbCr[T, JPEGModel]

// YCbCrBT709 is a YCbCr color under the BT.709 model.
type YCbCrBT709[T channel.Scalar] = YCbCr[T, BT709Model]

// YCbCrCustom is a YCbCr color carrying a runtime-built model.
type YCbCrCustom[T channel.Scalar] = YCbCr[T, *CustomModel]

// NewYCbCr constructs a YCbCr color from channel values under a unit
// model (the zero value of M). For custom models use NewYCbCrWithModel;
// the zero value of a pointer model is nil and unusable.
func NewYCbCr[T channel.Scalar, M Model](y, cb, cr T) YCbCr[T, M] {
	return YCbCr[T, M]{y: y, cb: cb, cr: cr}
}

// NewYCbCrWithModel constructs a YCbCr color carrying an explicit model.
func NewYCbCrWithModel[T channel.Scalar, M Model](y, cb, cr T, model M) YCbCr[T, M] {
	return YCbCr[T, M]{y: y, cb: cb, cr: cr, model: model}
}

// NewYIQ constructs a YIQ color from luma, in-phase and quadrature
// channel values.
func NewYIQ[T channel.Scalar](y, i, q T) YIQ[T] {
	return YIQ[T]{y: y, cb: i, cr: q}
}

// Luma returns the Y' channel.
func (c YCbCr[T, M]) Luma() T { return c.y }

// Cb returns the blue-difference chroma channel. For YIQ colors this is
// the I channel.
func (c YCbCr[T, M]) Cb() T { return c.cb }

// Cr returns the red-difference chroma channel. For YIQ colors this is
// the Q channel.
func (c YCbCr[T, M]) Cr() T { return c.cr }

// Model returns the color's model value.
func (c YCbCr[T, M]) Model() M { return c.model }

// Shift returns the additive chroma shift for the color's scalar format.
func (YCbCr[T, M]) Shift() (y, cb, cr T) { return StandardShift[T]() }

// WithLuma returns a copy with the Y' channel replaced.
func (c YCbCr[T, M]) WithLuma(v T) YCbCr[T, M] { c.y = v; return c }

// WithCb returns a copy with the Cb channel replaced.
func (c YCbCr[T, M]) WithCb(v T) YCbCr[T, M] { c.cb = v; return c }

// WithCr returns a copy with the Cr channel replaced.
func (c YCbCr[T, M]) WithCr(v T) YCbCr[T, M] { c.cr = v; return c }

// NumChannels returns 3.
func (YCbCr[T, M]) NumChannels() int { return 3 }

// ToTuple returns the channels in declared order: luma, Cb, Cr.
func (c YCbCr[T, M]) ToTuple() (y, cb, cr T) { return c.y, c.cb, c.cr }

// IsNormalized reports whether the luma lies in its positive range and
// the chroma channels in their symmetric range. Unsigned formats are
// always normalized.
func (c YCbCr[T, M]) IsNormalized() bool {
	return channel.IsNormalizedPos(c.y) &&
		channel.IsNormalizedSym(c.cb) &&
		channel.IsNormalizedSym(c.cr)
}

// Normalize clamps every channel into its range, keeping the model.
func (c YCbCr[T, M]) Normalize() YCbCr[T, M] {
	c.y = channel.ClampPos(c.y)
	c.cb = channel.ClampSym(c.cb)
	c.cr = channel.ClampSym(c.cr)
	return c
}

// Invert reflects every channel across its range, keeping the model.
func (c YCbCr[T, M]) Invert() YCbCr[T, M] {
	c.y = channel.InvertPos(c.y)
	c.cb = channel.InvertSym(c.cb)
	c.cr = channel.InvertSym(c.cr)
	return c
}

// Lerp interpolates componentwise toward right, keeping the model.
func (c YCbCr[T, M]) Lerp(right YCbCr[T, M], pos float64) YCbCr[T, M] {
	c.y = channel.Lerp(c.y, right.y, pos)
	c.cb = channel.Lerp(c.cb, right.cb, pos)
	c.cr = channel.Lerp(c.cr, right.cr, pos)
	return c
}

// AsSlice returns the channels as a slice in declared order.
func (c YCbCr[T, M]) AsSlice() []T { return []T{c.y, c.cb, c.cr} }

// FromSlice builds a YCbCr color from the first three elements of vals,
// panicking if fewer are present. The model is taken from the receiver,
// so custom models survive the round trip.
func (c YCbCr[T, M]) FromSlice(vals []T) YCbCr[T, M] {
	checkSliceLen("YCbCr", vals, 3)
	c.y, c.cb, c.cr = vals[0], vals[1], vals[2]
	return c
}

// String implements fmt.Stringer.
func (c YCbCr[T, M]) String() string {
	return fmt.Sprintf("YCbCr(%v, %v, %v)", c.y, c.cb, c.cr)
}

// YCbCrCast converts the channel format of a YCbCr color, keeping the
// model. The luma casts as a bounded-positive channel and the chroma
// channels as bounded-symmetric ones, re-centering between the shifted
// unsigned and signed float representations.
func YCbCrCast[Out, In channel.Scalar, M Model](c YCbCr[In, M]) YCbCr[Out, M] {
	return YCbCr[Out, M]{
		y:     channel.Cast[Out](c.y),
		cb:    channel.CastSymmetric[Out](c.cb),
		cr:    channel.CastSymmetric[Out](c.cr),
		model: c.model,
	}
}

// YCbCrFromRGB converts an RGB color to YCbCr under a unit model:
//
//	ycc := chroma.YCbCrFromRGB[chroma.JPEGModel](rgb)
func YCbCrFromRGB[M Model, T channel.Scalar](from RGB[T]) YCbCr[T, M] {
	var model M
	return YCbCrFromRGBWithModel(from, model)
}

// YIQFromRGB converts an RGB color to YIQ.
func YIQFromRGB[T channel.Scalar](from RGB[T]) YIQ[T] {
	return YCbCrFromRGB[YIQModel](from)
}

// YCbCrFromRGBWithModel converts an RGB color to YCbCr under model,
// which the returned color carries. The transform runs on raw channel
// values in float64; unsigned results truncate toward zero and saturate.
func YCbCrFromRGBWithModel[T channel.Scalar, M Model](from RGB[T], model M) YCbCr[T, M] {
	sy, scb, scr := StandardShift[T]()
	y, cb, cr := model.ForwardTransform().Apply(
		float64(from.r), float64(from.g), float64(from.b))

	return YCbCr[T, M]{
		y:     channel.FromRaw[T](y + float64(sy)),
		cb:    channel.FromRaw[T](cb + float64(scb)),
		cr:    channel.FromRaw[T](cr + float64(scr)),
		model: model,
	}
}

// RGBFromYCbCr converts a YCbCr color back to RGB under the color's own
// model. YCbCr covers more than the RGB cube, so combinations of valid
// channels can produce out-of-gamut results; mode selects whether they
// are preserved or clipped. Unsigned formats saturate on store either
// way, so the distinction is visible only for float formats.
func RGBFromYCbCr[T channel.Scalar, M Model](from YCbCr[T, M], mode GamutMode) RGB[T] {
	out, _ := TryRGBFromYCbCr(from)
	if mode == GamutClip {
		return out.Normalize()
	}
	return out
}

// TryRGBFromYCbCr converts a YCbCr color to RGB, reporting ok=false when
// the exact result lies outside the RGB gamut.
func TryRGBFromYCbCr[T channel.Scalar, M Model](from YCbCr[T, M]) (RGB[T], bool) {
	sy, scb, scr := StandardShift[T]()
	r, g, b := from.model.InverseTransform().Apply(
		float64(from.y)-float64(sy),
		float64(from.cb)-float64(scb),
		float64(from.cr)-float64(scr))

	ok := inGamut[T](r) && inGamut[T](g) && inGamut[T](b)
	return RGB[T]{channel.FromRaw[T](r), channel.FromRaw[T](g), channel.FromRaw[T](b)}, ok
}

// inGamut reports whether a raw transform result lies inside T's
// bounded-positive range, counting values that truncate into range for
// unsigned formats.
func inGamut[T channel.Scalar](v float64) bool {
	if channel.IsFloat[T]() {
		return v >= 0 && v <= 1
	}
	return v > -1 && v < float64(channel.Max[T]())+1
}

// CanonicalRepresentation returns the channels rescaled to the ranges the
// model's standard defines. Most analog standards bound their chroma
// channels tighter than [-1, 1]; this undoes the normalization, returning
// the luma in [0, 1] and the chroma channels in the standard's ranges.
func CanonicalRepresentation[T channel.Scalar, M CanonicalModel](c YCbCr[T, M]) (y, cb, cr float64) {
	ys, cbs, crs := c.model.CanonicalScale()
	return channel.Cast[float64](c.y) * ys,
		channel.CastSymmetric[float64](c.cb) * cbs,
		channel.CastSymmetric[float64](c.cr) * crs
}
