package channel

import "math"

// Cast converts a channel value between scalar formats. It is total: no
// input panics or fails, though narrowing loses precision.
//
// The conversion rules preserve each format's notion of "how far along the
// range" a value is:
//
//   - Unsigned to wider unsigned replicates the bit pattern, so the
//     maximum maps to the maximum (0xFF -> 0xFFFF).
//   - Unsigned to narrower unsigned keeps the most significant bits.
//   - Unsigned to float divides by the integer maximum, giving [0, 1].
//   - Float to uint8 multiplies by 255.99 and floors, so values close to
//     1.0 still land on 255; wider integer targets multiply by the exact
//     maximum and truncate. Out-of-range floats saturate.
//   - Float to float converts directly.
func Cast[Out, In Scalar](v In) Out {
	switch in := any(v).(type) {
	case uint8:
		return castUint[Out](uint64(in), 8)
	case uint16:
		return castUint[Out](uint64(in), 16)
	case uint32:
		return castUint[Out](uint64(in), 32)
	case uint64:
		return castUint[Out](in, 64)
	case float32:
		return castFloat[Out](float64(in))
	default:
		return castFloat[Out](any(v).(float64))
	}
}

// CastSymmetric converts a bounded-symmetric channel value between scalar
// formats. Floats hold symmetric values in [-1, 1] while unsigned integers
// store them shifted onto their full range, so float/integer conversions
// re-center: -1 maps to 0, 0 to the half-range, 1 to the maximum.
// Conversions that stay on the same side (int/int or float/float) behave
// exactly like Cast.
func CastSymmetric[Out, In Scalar](v In) Out {
	inFloat, outFloat := IsFloat[In](), IsFloat[Out]()
	switch {
	case inFloat && !outFloat:
		return castFloat[Out]((float64(v) + 1) / 2)
	case !inFloat && outFloat:
		return Cast[Out](v)*2 - Max[Out]()
	default:
		return Cast[Out](v)
	}
}

// castUint dispatches an unsigned value of the given bit width to any
// target format.
func castUint[Out Scalar](v uint64, width uint) Out {
	var out Out
	switch p := any(&out).(type) {
	case *uint8:
		*p = uint8(replicate(v, width) >> 56)
	case *uint16:
		*p = uint16(replicate(v, width) >> 48)
	case *uint32:
		*p = uint32(replicate(v, width) >> 32)
	case *uint64:
		*p = replicate(v, width)
	case *float32:
		*p = float32(float64(v) / maxForWidth(width))
	case *float64:
		*p = float64(v) / maxForWidth(width)
	}
	return out
}

// castFloat dispatches a float value to any target format.
func castFloat[Out Scalar](f float64) Out {
	var out Out
	switch p := any(&out).(type) {
	case *uint8:
		// Biased slightly above the true maximum so values just below
		// 1.0 still reach 255.
		*p = satUint[uint8](math.Floor(f * 255.99))
	case *uint16:
		*p = satUint[uint16](f * math.MaxUint16)
	case *uint32:
		*p = satUint[uint32](f * math.MaxUint32)
	case *uint64:
		*p = satUint[uint64](f * maxForWidth(64))
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
	return out
}

// FromRaw converts a raw numeric value already expressed in T's own range
// (for example the result of a matrix transform over integer channels)
// back to T. Unsigned formats truncate toward zero and saturate; floats
// convert directly.
func FromRaw[T Scalar](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = satUint[uint8](v)
	case *uint16:
		*p = satUint[uint16](v)
	case *uint32:
		*p = satUint[uint32](v)
	case *uint64:
		*p = satUint[uint64](v)
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}

// replicate fills all 64 bits with copies of the low `width` bits,
// equivalent to multiplying by the repeating constant (0x0101... for
// width 8).
func replicate(v uint64, width uint) uint64 {
	for w := width; w < 64; w *= 2 {
		v |= v << w
	}
	return v
}

// maxForWidth returns the maximum unsigned value of the given bit width as
// a float64.
func maxForWidth(width uint) float64 {
	if width == 64 {
		return float64(math.MaxUint64)
	}
	return float64(uint64(1)<<width - 1)
}

// satUint truncates f toward zero and saturates it into T's range instead
// of relying on Go's implementation-defined out-of-range conversions.
func satUint[T Unsigned](f float64) T {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	if f >= maxForWidth(bitWidth[T]()) {
		return Max[T]()
	}
	return T(f)
}

func bitWidth[T Unsigned]() uint {
	var v T
	switch any(v).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}
