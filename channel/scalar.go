package channel

import "math"

// Unsigned is the set of unsigned integer channel formats.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Float is the set of floating point channel formats.
type Float interface {
	float32 | float64
}

// Scalar is the set of all supported channel formats.
type Scalar interface {
	Unsigned | Float
}

// Max returns the upper bound of a bounded-positive channel: the maximum
// integer value for unsigned formats, 1 for float formats.
func Max[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	}
	return v
}

// MinSym returns the lower bound of a bounded-symmetric channel: 0 for
// unsigned formats (which store symmetric values shifted), -1 for floats.
func MinSym[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = -1
	case *float64:
		*p = -1
	}
	return v
}

// IsFloat reports whether T is a floating point format.
func IsFloat[T Scalar]() bool {
	var v T
	switch any(v).(type) {
	case float32, float64:
		return true
	}
	return false
}

// IsNormalizedPos reports whether v is within the bounded-positive range.
// Every unsigned integer value is in range.
func IsNormalizedPos[T Scalar](v T) bool {
	if !IsFloat[T]() {
		return true
	}
	return v >= 0 && v <= Max[T]()
}

// ClampPos saturates v into the bounded-positive range. Idempotent; the
// identity for unsigned formats.
func ClampPos[T Scalar](v T) T {
	if v > Max[T]() {
		return Max[T]()
	}
	var zero T
	if v < zero {
		return zero
	}
	return v
}

// IsNormalizedSym reports whether v is within the bounded-symmetric range.
// Every unsigned integer value is in range.
func IsNormalizedSym[T Scalar](v T) bool {
	if !IsFloat[T]() {
		return true
	}
	return v >= MinSym[T]() && v <= Max[T]()
}

// ClampSym saturates v into the bounded-symmetric range. Idempotent; the
// identity for unsigned formats.
func ClampSym[T Scalar](v T) T {
	if v > Max[T]() {
		return Max[T]()
	}
	if v < MinSym[T]() {
		return MinSym[T]()
	}
	return v
}

// InvertPos reflects a bounded-positive value across its range:
// min + max - v. Applying it twice returns the original value.
func InvertPos[T Scalar](v T) T {
	return Max[T]() - v
}

// InvertSym reflects a bounded-symmetric value: -v for floats, max - v for
// the shifted unsigned representation.
func InvertSym[T Scalar](v T) T {
	if IsFloat[T]() {
		var zero T
		return zero - v
	}
	return Max[T]() - v
}

// Lerp linearly interpolates between a and b. The position is not clamped
// to [0, 1]; positions outside it extrapolate. Integer formats interpolate
// through float64 and truncate the result.
func Lerp[T Scalar](a, b T, pos float64) T {
	v := float64(a)*(1-pos) + float64(b)*pos
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
