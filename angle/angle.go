package angle

import "math"

// Float is the set of scalar formats an angle can be measured in.
type Float interface {
	float32 | float64
}

// Unit identifies an angular measurement unit.
type Unit int

const (
	// Degrees has a period of 360.
	Degrees Unit = iota
	// Radians has a period of 2*pi.
	Radians
	// Turns has a period of 1.
	Turns
	// ArcMinutes has a period of 21600 (60 per degree).
	ArcMinutes
	// ArcSeconds has a period of 1296000 (3600 per degree).
	ArcSeconds
)

// Period returns the length of a full rotation in the unit.
func (u Unit) Period() float64 {
	switch u {
	case Radians:
		return 2 * math.Pi
	case Turns:
		return 1
	case ArcMinutes:
		return 21600
	case ArcSeconds:
		return 1296000
	default:
		return 360
	}
}

// String returns the unit's name.
func (u Unit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Turns:
		return "turns"
	case ArcMinutes:
		return "arcmin"
	case ArcSeconds:
		return "arcsec"
	default:
		return "deg"
	}
}

// Convert rescales an angle from one unit to another by the ratio of the
// two periods, preserving its position around the circle.
func Convert[T Float](v T, from, to Unit) T {
	return v * T(to.Period()/from.Period())
}

// Normalize wraps v into [0, period).
func Normalize[T Float](v, period T) T {
	v = T(math.Mod(float64(v), float64(period)))
	if v < 0 {
		v += period
	}
	return v
}

// IsNormalized reports whether v already lies in [0, period).
func IsNormalized[T Float](v, period T) bool {
	return v >= 0 && v < period
}

// Invert rotates v by half the period, normalized. Two inversions return
// the original angle (up to wrapping).
func Invert[T Float](v, period T) T {
	return Normalize(v+period/2, period)
}

// Lerp interpolates from a to b along the shorter arc between them. The
// position is not clamped; values outside [0, 1] extrapolate along that
// arc. The result is normalized into [0, period).
func Lerp[T Float](a, b T, pos float64, period T) T {
	diff := T(math.Mod(float64(b-a), float64(period)))
	half := period / 2
	if diff > half {
		diff -= period
	} else if diff < -half {
		diff += period
	}
	return Normalize(a+T(float64(diff)*pos), period)
}
