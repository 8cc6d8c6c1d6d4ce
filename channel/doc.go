// Package channel defines the scalar formats a color channel can be stored
// in and the semantics attached to each channel kind.
//
// A channel is a single scalar component of a color (red, hue, luma, ...).
// Every channel has a numeric representation, one of the types in the
// Scalar constraint, and a semantic kind that decides its bounds:
//
//   - Bounded-positive channels span [0, max]: the full range for unsigned
//     integers, [0, 1] for floats. RGB components, saturation and value are
//     of this kind.
//   - Bounded-symmetric channels span [-1, 1] for floats. Unsigned integers
//     store them shifted, so the whole integer range is in bounds. YCbCr
//     chroma is of this kind.
//   - Free channels are unbounded (Lab a*/b*, XYZ tristimulus).
//   - Angular channels are periodic; their arithmetic lives in package
//     angle.
//
// # Casting
//
// Cast converts a value between any two scalar formats without ever
// failing. Integer widening replicates the bit pattern (0xFF becomes
// 0xFFFF, not 0xFF00), integer narrowing keeps the most significant bits,
// and float/integer conversions map the integer range onto [0, 1].
// Narrowing is intentionally lossy; round trips are only approximate.
//
// # Normalization
//
// IsNormalized* reports whether a value lies inside its kind's bounds and
// Clamp* saturates it into them. Clamping is idempotent and a no-op for
// integer bounded channels, which are always in bounds.
package channel
