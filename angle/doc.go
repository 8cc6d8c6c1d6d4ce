// Package angle provides the periodic arithmetic behind angular color
// channels such as hue.
//
// Angles are plain floating point scalars paired with a period. Colors in
// this module store hue in degrees (period 360); the Unit type and Convert
// translate a value into any of the other supported angular units by
// rescaling with the ratio of the two periods, so a value's fractional
// position around the circle is preserved.
//
// Normalize wraps a value into [0, period). Lerp interpolates along the
// shorter arc between two angles, and Invert rotates by half the period,
// which is its own inverse.
package angle
