package chroma

import "github.com/chromakit/chroma/channel"

// WhitePoint is a standard illuminant described by its XYZ tristimulus
// values (normalized to Y=1) and its xy chromaticity. White points
// parameterize the Lab and Luv conversions; they carry no behavior of
// their own.
type WhitePoint struct {
	name    string
	x, y, z float64
	cx, cy  float64
}

// Name returns the illuminant's CIE designation, like "D65".
func (w WhitePoint) Name() string { return w.name }

// XYZOf returns the illuminant's tristimulus values at the requested float
// precision.
func XYZOf[T channel.Float](w WhitePoint) XYZ[T] {
	return XYZ[T]{x: T(w.x), y: T(w.y), z: T(w.z)}
}

// ChromaticityOf returns the illuminant's xy chromaticity with unit
// luminance at the requested float precision.
func ChromaticityOf[T channel.Float](w WhitePoint) XyY[T] {
	return XyY[T]{x: T(w.cx), y: T(w.cy), yy: 1}
}

// String implements fmt.Stringer.
func (w WhitePoint) String() string { return w.name }

// CIE 1931 2-degree observer standard illuminants.
var (
	// WhitePointA is incandescent / tungsten light.
	WhitePointA = WhitePoint{"A", 1.09850, 1.0, 0.35585, 0.44757, 0.40745}
	// WhitePointB is direct sunlight at noon (obsolete).
	WhitePointB = WhitePoint{"B", 0.99072, 1.0, 0.85223, 0.34842, 0.35161}
	// WhitePointC is average north sky daylight (obsolete).
	WhitePointC = WhitePoint{"C", 0.98074, 1.0, 1.18232, 0.31006, 0.31616}
	// WhitePointD50 is horizon light, the ICC profile connection space.
	WhitePointD50 = WhitePoint{"D50", 0.96422, 1.0, 0.82521, 0.34567, 0.35850}
	// WhitePointD55 is mid-morning / mid-afternoon daylight.
	WhitePointD55 = WhitePoint{"D55", 0.95682, 1.0, 0.92149, 0.33242, 0.34743}
	// WhitePointD65 is noon daylight, the sRGB and television reference.
	WhitePointD65 = WhitePoint{"D65", 0.95047, 1.0, 1.08883, 0.31271, 0.32902}
	// WhitePointD75 is north sky daylight.
	WhitePointD75 = WhitePoint{"D75", 0.94972, 1.0, 1.22638, 0.29902, 0.31485}
	// WhitePointE is the equal-energy illuminant.
	WhitePointE = WhitePoint{"E", 1.0, 1.0, 1.00003, 1.0 / 3.0, 1.0 / 3.0}
	// WhitePointF1 is daylight fluorescent.
	WhitePointF1 = WhitePoint{"F1", 0.928336, 1.0, 1.036647, 0.31310, 0.33727}
	// WhitePointF2 is cool white fluorescent.
	WhitePointF2 = WhitePoint{"F2", 0.99186, 1.0, 0.67393, 0.37208, 0.37529}
	// WhitePointF3 is white fluorescent.
	WhitePointF3 = WhitePoint{"F3", 1.037535, 1.0, 0.498605, 0.40910, 0.39430}
	// WhitePointF4 is warm white fluorescent.
	WhitePointF4 = WhitePoint{"F4", 1.091473, 1.0, 0.388133, 0.44018, 0.40329}
	// WhitePointF5 is daylight fluorescent.
	WhitePointF5 = WhitePoint{"F5", 0.908720, 1.0, 0.987229, 0.31379, 0.34531}
	// WhitePointF6 is lite white fluorescent.
	WhitePointF6 = WhitePoint{"F6", 0.973091, 1.0, 0.601905, 0.37790, 0.38835}
	// WhitePointF7 is the D65 daylight simulator.
	WhitePointF7 = WhitePoint{"F7", 0.95041, 1.0, 1.08747, 0.31292, 0.32933}
	// WhitePointF8 is the D50 simulator (Sylvania F40 Design 50).
	WhitePointF8 = WhitePoint{"F8", 0.964125, 1.0, 0.823331, 0.34588, 0.35875}
	// WhitePointF9 is cool white deluxe fluorescent.
	WhitePointF9 = WhitePoint{"F9", 1.003648, 1.0, 0.678684, 0.37417, 0.37281}
	// WhitePointF10 is the Philips TL85 / Ultralume 50.
	WhitePointF10 = WhitePoint{"F10", 0.961735, 1.0, 0.817123, 0.34609, 0.35986}
	// WhitePointF11 is the Philips TL84 / Ultralume 40.
	WhitePointF11 = WhitePoint{"F11", 1.00962, 1.0, 0.64350, 0.38052, 0.37713}
	// WhitePointF12 is the Philips TL83 / Ultralume 30.
	WhitePointF12 = WhitePoint{"F12", 1.080463, 1.0, 0.392275, 0.43695, 0.40441}
)
