package chroma

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsRow ties together one color expressed in every hue-based space. The
// values are rounded to three decimals (hue to one), so comparisons use
// matching tolerances.
type hsRow struct {
	hsv [3]float64
	rgb [3]float64
	hsl [3]float64
	hsi [3]float64
}

var hsTable = []hsRow{
	{[3]float64{0, 0, 1}, [3]float64{1, 1, 1}, [3]float64{0, 0, 1}, [3]float64{0, 0, 1}},
	{[3]float64{0, 0, 0.5}, [3]float64{0.5, 0.5, 0.5}, [3]float64{0, 0, 0.5}, [3]float64{0, 0, 0.5}},
	{[3]float64{0, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 0, 0}},
	{[3]float64{0, 1, 1}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0.5}, [3]float64{0, 1, 0.333}},
	{[3]float64{60, 1, 0.75}, [3]float64{0.75, 0.75, 0}, [3]float64{60, 1, 0.375}, [3]float64{60, 1, 0.5}},
	{[3]float64{120, 1, 0.5}, [3]float64{0, 0.5, 0}, [3]float64{120, 1, 0.25}, [3]float64{120, 1, 0.167}},
	{[3]float64{180, 0.5, 1}, [3]float64{0.5, 1, 1}, [3]float64{180, 1, 0.75}, [3]float64{180, 0.4, 0.833}},
	{[3]float64{240, 0.5, 1}, [3]float64{0.5, 0.5, 1}, [3]float64{240, 1, 0.75}, [3]float64{240, 0.25, 0.667}},
	{[3]float64{300, 0.667, 0.75}, [3]float64{0.75, 0.25, 0.75}, [3]float64{300, 0.5, 0.5}, [3]float64{300, 0.571, 0.583}},
	{[3]float64{61.8, 0.779, 0.643}, [3]float64{0.628, 0.643, 0.142}, [3]float64{61.8, 0.638, 0.393}, [3]float64{61.5, 0.699, 0.471}},
	{[3]float64{251.1, 0.887, 0.918}, [3]float64{0.255, 0.104, 0.918}, [3]float64{251.1, 0.832, 0.511}, [3]float64{250, 0.756, 0.426}},
	{[3]float64{134.9, 0.828, 0.675}, [3]float64{0.116, 0.675, 0.255}, [3]float64{134.9, 0.707, 0.396}, [3]float64{133.8, 0.667, 0.349}},
	{[3]float64{49.5, 0.944, 0.941}, [3]float64{0.941, 0.785, 0.053}, [3]float64{49.5, 0.893, 0.497}, [3]float64{50.5, 0.911, 0.593}},
	{[3]float64{283.7, 0.792, 0.897}, [3]float64{0.704, 0.187, 0.897}, [3]float64{283.7, 0.775, 0.542}, [3]float64{284.8, 0.686, 0.596}},
	{[3]float64{14.3, 0.661, 0.931}, [3]float64{0.931, 0.463, 0.316}, [3]float64{14.3, 0.817, 0.624}, [3]float64{13.2, 0.446, 0.57}},
	{[3]float64{162.4, 0.875, 0.795}, [3]float64{0.099, 0.795, 0.591}, [3]float64{162.4, 0.779, 0.447}, [3]float64{163.4, 0.8, 0.495}},
	{[3]float64{248.3, 0.75, 0.597}, [3]float64{0.211, 0.149, 0.597}, [3]float64{248.3, 0.601, 0.373}, [3]float64{247.3, 0.533, 0.319}},
	{[3]float64{240.5, 0.316, 0.721}, [3]float64{0.495, 0.493, 0.721}, [3]float64{240.5, 0.29, 0.607}, [3]float64{240.4, 0.135, 0.57}},
}

// approxHue compares a hue-led channel triple: the hue tolerance is in
// degrees, the rest share eps.
func approxHue(t *testing.T, label string, gotH, gotA, gotB float64, want [3]float64, hueEps, eps float64) {
	t.Helper()
	if math.Abs(gotH-want[0]) > hueEps ||
		math.Abs(gotA-want[1]) > eps ||
		math.Abs(gotB-want[2]) > eps {
		t.Errorf("%s = (%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)",
			label, gotH, gotA, gotB, want[0], want[1], want[2])
	}
}

func approxRGB(t *testing.T, label string, got RGB[float64], want [3]float64, eps float64) {
	t.Helper()
	if !AlmostEqual(got, NewRGB(want[0], want[1], want[2]), eps) {
		t.Errorf("%s = %v, want RGB(%.4f, %.4f, %.4f)", label, got, want[0], want[1], want[2])
	}
}

func TestHSVFromRGB(t *testing.T) {
	for _, row := range hsTable {
		got := HSVFromRGB(NewRGB(row.rgb[0], row.rgb[1], row.rgb[2]))
		approxHue(t, "HSVFromRGB", got.Hue(), got.Saturation(), got.Value(), row.hsv, 0.1, 2e-3)
	}
}

func TestRGBFromHSV(t *testing.T) {
	for _, row := range hsTable {
		got := RGBFromHSV(NewHSV(row.hsv[0], row.hsv[1], row.hsv[2]))
		approxRGB(t, "RGBFromHSV", got, row.rgb, 2e-3)
	}
}

func TestHSLFromRGB(t *testing.T) {
	for _, row := range hsTable {
		got := HSLFromRGB(NewRGB(row.rgb[0], row.rgb[1], row.rgb[2]))
		approxHue(t, "HSLFromRGB", got.Hue(), got.Saturation(), got.Lightness(), row.hsl, 0.1, 2e-3)
	}
}

func TestRGBFromHSL(t *testing.T) {
	for _, row := range hsTable {
		got := RGBFromHSL(NewHSL(row.hsl[0], row.hsl[1], row.hsl[2]))
		approxRGB(t, "RGBFromHSL", got, row.rgb, 2e-3)
	}
}

func TestHSIFromRGB(t *testing.T) {
	for _, row := range hsTable {
		got := HSIFromRGB(NewRGB(row.rgb[0], row.rgb[1], row.rgb[2]))
		approxHue(t, "HSIFromRGB", got.Hue(), got.Saturation(), got.Intensity(), row.hsi, 0.15, 2e-3)
	}
}

func TestRGBFromHSI(t *testing.T) {
	for _, row := range hsTable {
		// The table's HSI channels are rounded, which the inverse's
		// division by intensity amplifies.
		got := RGBFromHSI(NewHSI(row.hsi[0], row.hsi[1], row.hsi[2]), GamutPreserve)
		approxRGB(t, "RGBFromHSI", got, row.rgb, 1e-2)
	}
}

func TestHSIGamut(t *testing.T) {
	// Full saturation at full intensity has no RGB representation.
	out, ok := TryRGBFromHSI(NewHSI(90.0, 1.0, 1.0))
	if ok {
		t.Errorf("expected out-of-gamut, got %v", out)
	}
	clipped := RGBFromHSI(NewHSI(90.0, 1.0, 1.0), GamutClip)
	if !clipped.IsNormalized() {
		t.Errorf("clipped conversion still out of gamut: %v", clipped)
	}

	// In-gamut colors pass through unchanged.
	if _, ok := TryRGBFromHSI(NewHSI(90.0, 0.3, 0.4)); !ok {
		t.Error("in-gamut color reported out of gamut")
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, row := range hsTable {
		rgb := NewRGB(row.rgb[0], row.rgb[1], row.rgb[2])
		back := RGBFromHSV(HSVFromRGB(rgb))
		if !AlmostEqual(back, rgb, 1e-9) {
			t.Errorf("round trip of %v drifted to %v", rgb, back)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, row := range hsTable {
		rgb := NewRGB(row.rgb[0], row.rgb[1], row.rgb[2])
		back := RGBFromHSL(HSLFromRGB(rgb))
		if !AlmostEqual(back, rgb, 1e-9) {
			t.Errorf("round trip of %v drifted to %v", rgb, back)
		}
	}
}

func TestHWBRoundTrip(t *testing.T) {
	for _, row := range hsTable {
		rgb := NewRGB(row.rgb[0], row.rgb[1], row.rgb[2])
		back := RGBFromHWB(HWBFromRGB(rgb))
		if !AlmostEqual(back, rgb, 1e-9) {
			t.Errorf("round trip of %v drifted to %v", rgb, back)
		}
	}
}

func TestHWBFromHSV(t *testing.T) {
	hwb := HWBFromHSV(NewHSV(120.0, 0.75, 0.8))
	approxHue(t, "HWBFromHSV", hwb.Hue(), hwb.Whiteness(), hwb.Blackness(),
		[3]float64{120, 0.2, 0.2}, 1e-9, 1e-9)
}

func TestHSVFromHWBRescalesOversum(t *testing.T) {
	// Whiteness and blackness summing past 1 describe the same color as
	// their proportional rescale.
	got := HSVFromHWB(NewHWB(30.0, 0.8, 0.8))
	approxHue(t, "HSVFromHWB", got.Hue(), got.Saturation(), got.Value(),
		[3]float64{30, 0, 0.5}, 1e-9, 1e-9)
}

func TestHSVMatchesColorful(t *testing.T) {
	for _, row := range hsTable {
		ref := colorful.Color{R: row.rgb[0], G: row.rgb[1], B: row.rgb[2]}
		h, s, v := ref.Hsv()
		got := HSVFromRGB(NewRGB(row.rgb[0], row.rgb[1], row.rgb[2]))
		approxHue(t, "HSVFromRGB vs colorful", got.Hue(), got.Saturation(), got.Value(),
			[3]float64{h, s, v}, 1e-6, 1e-9)
	}
}

func TestHSLMatchesColorful(t *testing.T) {
	for _, row := range hsTable {
		ref := colorful.Color{R: row.rgb[0], G: row.rgb[1], B: row.rgb[2]}
		h, s, l := ref.Hsl()
		got := HSLFromRGB(NewRGB(row.rgb[0], row.rgb[1], row.rgb[2]))
		approxHue(t, "HSLFromRGB vs colorful", got.Hue(), got.Saturation(), got.Lightness(),
			[3]float64{h, s, l}, 1e-6, 1e-9)
	}
}

func TestHueLerpWrapsAround(t *testing.T) {
	a := NewHSV(350.0, 0.5, 0.5)
	b := NewHSV(10.0, 0.5, 0.5)
	got := a.Lerp(b, 0.5)
	if math.Abs(got.Hue()) > 1e-9 {
		t.Errorf("hue midpoint across zero = %v, want 0", got.Hue())
	}
}

func TestHueInvert(t *testing.T) {
	c := NewHSV(90.0, 0.25, 0.75)
	got := c.Invert()
	approxHue(t, "Invert", got.Hue(), got.Saturation(), got.Value(),
		[3]float64{270, 0.75, 0.25}, 1e-9, 1e-9)
}
