package chroma

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestLuvFromXYZWhite(t *testing.T) {
	got := LuvFromXYZ(d65(), d65())
	if math.Abs(got.L()-100) > 1e-9 || math.Abs(got.U()) > 1e-9 || math.Abs(got.V()) > 1e-9 {
		t.Errorf("white point mapped to %v, want L*u*v*(100, 0, 0)", got)
	}
}

func TestLuvFromXYZBlack(t *testing.T) {
	got := LuvFromXYZ(NewXYZ(0.0, 0.0, 0.0), d65())
	if got.L() != 0 || got.U() != 0 || got.V() != 0 {
		t.Errorf("black mapped to %v", got)
	}
}

func TestLuvFromXYZRed(t *testing.T) {
	xyz := NewXYZ(0.4124564, 0.2126729, 0.0193339)
	got := LuvFromXYZ(xyz, d65())
	want := NewLuv(53.2329, 175.0150, 37.7564)
	if !AlmostEqual(got, want, 5e-2) {
		t.Errorf("red = %v, want %v", got, want)
	}
}

func TestLuvRoundTrip(t *testing.T) {
	inputs := []XYZ[float64]{
		NewXYZ(0.4124564, 0.2126729, 0.0193339),
		NewXYZ(0.1, 0.2, 0.3),
		NewXYZ(0.005, 0.004, 0.006),
		NewXYZ(0.95047, 1.0, 1.08883),
	}
	for _, xyz := range inputs {
		back := XYZFromLuv(LuvFromXYZ(xyz, d65()), d65())
		if !AlmostEqual(back, xyz, 1e-9) {
			t.Errorf("round trip of %v drifted to %v", xyz, back)
		}
	}
}

func TestLuvZeroLightnessRoundTrip(t *testing.T) {
	got := XYZFromLuv(NewLuv(0.0, 0.0, 0.0), d65())
	if got.X() != 0 || got.Y() != 0 || got.Z() != 0 {
		t.Errorf("zero lightness mapped to %v", got)
	}
}

func TestLuvMatchesColorful(t *testing.T) {
	// go-colorful scales L*, u* and v* by 1/100.
	colors := [][3]float64{
		{1, 0, 0},
		{0.2, 0.7, 0.4},
		{1, 1, 1},
	}
	for _, rgb := range colors {
		ref := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
		wantL, wantU, wantV := ref.Luv()

		// Tolerance absorbs the extra sRGB matrix digits go-colorful
		// carries.
		got := LuvFromXYZ(XYZFromSRGB(NewRGB(rgb[0], rgb[1], rgb[2])), d65())
		if math.Abs(got.L()/100-wantL) > 1e-3 ||
			math.Abs(got.U()/100-wantU) > 1e-3 ||
			math.Abs(got.V()/100-wantV) > 1e-3 {
			t.Errorf("Luv of %v = %v, colorful gives (%v, %v, %v)",
				rgb, got, wantL*100, wantU*100, wantV*100)
		}
	}
}
