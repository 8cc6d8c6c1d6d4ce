package chroma

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func d65() XYZ[float64] { return XYZOf[float64](WhitePointD65) }

func TestLabFromXYZWhite(t *testing.T) {
	got := LabFromXYZ(d65(), d65())
	if math.Abs(got.L()-100) > 1e-9 || math.Abs(got.A()) > 1e-9 || math.Abs(got.B()) > 1e-9 {
		t.Errorf("white point mapped to %v, want L*a*b*(100, 0, 0)", got)
	}
}

func TestLabFromXYZBlack(t *testing.T) {
	got := LabFromXYZ(NewXYZ(0.0, 0.0, 0.0), d65())
	if math.Abs(got.L()) > 1e-9 || math.Abs(got.A()) > 1e-9 || math.Abs(got.B()) > 1e-9 {
		t.Errorf("black mapped to %v", got)
	}
}

func TestLabFromXYZRed(t *testing.T) {
	// sRGB primary red under D65.
	xyz := NewXYZ(0.4124564, 0.2126729, 0.0193339)
	got := LabFromXYZ(xyz, d65())
	want := NewLab(53.2329, 80.1093, 67.2201)
	if !AlmostEqual(got, want, 1e-2) {
		t.Errorf("red = %v, want %v", got, want)
	}
}

func TestLabRoundTrip(t *testing.T) {
	inputs := []XYZ[float64]{
		NewXYZ(0.4124564, 0.2126729, 0.0193339),
		NewXYZ(0.1, 0.2, 0.3),
		// Below the linear-segment threshold on every channel.
		NewXYZ(0.005, 0.004, 0.006),
		NewXYZ(0.95047, 1.0, 1.08883),
	}
	for _, xyz := range inputs {
		back := XYZFromLab(LabFromXYZ(xyz, d65()), d65())
		if !AlmostEqual(back, xyz, 1e-9) {
			t.Errorf("round trip of %v drifted to %v", xyz, back)
		}
	}
}

func TestLabThresholdContinuity(t *testing.T) {
	// The piecewise lightness function must agree on both sides of the
	// threshold.
	lo := labF(labEpsilon * (1 - 1e-9))
	hi := labF(labEpsilon * (1 + 1e-9))
	if math.Abs(lo-hi) > 1e-6 {
		t.Errorf("labF is discontinuous at the threshold: %v vs %v", lo, hi)
	}
}

func TestLabMatchesColorful(t *testing.T) {
	// go-colorful scales L*, a* and b* by 1/100.
	colors := [][3]float64{
		{1, 0, 0},
		{0.2, 0.7, 0.4},
		{0.05, 0.05, 0.05},
		{1, 1, 1},
	}
	for _, rgb := range colors {
		ref := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
		wantL, wantA, wantB := ref.Lab()

		// Tolerance absorbs the extra sRGB matrix digits go-colorful
		// carries.
		got := LabFromXYZ(XYZFromSRGB(NewRGB(rgb[0], rgb[1], rgb[2])), d65())
		if math.Abs(got.L()/100-wantL) > 1e-3 ||
			math.Abs(got.A()/100-wantA) > 1e-3 ||
			math.Abs(got.B()/100-wantB) > 1e-3 {
			t.Errorf("Lab of %v = %v, colorful gives (%v, %v, %v)",
				rgb, got, wantL*100, wantA*100, wantB*100)
		}
	}
}

func TestLabUnderOtherWhitePoints(t *testing.T) {
	// The white point maps to L*=100 regardless of illuminant.
	for _, wp := range []WhitePoint{WhitePointA, WhitePointD50, WhitePointE, WhitePointF7} {
		w := XYZOf[float64](wp)
		got := LabFromXYZ(w, w)
		if math.Abs(got.L()-100) > 1e-9 || math.Abs(got.A()) > 1e-9 || math.Abs(got.B()) > 1e-9 {
			t.Errorf("%v white mapped to %v", wp, got)
		}
	}
}

func TestLabLerp(t *testing.T) {
	a := NewLab(20.0, -10.0, 40.0)
	b := NewLab(80.0, 30.0, -20.0)
	got := a.Lerp(b, 0.5)
	if !AlmostEqual(got, NewLab(50.0, 10.0, 10.0), 1e-12) {
		t.Errorf("Lerp = %v", got)
	}
}
