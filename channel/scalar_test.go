package channel

import (
	"math"
	"testing"
)

func TestMax(t *testing.T) {
	if got := Max[uint8](); got != 255 {
		t.Errorf("Max[uint8]() = %d", got)
	}
	if got := Max[uint64](); got != math.MaxUint64 {
		t.Errorf("Max[uint64]() = %d", got)
	}
	if got := Max[float64](); got != 1 {
		t.Errorf("Max[float64]() = %v", got)
	}
}

func TestClampPos(t *testing.T) {
	tests := []struct {
		name     string
		in, want float64
	}{
		{"in range", 0.5, 0.5},
		{"above", 1.25, 1},
		{"below", -0.5, 0},
		{"at max", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPos(tt.in); got != tt.want {
				t.Errorf("ClampPos(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got := ClampPos(ClampPos(tt.in)); got != tt.want {
				t.Errorf("ClampPos is not idempotent for %v", tt.in)
			}
		})
	}

	// Every unsigned value is already in range.
	if got := ClampPos(uint8(200)); got != 200 {
		t.Errorf("ClampPos(uint8(200)) = %d", got)
	}
}

func TestClampSym(t *testing.T) {
	if got := ClampSym(-1.5); got != -1 {
		t.Errorf("ClampSym(-1.5) = %v", got)
	}
	if got := ClampSym(1.5); got != 1 {
		t.Errorf("ClampSym(1.5) = %v", got)
	}
	if got := ClampSym(-0.25); got != -0.25 {
		t.Errorf("ClampSym(-0.25) = %v", got)
	}
}

func TestIsNormalized(t *testing.T) {
	if !IsNormalizedPos(uint8(255)) || !IsNormalizedPos(uint8(0)) {
		t.Error("unsigned values must always be normalized")
	}
	if IsNormalizedPos(1.01) {
		t.Error("1.01 is out of the positive range")
	}
	if IsNormalizedSym(-1.01) {
		t.Error("-1.01 is out of the symmetric range")
	}
	if !IsNormalizedSym(-1.0) || !IsNormalizedSym(1.0) {
		t.Error("the symmetric bounds are in range")
	}
}

func TestInvert(t *testing.T) {
	if got := InvertPos(uint8(0)); got != 255 {
		t.Errorf("InvertPos(0) = %d", got)
	}
	if got := InvertPos(uint8(100)); got != 155 {
		t.Errorf("InvertPos(100) = %d", got)
	}
	if got := InvertPos(0.25); got != 0.75 {
		t.Errorf("InvertPos(0.25) = %v", got)
	}
	if got := InvertSym(0.3); got != -0.3 {
		t.Errorf("InvertSym(0.3) = %v", got)
	}
	if got := InvertSym(uint8(100)); got != 155 {
		t.Errorf("InvertSym(100) = %d", got)
	}

	// Involution.
	if got := InvertPos(InvertPos(uint16(12345))); got != 12345 {
		t.Errorf("double InvertPos drifted to %d", got)
	}
}

func TestLerpFloat(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		pos      float64
		want     float64
	}{
		{"midpoint", 0, 1, 0.5, 0.5},
		{"start", 0.2, 0.8, 0, 0.2},
		{"end", 0.2, 0.8, 1, 0.8},
		{"quarter", 0, 1, 0.25, 0.25},
		{"extrapolate above", 0, 0.5, 2, 1},
		{"extrapolate below", 0.2, 0.4, -0.5, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.pos); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.pos, got, tt.want)
			}
		})
	}
}

func TestLerpInt(t *testing.T) {
	// Integer interpolation goes through float64 and truncates.
	if got := Lerp(uint8(25), uint8(150), 0.5); got != 87 {
		t.Errorf("Lerp(25, 150, 0.5) = %d, want 87", got)
	}
	if got := Lerp(uint8(0), uint8(255), 1); got != 255 {
		t.Errorf("Lerp(0, 255, 1) = %d, want 255", got)
	}
	if got := Lerp(uint8(200), uint8(100), 0.5); got != 150 {
		t.Errorf("Lerp(200, 100, 0.5) = %d, want 150", got)
	}
	// Extrapolation saturates at the format bounds.
	if got := Lerp(uint8(200), uint8(250), 3); got != 255 {
		t.Errorf("Lerp(200, 250, 3) = %d, want 255", got)
	}
	if got := Lerp(uint8(100), uint8(200), -2); got != 0 {
		t.Errorf("Lerp(100, 200, -2) = %d, want 0", got)
	}
}
