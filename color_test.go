package cantus

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RRGGBB", "FF8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"with hash", "#FF8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"RRGGBBAA", "00FF0080", RGBA{R: 0, G: 1, B: 0, A: 128.0 / 255}},
		{"short RGB", "F80", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"short RGBA", "F808", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 136.0 / 255}},
		{"lowercase", "ff8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"invalid length", "FF80A", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorApprox(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexMalformed(t *testing.T) {
	// Unparseable input falls back to opaque black.
	got := Hex("nope!")
	if !colorApprox(got, RGBA{A: 1}, 1e-9) {
		t.Errorf("Hex(malformed) = %v, want opaque black", got)
	}
}

func TestPackUnpackRoundtrip(t *testing.T) {
	colors := []RGBA{
		RGB(0, 0, 0),
		RGB(1, 1, 1),
		RGBA2(0.25, 0.5, 0.75, 0.5),
		RGB(0.123, 0.456, 0.789),
	}
	for _, c := range colors {
		got := Pack(c).Unpack()
		if !colorApprox(got, c, 1.0/255) {
			t.Errorf("roundtrip %v = %v", c, got)
		}
	}
}

func TestPackLayout(t *testing.T) {
	// 0xRRGGBBAA byte order.
	if got := Pack(RGB(1, 0, 0)); got != 0xFF0000FF {
		t.Errorf("Pack(red) = %#08x, want 0xFF0000FF", uint32(got))
	}
	if got := Pack(RGBA2(0, 0, 1, 0)); got != 0x0000FF00 {
		t.Errorf("Pack(transparent blue) = %#08x, want 0x0000FF00", uint32(got))
	}
}

func TestPackClamps(t *testing.T) {
	got := Pack(RGBA{R: 2, G: -1, B: 0.5, A: 1}).Unpack()
	if got.R != 1 || got.G != 0 {
		t.Errorf("out-of-range components not clamped: %v", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 0.5, 0)
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.G-0.25) > 1e-9 {
		t.Errorf("Lerp midpoint = %v", mid)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints drifted")
	}
}

func TestLuma(t *testing.T) {
	if got := White.Luma(); math.Abs(got-1) > 1e-9 {
		t.Errorf("white luma = %f, want 1", got)
	}
	if got := Black.Luma(); got != 0 {
		t.Errorf("black luma = %f, want 0", got)
	}
	// Green dominates Rec. 601.
	if RGB(0, 1, 0).Luma() <= RGB(1, 0, 0).Luma() {
		t.Error("green luma not above red")
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA2(1, 0.5, 0.25, 0.5).Premultiply()
	want := RGBA{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if !colorApprox(c, want, 1e-9) {
		t.Errorf("Premultiply = %v, want %v", c, want)
	}
}

func colorApprox(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.A-b.A) <= eps
}
