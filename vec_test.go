package cantus

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	v := V2(3, 4)
	w := V2(1, -2)

	if got := v.Add(w); got != V2(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(w); got != V2(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(2); got != V2(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := v.Div(2); got != V2(1.5, 2) {
		t.Errorf("Div = %v", got)
	}
	if got := v.Dot(w); got != -5 {
		t.Errorf("Dot = %f", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %f", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %f", got)
	}
}

func TestVecFoldHelpers(t *testing.T) {
	v := V2(-3, 4)
	if got := v.Abs(); got != V2(3, 4) {
		t.Errorf("Abs = %v", got)
	}
	if got := v.Max(V2(0, 0)); got != V2(0, 4) {
		t.Errorf("Max = %v", got)
	}
	if got := v.Min(V2(0, 0)); got != V2(-3, 0) {
		t.Errorf("Min = %v", got)
	}
	if got := v.AddScalar(2); got != V2(-1, 6) {
		t.Errorf("AddScalar = %v", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %f", n.Length())
	}
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("zero vector normalized to %v", got)
	}
}

func TestVecRotate(t *testing.T) {
	got := V2(1, 0).Rotate(math.Pi / 2)
	if !got.Approx(V2(0, 1), 1e-12) {
		t.Errorf("quarter turn = %v, want (0, 1)", got)
	}
	// Rotation preserves length.
	v := V2(3, -7)
	if math.Abs(v.Rotate(1.234).Length()-v.Length()) > 1e-9 {
		t.Error("rotation changed length")
	}
}

func TestVecLerp(t *testing.T) {
	a := V2(0, 10)
	b := V2(10, 0)
	if got := a.Lerp(b, 0.5); got != V2(5, 5) {
		t.Errorf("Lerp midpoint = %v", got)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints drifted")
	}
}

func TestRect(t *testing.T) {
	r := R(10, 20, 50, 40)
	if r.Width() != 40 || r.Height() != 20 {
		t.Errorf("size = %f x %f", r.Width(), r.Height())
	}
	if got := r.Center(); got != V2(30, 30) {
		t.Errorf("Center = %v", got)
	}
	if got := r.HalfExtent(); got != V2(20, 10) {
		t.Errorf("HalfExtent = %v", got)
	}
	if !r.Contains(V2(30, 30)) || r.Contains(V2(60, 30)) {
		t.Error("Contains wrong")
	}
	if got := r.Inflate(5, 2); got != R(5, 18, 55, 42) {
		t.Errorf("Inflate = %v", got)
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if !R(5, 5, 5, 9).IsEmpty() {
		t.Error("zero-width rect not empty")
	}
}
