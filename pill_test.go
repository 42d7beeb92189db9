package cantus

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func flatPillFrame() (*FrameState, *BackgroundPill) {
	fs := &FrameState{
		Screen:      Vec2{X: 400, Y: 140},
		PanelY:      40,
		PanelHeight: 60,
		Scale:       1,
		Time:        100,
	}
	pill := &BackgroundPill{
		Rect:       R(100, 40, 300, 100),
		Shape:      PillRounded,
		Colors:     flatAnchors(RGB(0.3, 0.5, 0.7)),
		Alpha:      1,
		ImageIndex: -1,
	}
	return fs, pill
}

func flatAnchors(c RGBA) [4]PackedColor {
	p := Pack(c)
	return [4]PackedColor{p, p, p, p}
}

func solidImage(c color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestEvalPillFlatColor(t *testing.T) {
	// Zero corner radius and four identical anchors: every deep interior
	// pixel gets the same color at full coverage, and pixels beyond the
	// shadow reach get nothing.
	fs, pill := flatPillFrame()

	center := EvalPill(fs, pill, nil, Vec2{X: 200, Y: 70})
	if math.Abs(center.A-1) > 1e-6 {
		t.Errorf("interior coverage = %f, want 1", center.A)
	}

	other := EvalPill(fs, pill, nil, Vec2{X: 150, Y: 70})
	if math.Abs(center.R-other.R) > 1e-9 ||
		math.Abs(center.G-other.G) > 1e-9 ||
		math.Abs(center.B-other.B) > 1e-9 {
		t.Errorf("flat pill not flat: %v vs %v", center, other)
	}

	outside := EvalPill(fs, pill, nil, Vec2{X: 330, Y: 70})
	if outside != Transparent {
		t.Errorf("pixel beyond shadow = %v, want transparent", outside)
	}
}

func TestEvalPillShadowHalo(t *testing.T) {
	// Just outside the edge the shadow contributes coverage but no
	// color.
	fs, pill := flatPillFrame()
	got := EvalPill(fs, pill, nil, Vec2{X: 303, Y: 70})
	if got.A <= 0 || got.A > pillShadowStrength+1e-6 {
		t.Errorf("shadow coverage = %f, want in (0, %f]", got.A, pillShadowStrength)
	}
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("shadow carried color: %v", got)
	}
}

func TestEvalPillZeroAlpha(t *testing.T) {
	fs, pill := flatPillFrame()
	pill.Alpha = 0
	if got := EvalPill(fs, pill, nil, Vec2{X: 200, Y: 70}); got != Transparent {
		t.Errorf("alpha 0 pill = %v, want transparent", got)
	}
}

func TestEvalPillWatchedDarkening(t *testing.T) {
	// Left of DarkWidth every channel halves; with identical anchors the
	// two sides differ by exactly that factor.
	fs, pill := flatPillFrame()
	pill.DarkWidth = 100 // split at x=200

	left := EvalPill(fs, pill, nil, Vec2{X: 150, Y: 70})
	right := EvalPill(fs, pill, nil, Vec2{X: 250, Y: 70})
	if math.Abs(left.R-right.R/2) > 1e-6 ||
		math.Abs(left.G-right.G/2) > 1e-6 ||
		math.Abs(left.B-right.B/2) > 1e-6 {
		t.Errorf("watched side %v is not half of unwatched %v", left, right)
	}
	if math.Abs(left.A-right.A) > 1e-9 {
		t.Error("darkening changed coverage")
	}
}

func TestEvalPillCoverArt(t *testing.T) {
	// Inside the art window the sampled image replaces the synthesized
	// color entirely when the art is opaque.
	fs, pill := flatPillFrame()
	images := NewTextureArray(solidImage(color.RGBA{R: 255, A: 255}, 8))
	pill.ImageIndex = 0

	// Art window center: trailing edge, sized to pill height.
	got := EvalPill(fs, pill, images, Vec2{X: 270, Y: 70})
	if math.Abs(got.R-1) > 0.01 || got.G > 0.01 || got.B > 0.01 {
		t.Errorf("art window pixel = %v, want red", got)
	}

	// Outside the window the art contributes nothing.
	base := EvalPill(fs, pill, nil, Vec2{X: 150, Y: 70})
	withArt := EvalPill(fs, pill, images, Vec2{X: 150, Y: 70})
	if base != withArt {
		t.Errorf("art leaked outside its window: %v vs %v", base, withArt)
	}
}

func TestEvalPillRipple(t *testing.T) {
	// An active expansion event brightens the ring it crosses and is
	// ignored once the window has passed.
	fs, pill := flatPillFrame()
	base := EvalPill(fs, pill, nil, Vec2{X: 240, Y: 70})

	fs.Expansion = ExpansionEvent{
		Pos:  Vec2{X: 200, Y: 70},
		Time: fs.Time - 0.25*RippleDuration,
	}
	// progress 0.25: ring radius 40, and (240,70) sits on it.
	ringed := EvalPill(fs, pill, nil, Vec2{X: 240, Y: 70})
	if ringed.Luma() <= base.Luma() {
		t.Errorf("ripple did not brighten: %f vs %f", ringed.Luma(), base.Luma())
	}

	fs.Expansion.Time = fs.Time - 2*RippleDuration
	stale := EvalPill(fs, pill, nil, Vec2{X: 240, Y: 70})
	if stale != base {
		t.Errorf("stale ripple still rendering: %v vs %v", stale, base)
	}
}

func TestEvalPillSquircleShape(t *testing.T) {
	// The squircle profile keeps more of the corner than the circular
	// one at the same radius.
	fs, pill := flatPillFrame()
	pill.CornerLeft = 20
	pill.CornerRight = 20

	corner := Vec2{X: 104, Y: 44}
	rounded := EvalPill(fs, pill, nil, corner)
	pill.Shape = PillSquircle
	squircle := EvalPill(fs, pill, nil, corner)
	if squircle.A <= rounded.A {
		t.Errorf("squircle corner coverage %f not above rounded %f", squircle.A, rounded.A)
	}
}

func TestPillBounds(t *testing.T) {
	_, pill := flatPillFrame()
	got := PillBounds(pill, 2)
	want := pill.Rect.Inflate(pillShadowWidth*2, pillShadowWidth*2)
	if got != want {
		t.Errorf("PillBounds = %v, want %v", got, want)
	}
}

func TestBackgroundPillCornerClamp(t *testing.T) {
	// A corner radius can never exceed half the smaller pill dimension.
	pill := &BackgroundPill{
		Rect:        R(0, 0, 200, 40),
		Shape:       PillRounded,
		CornerLeft:  500,
		CornerRight: 10,
	}
	if got := pill.cornerAt(-50); got != 20 {
		t.Errorf("left corner = %f, want clamped 20", got)
	}
	if got := pill.cornerAt(50); got != 10 {
		t.Errorf("right corner = %f, want 10", got)
	}
}

func BenchmarkEvalPill(b *testing.B) {
	fs, pill := flatPillFrame()
	pill.Colors = [4]PackedColor{
		Pack(RGB(0.1, 0.2, 0.3)),
		Pack(RGB(0.8, 0.1, 0.4)),
		Pack(RGB(0.2, 0.7, 0.5)),
		Pack(RGB(0.9, 0.9, 0.2)),
	}
	p := Vec2{X: 200.5, Y: 70.5}
	b.ReportAllocs()
	for b.Loop() {
		_ = EvalPill(fs, pill, nil, p)
	}
}
