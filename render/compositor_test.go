package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/CodedNil/cantus"
	"github.com/gogpu/gputypes"
)

func testFrame() *Frame {
	anchors := [4]cantus.PackedColor{
		cantus.Pack(cantus.RGB(0.3, 0.5, 0.7)),
		cantus.Pack(cantus.RGB(0.3, 0.5, 0.7)),
		cantus.Pack(cantus.RGB(0.3, 0.5, 0.7)),
		cantus.Pack(cantus.RGB(0.3, 0.5, 0.7)),
	}
	return &Frame{
		State: cantus.FrameState{
			Screen:      cantus.V2(128, 64),
			PanelY:      8,
			PanelHeight: 48,
			Cursor:      cantus.V2(-100, -100),
			Scale:       1,
			PlayheadX:   64,
			Time:        20,
		},
		Pills: []cantus.BackgroundPill{{
			Rect:       cantus.R(8, 8, 120, 56),
			Shape:      cantus.PillRounded,
			CornerLeft: 10, CornerRight: 10,
			Colors:     anchors,
			Alpha:      1,
			ImageIndex: -1,
		}},
		Playhead: &cantus.PlayheadState{Volume: 0.5, BarLerp: 0},
	}
}

func alphaAt(t *testing.T, target *PixmapTarget, x, y int) uint8 {
	t.Helper()
	return target.Pixels()[y*target.Stride()+x*4+3]
}

func TestCompositorRender(t *testing.T) {
	comp := NewCompositor(WithWorkers(2), WithBandHeight(8))
	defer comp.Close()

	target := NewPixmapTarget(128, 64)
	if err := comp.Render(target, testFrame()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Inside the pill the frame wrote full coverage; the top-left corner
	// sits outside every pass's bounds and stays empty.
	if got := alphaAt(t, target, 64, 32); got != 255 {
		t.Errorf("pill interior alpha = %d, want 255", got)
	}
	if got := alphaAt(t, target, 1, 1); got != 0 {
		t.Errorf("untouched corner alpha = %d, want 0", got)
	}
}

func TestCompositorPassOrder(t *testing.T) {
	// The playhead renders after the pills: on the scrub line the bar
	// color must win over the pill color.
	comp := NewCompositor(WithWorkers(1))
	defer comp.Close()

	frame := testFrame()
	target := NewPixmapTarget(128, 64)
	if err := comp.Render(target, frame); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Panel midpoint at volume 0.5 boundary; pick a clearly-below pixel.
	i := 44*target.Stride() + 64*4
	r := target.Pixels()[i]
	// Accent green channel dominates red for the playhead accent.
	g := target.Pixels()[i+1]
	if g <= r {
		t.Errorf("scrub line not on top: r=%d g=%d", r, g)
	}
}

func TestCompositorBandIndependence(t *testing.T) {
	// One worker and many must produce identical images.
	frame := testFrame()

	serial := NewPixmapTarget(128, 64)
	cs := NewCompositor(WithWorkers(1), WithBandHeight(64))
	if err := cs.Render(serial, frame); err != nil {
		t.Fatal(err)
	}
	cs.Close()

	parallel := NewPixmapTarget(128, 64)
	cp := NewCompositor(WithWorkers(8), WithBandHeight(4))
	if err := cp.Render(parallel, frame); err != nil {
		t.Fatal(err)
	}
	cp.Close()

	sp := serial.Pixels()
	pp := parallel.Pixels()
	for i := range sp {
		if sp[i] != pp[i] {
			t.Fatalf("pixel byte %d differs: %d vs %d", i, sp[i], pp[i])
		}
	}
}

func TestCompositorRenderBlendsOver(t *testing.T) {
	// Render does not clear: a translucent pass composites over what is
	// already in the target.
	comp := NewCompositor()
	defer comp.Close()

	target := NewPixmapTarget(128, 64)
	for i := 0; i < len(target.Pixels()); i += 4 {
		target.Pixels()[i] = 255   // red
		target.Pixels()[i+3] = 255 // opaque
	}

	frame := testFrame()
	frame.Pills = nil
	if err := comp.Render(target, frame); err != nil {
		t.Fatal(err)
	}
	if got := target.Pixels()[0]; got != 255 {
		t.Errorf("untouched background overwritten: r=%d", got)
	}
}

type bgraTarget struct{ *PixmapTarget }

func (bgraTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func TestCompositorUnsupportedFormat(t *testing.T) {
	comp := NewCompositor()
	defer comp.Close()

	err := comp.Render(bgraTarget{NewPixmapTarget(4, 4)}, testFrame())
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("err = %v, want UnsupportedFormatError", err)
	}
	if ufe.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("error format = %v", ufe.Format)
	}
}

func TestCompositorTextPass(t *testing.T) {
	atlas := &cantus.MSDFAtlas{
		Data:    fullInsideAtlas(8),
		Width:   8,
		Height:  8,
		PxRange: 4,
	}
	comp := NewCompositor(WithAtlas(atlas))
	defer comp.Close()

	frame := testFrame()
	frame.Pills = nil
	frame.Playhead = nil
	frame.Text = []cantus.TextInstance{{
		Dest: cantus.R(10, 10, 18, 18),
		UV:   cantus.R(0, 0, 1, 1),
		Tint: cantus.White,
	}}

	target := NewPixmapTarget(64, 32)
	if err := comp.Render(target, frame); err != nil {
		t.Fatal(err)
	}
	if got := alphaAt(t, target, 14, 14); got != 255 {
		t.Errorf("glyph interior alpha = %d, want 255", got)
	}
	if got := alphaAt(t, target, 30, 14); got != 0 {
		t.Errorf("outside glyph alpha = %d, want 0", got)
	}
}

func fullInsideAtlas(size int) []byte {
	data := make([]byte, size*size*3)
	for i := range data {
		data[i] = 255
	}
	return data
}

func TestIngestArt(t *testing.T) {
	arr := cantus.NewTextureArray()
	src := solidTestImage(color.RGBA{G: 200, A: 255}, 7)

	idx := IngestArt(arr, src, 16)
	if idx != 0 || arr.Layers() != 1 {
		t.Fatalf("index %d, layers %d", idx, arr.Layers())
	}
	got := arr.Sample(idx, 0.5, 0.5)
	if got.G < 0.7 || got.A < 0.99 {
		t.Errorf("resampled art center = %v", got)
	}
}

func TestWarpSource(t *testing.T) {
	tex := WarpSource(solidTestImage(color.RGBA{B: 255, A: 255}, 5), 8)
	if tex.Width() != 8 || tex.Height() != 8 {
		t.Errorf("size = %dx%d, want 8x8", tex.Width(), tex.Height())
	}
	if got := tex.SampleUV(0.5, 0.5); got.B < 0.99 {
		t.Errorf("center = %v, want blue", got)
	}
}

func BenchmarkCompositorRender(b *testing.B) {
	comp := NewCompositor()
	defer comp.Close()
	frame := testFrame()
	target := NewPixmapTarget(128, 64)
	b.ReportAllocs()
	for b.Loop() {
		target.Clear()
		if err := comp.Render(target, frame); err != nil {
			b.Fatal(err)
		}
	}
}
