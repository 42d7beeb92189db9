// Package render composites the panel's passes onto a pixel buffer.
//
// The Compositor runs the fixed pass order — background warp, pills,
// icons, playhead/particles, text — over a RenderTarget, blending each
// pass's premultiplied output source-over onto the previous. There is
// no depth buffer: the order is significance order, most background
// first. Rows are split into horizontal bands evaluated in parallel;
// each band runs all passes in order over its own rows, so ordering is
// preserved without any locking.
package render

import (
	"fmt"
	"math"

	"github.com/CodedNil/cantus"
	"github.com/CodedNil/cantus/internal/parallel"
	"github.com/gogpu/gputypes"
)

// Frame bundles everything the host submits for one display tick: the
// scalar snapshot, the per-pass instance arrays, and the warp source.
// The compositor only reads it; the host must not mutate it (or the
// shared texture resources) while Render is in flight.
type Frame struct {
	State cantus.FrameState

	// Background is the warp pass source, or nil to skip the pass.
	Background *cantus.Texture

	Pills []cantus.BackgroundPill
	Icons []cantus.IconInstance

	// Playhead is the singleton scrub-line state, or nil to skip.
	Playhead *cantus.PlayheadState

	// Particles is the fixed 64-slot seek-burst arena, or nil.
	Particles *cantus.ParticleRing

	Text []cantus.TextInstance
}

// UnsupportedFormatError reports a render target whose pixel layout the
// compositor cannot write.
type UnsupportedFormatError struct {
	Format gputypes.TextureFormat
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("render: unsupported target format %d", e.Format)
}

// Option configures a Compositor during creation.
type Option func(*options)

type options struct {
	images     *cantus.TextureArray
	atlas      *cantus.MSDFAtlas
	workers    int
	bandHeight int
}

// WithImages supplies the cover/playlist art texture array sampled by
// the pill and icon passes.
func WithImages(a *cantus.TextureArray) Option {
	return func(o *options) { o.images = a }
}

// WithAtlas supplies the MSDF glyph atlas sampled by the text pass.
func WithAtlas(a *cantus.MSDFAtlas) Option {
	return func(o *options) { o.atlas = a }
}

// WithWorkers sets the number of band workers; zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithBandHeight sets the scanline band height in pixels.
func WithBandHeight(h int) Option {
	return func(o *options) {
		if h > 0 {
			o.bandHeight = h
		}
	}
}

// Compositor renders frames onto targets. It owns a worker pool; call
// Close when done. A Compositor is safe for sequential reuse across
// frames and targets but a single Render call must finish before frame
// data may change.
type Compositor struct {
	images     *cantus.TextureArray
	atlas      *cantus.MSDFAtlas
	pool       *parallel.Pool
	bandHeight int
}

// NewCompositor creates a compositor.
func NewCompositor(opts ...Option) *Compositor {
	o := options{bandHeight: 16}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Compositor{
		images:     o.images,
		atlas:      o.atlas,
		pool:       parallel.New(o.workers),
		bandHeight: o.bandHeight,
	}
	cantus.Logger().Debug("compositor created",
		"workers", c.pool.Workers(), "bandHeight", c.bandHeight)
	return c
}

// Close releases the worker pool.
func (c *Compositor) Close() {
	c.pool.Close()
}

// Render composites the frame onto the target in the fixed pass order.
// The target is not cleared first; the caller decides what the frame
// blends over.
func (c *Compositor) Render(target RenderTarget, frame *Frame) error {
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return &UnsupportedFormatError{Format: target.Format()}
	}

	height := target.Height()
	if height <= 0 || target.Width() <= 0 {
		return nil
	}

	bands := make([]func(), 0, height/c.bandHeight+1)
	for y := 0; y < height; y += c.bandHeight {
		y0, y1 := y, y+c.bandHeight
		if y1 > height {
			y1 = height
		}
		bands = append(bands, func() {
			c.renderBand(target, frame, y0, y1)
		})
	}
	c.pool.ExecuteAll(bands)
	return nil
}

// renderBand runs every pass, in order, over rows [y0, y1).
func (c *Compositor) renderBand(target RenderTarget, frame *Frame, y0, y1 int) {
	fs := &frame.State
	width := target.Width()

	// Pass 1: background warp across the panel strip.
	if frame.Background != nil {
		py0 := clampRow(int(math.Floor(fs.PanelY)), y0, y1)
		py1 := clampRow(int(math.Ceil(fs.PanelY+fs.PanelHeight)), y0, y1)
		for y := py0; y < py1; y++ {
			for x := range width {
				p := pixelCenter(x, y)
				c.blend(target, x, y, cantus.EvalWarp(fs, frame.Background, p))
			}
		}
	}

	// Pass 2: background pills.
	for i := range frame.Pills {
		pill := &frame.Pills[i]
		c.forEachPixel(target, cantus.PillBounds(pill, fs.Scale), y0, y1, func(x, y int, p cantus.Vec2) {
			c.blend(target, x, y, cantus.EvalPill(fs, pill, c.images, p))
		})
	}

	// Pass 3: icons.
	for i := range frame.Icons {
		icon := &frame.Icons[i]
		c.forEachPixel(target, cantus.IconBounds(icon, fs.Scale), y0, y1, func(x, y int, p cantus.Vec2) {
			c.blend(target, x, y, cantus.EvalIcon(fs, icon, c.images, p))
		})
	}

	// Pass 4: playhead and seek particles.
	if frame.Playhead != nil {
		c.forEachPixel(target, cantus.PlayheadBounds(fs), y0, y1, func(x, y int, p cantus.Vec2) {
			c.blend(target, x, y, cantus.EvalPlayhead(fs, frame.Playhead, frame.Particles, p))
		})
	}

	// Pass 5: text.
	for i := range frame.Text {
		inst := &frame.Text[i]
		c.forEachPixel(target, inst.Dest, y0, y1, func(x, y int, p cantus.Vec2) {
			c.blend(target, x, y, cantus.EvalText(inst, c.atlas, p))
		})
	}
}

// forEachPixel visits the pixel centers of bounds clipped to the target
// and the band rows.
func (c *Compositor) forEachPixel(target RenderTarget, bounds cantus.Rect, y0, y1 int, fn func(x, y int, p cantus.Vec2)) {
	x0 := clampRow(int(math.Floor(bounds.X0)), 0, target.Width())
	x1 := clampRow(int(math.Ceil(bounds.X1)), 0, target.Width())
	ry0 := clampRow(int(math.Floor(bounds.Y0)), y0, y1)
	ry1 := clampRow(int(math.Ceil(bounds.Y1)), y0, y1)
	for y := ry0; y < ry1; y++ {
		for x := x0; x < x1; x++ {
			fn(x, y, pixelCenter(x, y))
		}
	}
}

// blend composites a premultiplied source pixel over the target:
// dst = src + dst*(1-srcA).
func (c *Compositor) blend(target RenderTarget, x, y int, src cantus.RGBA) {
	if src.A <= 0 {
		return
	}
	pix := target.Pixels()
	i := y*target.Stride() + x*4
	inv := 1 - src.A
	pix[i+0] = toByte(src.R + float64(pix[i+0])/255*inv)
	pix[i+1] = toByte(src.G + float64(pix[i+1])/255*inv)
	pix[i+2] = toByte(src.B + float64(pix[i+2])/255*inv)
	pix[i+3] = toByte(src.A + float64(pix[i+3])/255*inv)
}

// pixelCenter returns the sampling position for pixel (x, y).
func pixelCenter(x, y int) cantus.Vec2 {
	return cantus.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

func clampRow(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
