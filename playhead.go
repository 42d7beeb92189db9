package cantus

import "math"

// Playhead pass. A vertical scrub capsule that parts around a morphing
// play/pause glyph, colored by volume, with a stateless particle burst
// acknowledging seeks. There is no state machine: the host advances
// three progress scalars and the pass is a pure function of them. The
// envelope in [EnvelopeActive] makes each glyph channel appear near
// progress 0, hold through 0.5, and vanish by 1, so hidden/appearing/
// vanishing fall out of the math instead of an enum.

const (
	// crossfadeEpsilon stabilizes the play/pause weight when both
	// channels are idle.
	crossfadeEpsilon = 1e-5

	// playheadStrip is the evaluated half-width of the pass in logical
	// pixels; particles outside it clip.
	playheadStrip = 140.0

	barHalfWidth  = 1.5
	barEndPad     = 4.0
	iconRadius    = 6.5
	pausePartMax  = 4.5
	particleTrail = 0.03
)

var (
	playheadAccent = RGB(0.30, 0.78, 0.59)
	playheadGray   = RGB(0.62, 0.62, 0.62)
)

// PlayheadBounds returns the vertical strip the pass evaluates,
// spanning the panel height plus room for falling particles.
func PlayheadBounds(fs *FrameState) Rect {
	w := playheadStrip * fs.Scale
	return Rect{
		X0: fs.PlayheadX - w,
		Y0: fs.PanelY - 20*fs.Scale,
		X1: fs.PlayheadX + w,
		Y1: fs.PanelY + fs.PanelHeight + 40*fs.Scale,
	}
}

// EvalPlayhead evaluates the playhead pass for one pixel, returning a
// premultiplied color whose alpha is the pass coverage. The particle
// ring may be nil.
func EvalPlayhead(fs *FrameState, ph *PlayheadState, ring *ParticleRing, p Vec2) RGBA {
	scale := fs.Scale
	cx := fs.PlayheadX
	cy := fs.PanelY + fs.PanelHeight/2
	local := Vec2{X: p.X - cx, Y: p.Y - cy}

	dBar := barDistance(fs, ph, p)
	dIcon, iconOpacity := iconDistance(ph, local, scale)

	barMask := Coverage(dBar)
	iconMask := Coverage(dIcon) * iconOpacity

	// Volume coloring: normalized panel height, flipped so the top is
	// high volume. At or below the volume line the bar takes the accent
	// tint, above it neutral gray.
	frac := 1 - Clamp((p.Y-fs.PanelY)/fs.PanelHeight, 0, 1)
	barColor := playheadGray
	if frac <= ph.Volume {
		barColor = playheadAccent
	}

	out := RGBA{
		R: barColor.R*barMask + iconMask,
		G: barColor.G*barMask + iconMask,
		B: barColor.B*barMask + iconMask,
		A: Saturate(barMask + iconMask),
	}

	// Drop shadow over the max of both fields.
	dMin := math.Min(dBar, dIcon)
	shadow := 0.4 * sq(1-Clamp(dMin/(4.5*scale), 0, 1))
	out.A = Saturate(out.A + shadow*(1-out.A))

	if ring != nil {
		out = addParticles(out, fs, ring, p)
	}
	return out
}

// barDistance is the scrub line: one solid capsule at BarLerp 0 that
// splits into top and bottom capsules around a growing middle gap as
// BarLerp rises to 1.
func barDistance(fs *FrameState, ph *PlayheadState, p Vec2) float64 {
	scale := fs.Scale
	x := fs.PlayheadX
	cy := fs.PanelY + fs.PanelHeight/2
	top := fs.PanelY + barEndPad*scale
	bottom := fs.PanelY + fs.PanelHeight - barEndPad*scale
	gap := ph.BarLerp * (iconRadius + 4) * scale
	r := barHalfWidth * scale

	dTop := Segment(p, Vec2{X: x, Y: top}, Vec2{X: x, Y: cy - gap}, r)
	dBottom := Segment(p, Vec2{X: x, Y: cy + gap}, Vec2{X: x, Y: bottom}, r)
	return Union(dTop, dBottom)
}

// iconDistance morphs between the play triangle and the pause bars by
// interpolating the two distance fields, not colors: the weight is
// pauseActive/(pauseActive+playActive+eps), and shared opacity is
// clamp(pauseActive+playActive, 0, 1). The host keeps the two channels
// mutually exclusive past their midpoints; the core asserts nothing.
func iconDistance(ph *PlayheadState, local Vec2, scale float64) (d, opacity float64) {
	playActive := EnvelopeActive(ph.PlayLerp)
	pauseActive := EnvelopeActive(ph.PauseLerp)
	opacity = Clamp(playActive+pauseActive, 0, 1)
	if opacity <= 0 {
		return math.Inf(1), 0
	}

	// Play: rounded triangle pointing right, scaled up from near zero
	// by its envelope. Distances are evaluated in the shrunken space
	// and scaled back to keep the field metric.
	s := math.Max(playActive, crossfadeEpsilon)
	tri := Vec2{X: local.Y, Y: -local.X}.Div(s)
	dPlay := RoundedTriangle(tri, iconRadius*1.15*scale, 1.5*scale) * s

	// Pause: two vertical capsules parting horizontally.
	part := pauseActive * pausePartMax * scale
	halfH := iconRadius * 0.9 * scale
	r := 1.8 * scale
	dPause := Union(
		Segment(local, Vec2{X: -part, Y: -halfH}, Vec2{X: -part, Y: halfH}, r),
		Segment(local, Vec2{X: part, Y: -halfH}, Vec2{X: part, Y: halfH}, r),
	)

	w := pauseActive / (pauseActive + playActive + crossfadeEpsilon)
	return Mix(dPlay, dPause, w), opacity
}

// addParticles scans the fixed 64-slot arena and adds each live
// particle as a short capsule along its closed-form trajectory,
// weighted by remaining lifetime and cross-sectional falloff.
func addParticles(out RGBA, fs *FrameState, ring *ParticleRing, p Vec2) RGBA {
	slots := ring.Slots()
	for i := range slots {
		pt := &slots[i]
		life := pt.AlphaAt(fs.Time)
		if life <= 0 {
			continue
		}
		dt := fs.Time - pt.SpawnTime
		head := pt.PositionAt(dt)
		tail := pt.PositionAt(math.Max(dt-particleTrail, 0))
		d := Segment(p, tail, head, 1.2*fs.Scale)
		w := life * Coverage(d)
		if w <= 0 {
			continue
		}
		c := pt.Color.Unpack()
		out.R += c.R * c.A * w
		out.G += c.G * c.A * w
		out.B += c.B * c.A * w
		out.A = Saturate(out.A + c.A*w)
	}
	return out
}
