package cantus

import "math"

// FrameState is the per-frame scalar bundle. The host rebuilds it once
// per display tick and every pass reads it immutably; no pass ever
// writes back. All animation in the core derives from Time minus a
// timestamp recorded on some earlier event, so there are no accumulated
// deltas to desynchronize across dropped frames.
type FrameState struct {
	// Screen is the full output size in physical pixels.
	Screen Vec2

	// PanelY and PanelHeight give the vertical extent of the panel
	// within the screen.
	PanelY      float64
	PanelHeight float64

	// Cursor is the pointer position in pixels. Pressure is 0 when the
	// pointer is idle and rises to 1 while pressed.
	Cursor   Vec2
	Pressure float64

	// Scale is the UI scale factor. Distances expressed in logical
	// units are multiplied by Scale before comparison with pixels.
	Scale float64

	// PlayheadX is the x coordinate of the scrub line.
	PlayheadX float64

	// Time is monotonic wall-clock time in seconds.
	Time float64

	// Expansion records the most recent click/seek acknowledgement.
	// The host persists it until superseded by a newer event.
	Expansion ExpansionEvent
}

// ExpansionEvent marks a click or seek at a position and timestamp.
// A Time at or below zero means no event is active.
type ExpansionEvent struct {
	Pos  Vec2
	Time float64
}

// Active reports whether the event should still drive a ripple at the
// given wall-clock time, for the given ripple duration in seconds.
func (e ExpansionEvent) Active(now, duration float64) bool {
	if e.Time <= 0 || duration <= 0 {
		return false
	}
	elapsed := now - e.Time
	return elapsed >= 0 && elapsed < duration
}

// PillShape selects the corner profile of a background pill.
type PillShape uint8

const (
	// PillRounded uses circular corners with independent left and right
	// radii.
	PillRounded PillShape = iota

	// PillSquircle uses a single superellipse corner radius.
	PillSquircle
)

// BackgroundPill is one rounded panel in the background pass.
// Colors are packed fixed-point RGBA anchors blended by the turbulence
// field; the record's layout is independent of render resolution.
type BackgroundPill struct {
	// Rect is the pill's extent in pixels.
	Rect Rect

	// Shape selects rounded-rect or squircle corners. For PillRounded,
	// CornerLeft and CornerRight give the per-side radii; for
	// PillSquircle only CornerLeft is used.
	Shape       PillShape
	CornerLeft  float64
	CornerRight float64

	// Colors are the four turbulence anchor colors.
	Colors [4]PackedColor

	// Alpha scales both color and coverage of the whole pill.
	Alpha float64

	// DarkWidth marks the watched duration: pixels left of this local x
	// offset are darkened by half.
	DarkWidth float64

	// ImageIndex selects cover art from the texture array, or -1 for
	// none. The host must never submit an out-of-range non-negative
	// index.
	ImageIndex int
}

// cornerAt returns the corner radius for a local x position, clamped so
// a radius can never exceed half the smaller pill dimension.
func (b *BackgroundPill) cornerAt(localX float64) float64 {
	r := b.CornerLeft
	if b.Shape == PillRounded && localX > 0 {
		r = b.CornerRight
	}
	limit := math.Min(b.Rect.Width(), b.Rect.Height()) / 2
	return Clamp(r, 0, limit)
}

// TextInstance is one pre-shaped glyph quad: a destination rectangle in
// pixels, a source rectangle in [0,1] atlas UV space, and a tint.
type TextInstance struct {
	Dest Rect
	UV   Rect
	Tint RGBA
}

// IconVariant selects the glyph drawn by the icon pass.
type IconVariant uint8

const (
	// IconStar is the five-pointed favorite/rating glyph with a
	// two-tone wipe driven by Activity.
	IconStar IconVariant = iota

	// IconSquircle is a textured playlist marker; Activity blends it
	// toward a flat inactive gray.
	IconSquircle
)

// IconInstance is one interactive icon.
type IconInstance struct {
	// Pos is the icon center in pixels.
	Pos Vec2

	// Variant selects the glyph; this is a closed tag dispatched by a
	// switch, not a polymorphic type.
	Variant IconVariant

	// Activity is the wipe/selection progress in [0, 1].
	Activity float64

	// Alpha scales the icon's coverage.
	Alpha float64

	// ImageIndex selects the squircle variant's texture layer.
	ImageIndex int
}

// PlayheadState drives the scrub-line pass. The host owns and advances
// the three progress values; the core is a pure function of them. The
// host guarantees at most one of PlayLerp and PauseLerp ramps toward 1
// at a time, giving a mutually exclusive crossfade.
type PlayheadState struct {
	// Volume is the playback volume in [0, 1]; pixels at or below the
	// volume line get the accent tint.
	Volume float64

	// BarLerp splits the solid bar into two capsules as it rises 0 to 1,
	// parting the line for the icon overlay.
	BarLerp float64

	// PlayLerp and PauseLerp are envelope progress values for the two
	// icon glyphs: appear near 0, fully visible through 0.5, gone by 1.
	PlayLerp  float64
	PauseLerp float64
}
