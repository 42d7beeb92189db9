package cantus

// Icon pass. Interactive star and squircle glyphs grow as the cursor
// approaches, wipe between their two tones as the host sweeps Activity,
// and carry a thin inset "sticker" border.

const (
	// iconBaseHalf is the base icon half-size in logical pixels.
	iconBaseHalf = 7.0

	// iconMaxGrowth caps cursor-proximity growth at 1.6x.
	iconMaxGrowth = 0.6

	// iconPushFactor converts the signed cursor x-offset into the
	// horizontal push used in dense layouts.
	iconPushFactor = 0.2

	// iconRotatePerPush is the rotation angle per pushed pixel.
	iconRotatePerPush = 0.012

	// iconBorderWidth is the sticker border thickness in logical pixels.
	iconBorderWidth = 1.5
)

// Star wipe and squircle tones, from the panel's fixed palette.
var (
	iconGold     = RGB(220.0/255, 180.0/255, 0)
	iconGray     = RGB(85.0/255, 85.0/255, 85.0/255)
	iconInactive = RGB(60.0/255, 60.0/255, 60.0/255)
	iconBorder   = RGB(0.05, 0.05, 0.05)
)

// IconBounds returns the pixel rectangle an icon can touch at maximum
// growth, including its border.
func IconBounds(icon *IconInstance, scale float64) Rect {
	r := (iconBaseHalf*(1+iconMaxGrowth) + iconBorderWidth + 4) * scale
	return Rect{
		X0: icon.Pos.X - r, Y0: icon.Pos.Y - r,
		X1: icon.Pos.X + r, Y1: icon.Pos.Y + r,
	}
}

// iconGrowth returns the cursor-proximity scale factor: 1 far away,
// up to 1.6 within 8 logical pixels of the cursor.
func iconGrowth(fs *FrameState, pos Vec2) float64 {
	dist := pos.Sub(fs.Cursor).Length() / fs.Scale
	return 1 + iconMaxGrowth*Smoothstep(24, 8, dist)
}

// EvalIcon evaluates the icon pass for one pixel, returning a
// premultiplied color whose alpha is the pass coverage.
func EvalIcon(fs *FrameState, icon *IconInstance, images *TextureArray, p Vec2) RGBA {
	if icon.Alpha <= 0 {
		return Transparent
	}

	growth := iconGrowth(fs, icon.Pos)
	proximity := (growth - 1) / iconMaxGrowth

	// Horizontal push away from the cursor, with a matching tilt.
	// Both vanish as the cursor leaves.
	offsetX := icon.Pos.X - fs.Cursor.X
	push := Clamp(offsetX*iconPushFactor, -6*fs.Scale, 6*fs.Scale) * proximity
	angle := push * iconRotatePerPush

	center := Vec2{X: icon.Pos.X + push, Y: icon.Pos.Y}
	local := p.Sub(center).Rotate(-angle)
	half := iconBaseHalf * fs.Scale * growth

	var d float64
	var fill RGBA
	switch icon.Variant {
	case IconSquircle:
		d = Squircle(local, Vec2{X: half, Y: half}, half*0.35)
		u := (local.X + half) / (2 * half)
		v := (local.Y + half) / (2 * half)
		fill = images.Sample(icon.ImageIndex, u, v)
		// Activity pulls a disabled marker toward flat gray.
		fill = fill.Lerp(iconInactive, icon.Activity*0.7)
	default:
		d = Star(local, half, 0.45)
		// Two-tone wipe: a vertical split sweeping with Activity,
		// anti-aliased over the same half-width as shape edges.
		split := (2*icon.Activity - 1) * half
		filled := Coverage(local.X - split)
		fill = iconGray.Lerp(iconGold, filled)
	}

	mask := Coverage(d)
	if mask <= 0 {
		return Transparent
	}

	// Inset border from a second, inward-offset threshold of the same
	// field: the ring between d and d + border.
	border := mask - Coverage(d+iconBorderWidth*fs.Scale)
	fill = fill.Lerp(iconBorder, Saturate(border))

	w := mask * icon.Alpha
	return RGBA{R: fill.R * w, G: fill.G * w, B: fill.B * w, A: w}
}
