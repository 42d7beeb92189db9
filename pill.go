package cantus

import "math"

// Background pill pass. Each pill is a rounded or squircle panel with a
// procedurally synthesized animated color field, an optional cover-art
// window, watched-duration shading, and a ripple acknowledging the most
// recent click/seek. Evaluation is per pixel with no shared state.

const (
	// pillShadowWidth is the drop-shadow falloff distance in logical
	// pixels.
	pillShadowWidth = 12.0

	// pillShadowStrength is the peak shadow coverage.
	pillShadowStrength = 0.35

	// RippleDuration is the lifetime of an expansion ripple in seconds.
	RippleDuration = 0.45

	// rippleSpeed is the ring growth rate in logical pixels over the
	// ripple lifetime.
	rippleSpeed = 160.0

	// artMargin insets the cover-art window from the pill edge, in
	// logical pixels.
	artMargin = 3.0
)

// PillBounds returns the pixel rectangle a pill can touch, including
// its shadow. The compositor restricts evaluation to this region.
func PillBounds(pill *BackgroundPill, scale float64) Rect {
	m := pillShadowWidth * scale
	return pill.Rect.Inflate(m, m)
}

// EvalPill evaluates the pill pass for one pixel. The returned color is
// premultiplied; its alpha channel is the pass coverage. Fully
// transparent pixels return the zero value so the compositor can skip
// blending.
func EvalPill(fs *FrameState, pill *BackgroundPill, images *TextureArray, p Vec2) RGBA {
	if pill.Alpha <= 0 {
		return Transparent
	}

	center := pill.Rect.Center()
	local := p.Sub(center)
	radius := pill.cornerAt(local.X)

	var d float64
	switch pill.Shape {
	case PillSquircle:
		d = Squircle(local, pill.Rect.HalfExtent(), radius)
	default:
		d = RoundedRect(local, pill.Rect.HalfExtent(), radius)
	}

	edge := Coverage(d)
	shadow := pillShadowStrength * sq(1-Clamp(d/(pillShadowWidth*fs.Scale), 0, 1))
	if edge <= 0 && shadow <= 0 {
		return Transparent
	}

	c := Transparent
	if edge > 0 {
		anchor := Vec2{X: pill.Rect.X0, Y: pill.Rect.Y0}
		c = TurbulenceColor(p, anchor, pill.Colors, fs.Scale, fs.Time)
		c = gradePill(c, d, fs.Scale)

		// Watched-track overlay: everything left of DarkWidth darkens
		// by half, with the same anti-aliased transition as shape edges.
		if pill.DarkWidth > 0 {
			watched := Coverage(p.X - (pill.Rect.X0 + pill.DarkWidth))
			dim := 1 - 0.5*watched
			c.R *= dim
			c.G *= dim
			c.B *= dim
		}

		if pill.ImageIndex >= 0 {
			c = blendCoverArt(c, fs, pill, images, p)
		}

		if fs.Expansion.Active(fs.Time, RippleDuration) {
			c = blendRipple(c, fs, p)
		}
	}

	// Final pixel: color weighted by the opaque edge only; coverage
	// also includes the color-free shadow halo.
	coverage := math.Max(edge, shadow) * pill.Alpha
	w := edge * pill.Alpha
	return RGBA{R: c.R * w, G: c.G * w, B: c.B * w, A: coverage}
}

// gradePill applies the fixed post-processing chain: vibrancy
// (desaturate, then reapply the original luma), a slight contrast push
// around mid-gray, highlight compression above luma 0.4, and an inner
// glow hugging the shape boundary.
func gradePill(c RGBA, d, scale float64) RGBA {
	luma := c.Luma()

	// Vibrancy: pull 85% of the way toward gray, then rescale so the
	// original luma survives. Hue stays, harsh chroma spikes do not.
	g := RGBA{R: luma, G: luma, B: luma, A: c.A}
	c = c.Lerp(g, 0.85)
	if l := c.Luma(); l > 1e-6 {
		k := luma / l
		c.R *= k
		c.G *= k
		c.B *= k
	}

	// Contrast around 0.5.
	c.R = (c.R-0.5)*1.05 + 0.5
	c.G = (c.G-0.5)*1.05 + 0.5
	c.B = (c.B-0.5)*1.05 + 0.5

	// Compress highlights above luma 0.4 by up to 40%.
	if l := c.Luma(); l > 0.4 {
		k := 1 - 0.4*Smoothstep(0.4, 1.0, l)
		c.R *= k
		c.G *= k
		c.B *= k
	}

	// Inner glow near the interior side of the boundary.
	if d < 0 {
		glow := 0.12 * sq(1-Clamp(-d/(10*scale), 0, 1))
		c.R += glow
		c.G += glow
		c.B += glow
	}

	c.R = Saturate(c.R)
	c.G = Saturate(c.G)
	c.B = Saturate(c.B)
	return c
}

// blendCoverArt composites the squircle-masked cover image over the
// synthesized background. The window is sized to the pill height and
// anchored at the trailing edge.
func blendCoverArt(c RGBA, fs *FrameState, pill *BackgroundPill, images *TextureArray, p Vec2) RGBA {
	size := pill.Rect.Height()
	half := size/2 - artMargin*fs.Scale
	if half <= 0 {
		return c
	}
	artCenter := Vec2{X: pill.Rect.X1 - size/2, Y: pill.Rect.Center().Y}
	local := p.Sub(artCenter)
	d := Squircle(local, Vec2{X: half, Y: half}, half*0.35)
	mask := Coverage(d)
	if mask <= 0 {
		return c
	}
	u := (local.X + half) / (2 * half)
	v := (local.Y + half) / (2 * half)
	art := images.Sample(pill.ImageIndex, u, v)
	t := mask * art.A
	c.R = Mix(c.R, art.R, t)
	c.G = Mix(c.G, art.G, t)
	c.B = Mix(c.B, art.B, t)
	return c
}

// blendRipple draws the expanding acknowledgement ring for the recorded
// expansion event: radius grows linearly with elapsed time, color fades
// out toward the end of the window.
func blendRipple(c RGBA, fs *FrameState, p Vec2) RGBA {
	progress := (fs.Time - fs.Expansion.Time) / RippleDuration
	ringRadius := progress * rippleSpeed * fs.Scale
	d := math.Abs(p.Sub(fs.Expansion.Pos).Length()-ringRadius) - 2.5*fs.Scale
	mask := Coverage(d) * (1 - progress)
	if mask <= 0 {
		return c
	}
	t := 0.6 * mask
	c.R = Mix(c.R, 1, t)
	c.G = Mix(c.G, 1, t)
	c.B = Mix(c.B, 1, t)
	return c
}

func sq(x float64) float64 { return x * x }
