package cantus

import "math"

// Background warp pass. A full-panel post effect independent of the
// pill system: each output pixel maps to a source coordinate through a
// radial swirl and two sinusoidal ripples, blended back to identity
// near the edges so sampling never leaves the texture, then graded.
// Constants follow the panel's warp uniforms.

const (
	// WarpStrength scales the ripple displacement in source texels.
	WarpStrength = 1.4

	// SwirlStrength scales the radial swirl angle.
	SwirlStrength = 0.2

	// WarpTimeScale slows wall-clock time before it drives the warp.
	WarpTimeScale = 0.8

	// warpAspectEpsilon is the aspect mismatch below which no UV
	// correction is applied.
	warpAspectEpsilon = 1e-3
)

// EvalWarp evaluates the warp pass for one pixel of the panel region,
// sampling src through the animated distortion. Returns a premultiplied
// color whose alpha is the source coverage after the vignette grade.
func EvalWarp(fs *FrameState, src *Texture, p Vec2) RGBA {
	if src == nil || fs.Screen.X <= 0 || fs.PanelHeight <= 0 {
		return Transparent
	}
	t := fs.Time * WarpTimeScale

	// Panel-normalized coordinates, centered.
	u := p.X / fs.Screen.X
	v := (p.Y - fs.PanelY) / fs.PanelHeight
	centered := Vec2{X: u - 0.5, Y: v - 0.5}
	radius := centered.Length()

	// Radial swirl: rotation angle oscillates with time and radius.
	angle := SwirlStrength * math.Sin(t*1.3+radius*6.0)
	warped := centered.Rotate(angle)

	// Two independent sinusoidal ripples in source texels.
	texel := Vec2{X: 1 / math.Max(float64(src.Width()), 1), Y: 1 / math.Max(float64(src.Height()), 1)}
	warped.X += WarpStrength * texel.X * math.Sin(v*9.0+t*1.7)
	warped.Y += WarpStrength * texel.Y * math.Sin(u*11.0+t*1.1)

	// Blend back toward the undistorted coordinate near the edges so
	// the sample stays inside the texture.
	edgeBlend := Smoothstep(0.35, 0.5, radius)
	warped = warped.Lerp(centered, edgeBlend)

	// Aspect correction: panel and source aspect rarely match; rescale
	// one axis so the art is not stretched.
	panelAspect := fs.Screen.X / fs.PanelHeight
	srcAspect := src.Aspect()
	if math.Abs(panelAspect-srcAspect) > warpAspectEpsilon {
		warped.X *= panelAspect / srcAspect
	}

	c := src.SampleUV(warped.X+0.5, warped.Y+0.5)
	return gradeWarp(c, radius)
}

// gradeWarp applies the fixed vibrancy/contrast/vignette grade to the
// warped sample.
func gradeWarp(c RGBA, radius float64) RGBA {
	luma := c.Luma()

	// Gentle vibrancy and contrast, softer than the pill grade since
	// the warp sits furthest back.
	g := RGBA{R: luma, G: luma, B: luma, A: c.A}
	c = c.Lerp(g, 0.3)
	c.R = Saturate((c.R-0.5)*1.08 + 0.5)
	c.G = Saturate((c.G-0.5)*1.08 + 0.5)
	c.B = Saturate((c.B-0.5)*1.08 + 0.5)

	// Vignette darkens toward the panel edge.
	vignette := 1 - 0.45*Smoothstep(0.3, 0.75, radius)
	w := c.A * vignette
	return RGBA{R: c.R * w, G: c.G * w, B: c.B * w, A: w}
}
