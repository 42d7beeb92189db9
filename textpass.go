package cantus

import "math"

// Text pass. Glyphs arrive pre-shaped as destination/UV quads; the
// per-pixel job is MSDF decoding: sample the three distance channels,
// take median(r, g, b) - 0.5 as the signed distance, and derive
// coverage from the screen-space distance range. The median trick is
// what preserves sharp corners; a single-channel field would round
// them, so it is reproduced exactly.

// EvalText evaluates the text pass for one pixel, returning a
// premultiplied color whose alpha is the pass coverage.
func EvalText(inst *TextInstance, atlas *MSDFAtlas, p Vec2) RGBA {
	if !inst.Dest.Contains(p) || atlas == nil {
		return Transparent
	}

	// Map the pixel into the glyph's atlas rectangle.
	tx := (p.X - inst.Dest.X0) / math.Max(inst.Dest.Width(), sdfEpsilon)
	ty := (p.Y - inst.Dest.Y0) / math.Max(inst.Dest.Height(), sdfEpsilon)
	u := Mix(inst.UV.X0, inst.UV.X1, tx)
	v := Mix(inst.UV.Y0, inst.UV.Y1, ty)

	r, g, b := atlas.SampleRGB(u, v)
	sd := median3(r, g, b) - 0.5

	// Screen-space distance range: the field's pixel range stretched by
	// the dest/source scale, the fwidth analog for an axis-aligned quad.
	atlasPx := inst.UV.Width() * float64(atlas.Width)
	screenPerAtlas := inst.Dest.Width() / math.Max(atlasPx, sdfEpsilon)
	screenRange := math.Max(atlas.PxRange*screenPerAtlas, sdfEpsilon)

	coverage := Clamp(sd*screenRange+0.5, 0, 1)
	if coverage <= 0 {
		return Transparent
	}

	w := coverage * inst.Tint.A
	return RGBA{
		R: inst.Tint.R * w,
		G: inst.Tint.G * w,
		B: inst.Tint.B * w,
		A: w,
	}
}

// median3 returns the median of three values.
func median3(a, b, c float64) float64 {
	return math.Max(math.Min(a, b), math.Min(math.Max(a, b), c))
}
