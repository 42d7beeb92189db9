package text

import (
	"github.com/CodedNil/cantus"
)

// GlyphID identifies a glyph within the font and its atlas entry.
type GlyphID uint16

// Glyph is one atlas entry: where the glyph lives in the atlas and how
// its quad sits relative to the pen position.
type Glyph struct {
	// UV is the glyph's rectangle in [0,1] atlas coordinates.
	UV cantus.Rect

	// Plane is the glyph quad relative to the pen position in em
	// units, y increasing downward (Y0 is usually negative, above the
	// baseline).
	Plane cantus.Rect

	// Advance is the horizontal pen advance in em units. Shaping
	// overrides it, but fallback layout uses it directly.
	Advance float64
}

// GlyphTable maps glyph IDs to their atlas entries.
type GlyphTable struct {
	Glyphs map[GlyphID]Glyph
}

// Lookup returns the entry for a glyph ID.
func (t *GlyphTable) Lookup(id GlyphID) (Glyph, bool) {
	g, ok := t.Glyphs[id]
	return g, ok
}

// Layout converts shaped glyphs into text instances at the given font
// size and pen origin. Glyphs missing from the table are skipped (a
// shaped .notdef with no atlas entry simply does not render).
func Layout(shaped []ShapedGlyph, table *GlyphTable, size float64, origin cantus.Vec2, tint cantus.RGBA) []cantus.TextInstance {
	if table == nil || len(shaped) == 0 {
		return nil
	}
	out := make([]cantus.TextInstance, 0, len(shaped))
	for _, sg := range shaped {
		g, ok := table.Lookup(sg.GID)
		if !ok || g.UV.IsEmpty() {
			continue
		}
		penX := origin.X + sg.X
		penY := origin.Y + sg.Y
		out = append(out, cantus.TextInstance{
			Dest: cantus.Rect{
				X0: penX + g.Plane.X0*size,
				Y0: penY + g.Plane.Y0*size,
				X1: penX + g.Plane.X1*size,
				Y1: penY + g.Plane.Y1*size,
			},
			UV:   g.UV,
			Tint: tint,
		})
	}
	return out
}

// Advance returns the total pen advance of the shaped run in pixels.
// Hosts use it to right-align or center labels before Layout.
func Advance(shaped []ShapedGlyph) float64 {
	var x float64
	for _, sg := range shaped {
		x += sg.XAdvance
	}
	return x
}
