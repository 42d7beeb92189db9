package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one glyph positioned by the shaper, in pixels relative
// to the run origin.
type ShapedGlyph struct {
	GID      GlyphID
	X, Y     float64
	XAdvance float64
}

// Shaper shapes strings against a single parsed font using HarfBuzz
// via go-text/typesetting.
//
// Shaper is safe for concurrent use: the parsed font.Font is read-only
// and thread-safe, font.Face instances are created per call (they are
// not), and HarfbuzzShaper instances are pooled since they carry
// mutable buffers.
type Shaper struct {
	parsed *font.Font

	// shaperPool pools HarfbuzzShaper instances; they are cheap to
	// reuse sequentially but not safe to share across goroutines.
	shaperPool sync.Pool
}

// NewShaper parses TTF/OTF font data and returns a shaper for it.
func NewShaper(fontData []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return &Shaper{
		parsed: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Shape converts a string into positioned glyphs at the given pixel
// size. The run is shaped left-to-right as a single style; panel labels
// never mix styles within one run.
func (s *Shaper) Shape(text string, size float64) []ShapedGlyph {
	if text == "" {
		return nil
	}

	// font.Face is not safe for concurrent use; make a fresh one per
	// call around the shared thread-safe *Font.
	face := font.NewFace(s.parsed)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script labels should be split into runs
// before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs walks the shaper output, advancing the pen and applying
// per-glyph offsets.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs are 16-bit by font format
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
