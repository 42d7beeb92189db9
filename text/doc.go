// Package text turns strings into the glyph instances the text pass
// consumes.
//
// Shaping runs through go-text/typesetting's HarfBuzz implementation,
// so kerning, ligatures, and non-Latin scripts come out right. The
// shaped glyph positions are then matched against a glyph table that
// maps glyph IDs to rectangles in a prebuilt MSDF atlas; the result is
// a flat []cantus.TextInstance ready for submission.
//
// Atlas generation itself is an external collaborator's job: this
// package only consumes its glyph metrics.
package text
