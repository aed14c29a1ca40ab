package psfquery

import (
	"iter"
	"math/bits"

	"github.com/npillmayer/psfont/psf"
	"golang.org/x/text/unicode/runenames"
)

// GlyphInfo describes a single glyph of a screen font.
type GlyphInfo struct {
	Index     int    // index into the font's glyph table
	Codepoint rune   // codepoint the glyph was looked up under
	Name      string // Unicode character name, e.g. "LATIN CAPITAL LETTER A"
	Width     int    // effective (padded) width in pixels
	Height    int    // height in pixels
	SetPixels int    // number of set bits in the stored bitmap
}

// LookupGlyphInfo collects information about the glyph a font associates
// with codepoint c. The second return value is false if the font does not
// map c.
func LookupGlyphInfo(f *psf.Font, c rune) (GlyphInfo, bool) {
	if f == nil {
		return GlyphInfo{}, false
	}
	inx, ok := f.GlyphIndex(c).Unwrap()
	if !ok {
		tracer().Debugf("font maps no glyph for %#U", c)
		return GlyphInfo{}, false
	}
	g := f.Glyph(inx)
	return GlyphInfo{
		Index:     inx,
		Codepoint: c,
		Name:      runenames.Name(c),
		Width:     g.Width(),
		Height:    g.Height(),
		SetPixels: countPixels(g),
	}, true
}

// CodepointsRange yields (codepoint, glyph index) associations from the
// font's Unicode mapping table, in ascending codepoint order.
func CodepointsRange(f *psf.Font) iter.Seq2[rune, int] {
	return func(yield func(rune, int) bool) {
		if f == nil {
			return
		}
		for _, c := range f.Codepoints() {
			inx, ok := f.GlyphIndex(c).Unwrap()
			if !ok {
				continue
			}
			if !yield(c, inx) {
				return
			}
		}
	}
}

func countPixels(g *psf.Glyph) int {
	n := 0
	for _, b := range g.Bitmap() {
		n += bits.OnesCount8(b)
	}
	return n
}
