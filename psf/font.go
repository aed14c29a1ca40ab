package psf

import "slices"

// Font represents a decoded PSF2 screen font. It owns all glyph bitmaps and
// the Unicode mapping table; nothing references the input buffer it was
// parsed from. A Font is immutable after Parse and therefore safe for
// concurrent read access.
type Font struct {
	header  Header
	glyphs  []Glyph
	unicode map[rune]int // codepoint → index into glyphs; first entry wins
	ec      errorCollector
}

// Width is the width in pixels of this font's bounding box.
func (f *Font) Width() int {
	return int(f.header.Width)
}

// Height is the height in pixels of this font's bounding box.
func (f *Font) Height() int {
	return int(f.header.Height)
}

// BoundingBox is the width and height in pixels of this font's bounding box.
// Individual glyphs may exceed the nominal width, see Glyph.Width.
func (f *Font) BoundingBox() (width int, height int) {
	return int(f.header.Width), int(f.header.Height)
}

// Header returns a copy of the font's file header.
func (f *Font) Header() Header {
	return f.header
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyph returns the glyph at a given index, or nil if inx is out of range.
// Glyph indices are stable and run from 0 to NumGlyphs()-1.
func (f *Font) Glyph(inx int) *Glyph {
	if inx < 0 || inx >= len(f.glyphs) {
		return nil
	}
	return &f.glyphs[inx]
}

// Lookup gets the glyph associated with a particular Unicode codepoint,
// or None if the font's mapping table does not list it.
func (f *Font) Lookup(c rune) Option[*Glyph] {
	if inx, ok := f.unicode[c]; ok {
		return Some(&f.glyphs[inx])
	}
	return None[*Glyph]()
}

// GlyphIndex returns the index of the glyph associated with a particular
// Unicode codepoint, or None if the codepoint is not mapped.
func (f *Font) GlyphIndex(c rune) Option[int] {
	if inx, ok := f.unicode[c]; ok {
		return Some(inx)
	}
	return None[int]()
}

// HasUnicodeTable reports whether the font was parsed with a Unicode
// mapping table. Without one, Lookup comes up empty for every codepoint and
// clients have to address glyphs by index.
func (f *Font) HasUnicodeTable() bool {
	return len(f.unicode) > 0
}

// Codepoints returns all codepoints listed in the font's mapping table,
// in ascending order.
func (f *Font) Codepoints() []rune {
	cps := make([]rune, 0, len(f.unicode))
	for c := range f.unicode {
		cps = append(cps, c)
	}
	slices.Sort(cps)
	return cps
}

// Warnings returns non-fatal oddities recorded while parsing the font,
// e.g. skipped multi-codepoint spellings.
func (f *Font) Warnings() []FontWarning {
	return f.ec.warnings
}
