package psf

// Defensive limits for header-declared counts. PSF2 is a console font
// format; a header claiming dimensions beyond these is corrupt or malicious,
// and rejecting it early avoids large allocations driven by a 4-byte field.
const (
	MaxGlyphCount  = 1 << 16 // Unicode console fonts top out at 65536 glyphs
	MaxGlyphWidth  = 1024    // pixels
	MaxGlyphHeight = 1024    // pixels
)

// Parse parses a version 2 PC screen font from its binary representation.
//
// Parsing is a single forward pass: header, glyph bitmap table, Unicode
// mapping table. Every byte the Font retains is copied out of the input, so
// the caller is free to reuse or discard the input slice afterwards.
//
// Malformed input never panics; it is rejected with a FontError describing
// what was wrong and where. There is no best-effort mode: the first error
// aborts the parse. Recoverable oddities (skipped multi-codepoint
// spellings, an unusual glyph table offset) are recorded as warnings on the
// returned Font instead.
func Parse(font []byte) (*Font, error) {
	src := binarySegm(font)
	ec := &errorCollector{}
	h, err := parseHeader(src, ec)
	if err != nil {
		return nil, err
	}
	if err := checkGeometry(h, ec); err != nil {
		return nil, err
	}
	lineSize := h.lineSize()

	glyphsOffset := int(h.HeaderSize)
	glyphsSize, err := checkedMulInt(int(h.Length), int(h.CharSize))
	if err != nil {
		return nil, ec.fail(KindInconsistentGeometry, "header", offLength,
			"glyph table size overflows: %v", err)
	}
	unicodeOffset, err := checkedAddInt(glyphsOffset, glyphsSize)
	if err != nil {
		return nil, ec.fail(KindInconsistentGeometry, "header", offLength,
			"glyph table end overflows: %v", err)
	}

	glyphs, err := buildGlyphTable(src, h, lineSize, ec)
	if err != nil {
		return nil, err
	}

	unicode, err := buildUnicodeTable(src, h, unicodeOffset, ec)
	if err != nil {
		return nil, err
	}

	tracer().Infof("parsed PSF2 font: %d glyphs of %d×%d px, %d codepoints mapped",
		len(glyphs), h.Width, h.Height, len(unicode))
	return &Font{
		header:  h,
		glyphs:  glyphs,
		unicode: unicode,
		ec:      *ec,
	}, nil
}

// checkGeometry cross-checks the header's geometry fields. The format
// stores charsize redundantly; if it disagrees with linesize × height, glyph
// bitmaps would be mis-sliced and pixel tests would read across row
// boundaries without any bound producing an error.
func checkGeometry(h Header, ec *errorCollector) error {
	if h.Length > MaxGlyphCount {
		return ec.fail(KindInconsistentGeometry, "header", offLength,
			"glyph count %d exceeds maximum %d", h.Length, MaxGlyphCount)
	}
	if h.Width > MaxGlyphWidth || h.Height > MaxGlyphHeight {
		return ec.fail(KindInconsistentGeometry, "header", offHeight,
			"glyph size %d×%d px exceeds maximum %d×%d",
			h.Width, h.Height, MaxGlyphWidth, MaxGlyphHeight)
	}
	if want := h.lineSize() * int(h.Height); int(h.CharSize) != want {
		return ec.fail(KindInconsistentGeometry, "header", offCharSize,
			"charsize is %d bytes, but %d×%d px glyphs need %d",
			h.CharSize, h.Width, h.Height, want)
	}
	return nil
}

// buildGlyphTable slices the glyph bitmap table into one owned buffer per
// glyph. Glyph i occupies charsize bytes starting at headersize + i*charsize.
func buildGlyphTable(src binarySegm, h Header, lineSize int, ec *errorCollector) ([]Glyph, error) {
	length, charSize := int(h.Length), int(h.CharSize)
	table, err := src.view(int(h.HeaderSize), length*charSize)
	if err != nil {
		return nil, ec.fail(KindTruncatedGlyphTable, "glyphs", h.HeaderSize,
			"%d glyphs of %d bytes need %d bytes, have %d",
			length, charSize, length*charSize, len(src)-int(h.HeaderSize))
	}
	glyphs := make([]Glyph, length)
	for i := 0; i < length; i++ {
		bitmap := make([]byte, charSize)
		copy(bitmap, table[i*charSize:(i+1)*charSize])
		glyphs[i] = Glyph{
			bitmap:   bitmap,
			lineSize: lineSize,
			// Glyphs may overflow the font's nominal width into the padding
			// bits of a line, so the effective width is the padded one.
			// Only the width works this way, there is no vertical padding.
			width:  lineSize * 8,
			height: int(h.Height),
		}
	}
	return glyphs, nil
}

// buildUnicodeTable locates and decodes the Unicode mapping table following
// the glyph bitmaps. A font without the Unicode table flag and without
// trailing bytes simply has no mapping. Trailing bytes are decoded as a
// mapping table even if the flag is unset, since fonts patched with extra
// mappings do not always keep the flag in sync.
func buildUnicodeTable(src binarySegm, h Header, unicodeOffset int, ec *errorCollector) (map[rune]int, error) {
	rest, err := src.view(unicodeOffset, len(src)-unicodeOffset)
	if err != nil {
		// cannot happen after buildGlyphTable succeeded, but stay graceful
		return nil, ec.fail(KindTruncatedUnicodeTable, "unicode", uint32(unicodeOffset),
			"mapping table region out of bounds")
	}
	if len(rest) == 0 && !h.HasUnicodeTable() {
		tracer().Debugf("font has no unicode mapping table")
		return map[rune]int{}, nil
	}
	if len(rest) > 0 && !h.HasUnicodeTable() {
		ec.addWarning("unicode", uint32(unicodeOffset),
			"font has a mapping table but its header flag is unset")
	}
	return decodeUnicodeTable(rest, uint32(unicodeOffset), int(h.Length), ec)
}
