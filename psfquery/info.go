package psfquery

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/psfont/psf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.psf'
func tracer() tracing.Trace {
	return tracing.Select("font.psf")
}

// --- Font Information -------------------------------------------------

// FontInfo returns general information about a screen font as a key/value
// map. Keys are "format", "glyphs", "cell", "unicode-table" and "coverage".
func FontInfo(f *psf.Font) map[string]string {
	info := map[string]string{}
	if f == nil {
		return info
	}
	w, h := f.BoundingBox()
	info["format"] = "PSF2"
	info["glyphs"] = strconv.Itoa(f.NumGlyphs())
	info["cell"] = fmt.Sprintf("%d×%d", w, h)
	info["unicode-table"] = strconv.FormatBool(f.HasUnicodeTable())
	info["coverage"] = strconv.Itoa(Coverage(f))
	return info
}

// Coverage returns the number of Unicode codepoints the font maps to a
// glyph. Fonts without a mapping table have a coverage of 0, regardless of
// how many glyphs they carry.
func Coverage(f *psf.Font) int {
	if f == nil {
		return 0
	}
	return len(f.Codepoints())
}

// HasGlyph reports whether the font maps codepoint c to a glyph.
func HasGlyph(f *psf.Font, c rune) bool {
	return f != nil && f.GlyphIndex(c).IsSome()
}
