package psf

import (
	"math/bits"
	"unicode/utf8"
)

// The Unicode table is a sequence of entries, one per glyph, in glyph order.
// Each entry is a run of UTF-8 encoded codepoints, optionally followed by
// 0xFE-introduced multi-codepoint spellings, and is terminated by 0xFF.
// Neither 0xFE nor 0xFF can occur inside well-formed UTF-8, so they are
// unambiguous in-band markers.
const (
	sepSequence = 0xFE // starts a multi-codepoint spelling group
	termEntry   = 0xFF // ends the entry for one glyph
)

// decodeUnicodeTable walks the Unicode table and produces the
// codepoint → glyph index mapping. data is the table region of the file,
// base its byte offset within the file (used for error reporting only).
//
// The table must contain exactly numGlyphs terminated entries. When a
// codepoint occurs more than once, the first occurrence wins, matching
// what a linear scan over the table would find.
//
// Codepoints inside a multi-codepoint spelling group are skipped, not
// mapped; each skipped group is recorded as a parse warning. Associating a
// glyph with a codepoint *sequence* would need a different lookup key type,
// and fonts relying on it are rare enough that we keep lookup keyed by
// single codepoints.
func decodeUnicodeTable(data binarySegm, base uint32, numGlyphs int, ec *errorCollector) (map[rune]int, error) {
	table := make(map[rune]int)
	glyph := 0
	i := 0
	for i < len(data) {
		if glyph >= numGlyphs {
			return nil, ec.fail(KindInconsistentUnicodeTable, "unicode", base+uint32(i),
				"%d bytes of mapping data left after %d glyph entries", len(data)-i, numGlyphs)
		}
		// codepoints mapping to glyph
		for data[i] != sepSequence && data[i] != termEntry {
			nc := data[i]
			seqLen := bits.LeadingZeros8(^nc) // leading one-bits = UTF-8 sequence length
			if seqLen == 0 {
				seqLen = 1 // ASCII
			}
			if i+seqLen > len(data) {
				return nil, ec.fail(KindTruncatedUnicodeTable, "unicode", base+uint32(i),
					"codepoint for glyph %d cut off: need %d bytes, have %d", glyph, seqLen, len(data)-i)
			}
			c, size := utf8.DecodeRune(data[i : i+seqLen])
			if size != seqLen || (c == utf8.RuneError && size == 1) {
				return nil, ec.fail(KindInvalidUtf8Sequence, "unicode", base+uint32(i),
					"entry for glyph %d holds % x, which is not valid UTF-8", glyph, data[i:i+seqLen])
			}
			if _, present := table[c]; !present { // first entry wins
				table[c] = glyph
			}
			i += seqLen
			if i >= len(data) {
				return nil, ec.fail(KindTruncatedUnicodeTable, "unicode", base+uint32(i),
					"entry for glyph %d is unterminated", glyph)
			}
		}
		// multi-codepoint spellings: skip up to the entry terminator
		if data[i] == sepSequence {
			ec.addWarning("unicode", base+uint32(i),
				"skipping multi-codepoint spellings for glyph %d", glyph)
			for data[i] != termEntry {
				i++
				if i >= len(data) {
					return nil, ec.fail(KindTruncatedUnicodeTable, "unicode", base+uint32(i),
						"entry for glyph %d is unterminated", glyph)
				}
			}
		}
		i++ // consume the 0xFF terminator
		glyph++
	}
	if glyph != numGlyphs {
		return nil, ec.fail(KindInconsistentUnicodeTable, "unicode", base+uint32(i),
			"mapping table holds %d entries for %d glyphs", glyph, numGlyphs)
	}
	tracer().Debugf("unicode table maps %d codepoints onto %d glyphs", len(table), numGlyphs)
	return table, nil
}
