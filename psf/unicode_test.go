package psf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// threeGlyphs is a 8×1 px font skeleton with three distinguishable glyphs.
func threeGlyphs() synthFont {
	return synthFont{
		flags:  flagHasUnicodeTable,
		width:  8,
		height: 1,
		glyphs: [][]byte{{0x01}, {0x02}, {0x03}},
	}
}

func TestUnicodeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.unicode = append(append(entry(' '), entry('0', 'O')...), entry('A')...)
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	g, ok := f.Lookup('A').Unwrap()
	if !ok {
		t.Fatal("expected lookup of 'A' to find a glyph")
	}
	if g.Bitmap()[0] != 0x03 {
		t.Errorf("expected 'A' to map to glyph #2, got bitmap % x", g.Bitmap())
	}
	if inx := f.GlyphIndex('O').Or(-1); inx != 1 {
		t.Errorf("expected alternate spelling 'O' to map to glyph #1, got %d", inx)
	}
	if f.Lookup('B').IsSome() {
		t.Error("expected lookup of unmapped 'B' to come up empty")
	}
}

func TestUnicodeMultibyteCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.unicode = append(append(entry('ä'), entry('€')...), entry('𝄞')...) // 2-, 3- and 4-byte UTF-8
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range []rune{'ä', '€', '𝄞'} {
		if inx := f.GlyphIndex(c).Or(-1); inx != i {
			t.Errorf("expected %#U to map to glyph #%d, got %d", c, i, inx)
		}
	}
}

func TestUnicodeDuplicateFirstWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.unicode = append(append(entry('X'), entry('X')...), entry('Y')...)
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if inx := f.GlyphIndex('X').Or(-1); inx != 0 {
		t.Errorf("duplicate mapping of 'X' must resolve to the first entry (glyph #0), got %d", inx)
	}
}

func TestUnicodeSkipsMultiCodepointSpellings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	// glyph #1 maps 'é' plus a spelling group "e + combining acute"
	spelling := append([]byte{sepSequence}, []byte("é")...)
	entry1 := append([]byte(string('é')), spelling...)
	entry1 = append(entry1, termEntry)
	sf.unicode = append(append(entry('a'), entry1...), entry('b')...)
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if inx := f.GlyphIndex('é').Or(-1); inx != 1 {
		t.Errorf("expected 'é' to map to glyph #1, got %d", inx)
	}
	if f.GlyphIndex('e').IsSome() || f.GlyphIndex('́').IsSome() {
		t.Error("codepoints inside a spelling group must not enter the mapping")
	}
	if inx := f.GlyphIndex('b').Or(-1); inx != 2 {
		t.Errorf("decoder must re-align after a spelling group; 'b' maps to %d", inx)
	}
	if len(f.Warnings()) == 0 {
		t.Error("skipped spelling group should be recorded as a warning")
	}
}

func TestUnicodeInvalidUtf8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	tests := []struct {
		name  string
		entry []byte
	}{
		{"lead byte without continuation", []byte{0xe2, 'A', 'B', termEntry}},
		{"stray continuation byte", []byte{0x80, termEntry}},
		{"overlong five-byte lead", []byte{0xf8, 0x80, 0x80, 0x80, 0x80, termEntry}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := synthFont{flags: flagHasUnicodeTable, width: 8, height: 1,
				glyphs:  [][]byte{{0}},
				unicode: tt.entry,
			}
			_, err := Parse(sf.bytes())
			expectKind(t, err, KindInvalidUtf8Sequence)
		})
	}
}

func TestUnicodeTruncatedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	tests := []struct {
		name  string
		table []byte
	}{
		{"codepoint cut off", []byte{0xe2, 0x82}},          // 3-byte lead, 2 bytes left
		{"entry unterminated", []byte{'A'}},                // no 0xFF
		{"spelling group unterminated", []byte{'A', 0xfe}}, // 0xFE, then nothing
		{"spelling bytes unterminated", []byte{0xfe, 'e'}}, // skip runs off the end
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := synthFont{flags: flagHasUnicodeTable, width: 8, height: 1,
				glyphs:  [][]byte{{0}},
				unicode: tt.table,
			}
			_, err := Parse(sf.bytes())
			expectKind(t, err, KindTruncatedUnicodeTable)
		})
	}
}

func TestUnicodeEntryCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.unicode = append(entry('a'), entry('b')...) // 2 entries for 3 glyphs
	_, err := Parse(sf.bytes())
	expectKind(t, err, KindInconsistentUnicodeTable)

	sf = threeGlyphs()
	sf.unicode = append(append(append(entry('a'), entry('b')...), entry('c')...), entry('d')...)
	_, err = Parse(sf.bytes())
	expectKind(t, err, KindInconsistentUnicodeTable)
}

func TestUnicodeFlagSetButTableMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs() // flag set, but no mapping bytes appended
	_, err := Parse(sf.bytes())
	expectKind(t, err, KindInconsistentUnicodeTable)
}

func TestUnicodeTableWithoutFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.flags = 0 // table present, flag out of sync
	sf.unicode = append(append(entry('a'), entry('b')...), entry('c')...)
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if inx := f.GlyphIndex('c').Or(-1); inx != 2 {
		t.Errorf("mapping table without header flag must still be decoded; 'c' maps to %d", inx)
	}
	if len(f.Warnings()) == 0 {
		t.Error("out-of-sync unicode table flag should be recorded as a warning")
	}
}

func TestCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	//
	sf := threeGlyphs()
	sf.unicode = append(append(entry('z'), entry('a')...), entry('m')...)
	f, err := Parse(sf.bytes())
	if err != nil {
		t.Fatal(err)
	}
	cps := f.Codepoints()
	if len(cps) != 3 || cps[0] != 'a' || cps[1] != 'm' || cps[2] != 'z' {
		t.Errorf("expected codepoints [a m z] in ascending order, got %q", string(cps))
	}
}
