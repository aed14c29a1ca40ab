package psfquery

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/psfont/psf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	font *psf.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.psf")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.psf").SetTraceLevel(tracing.LevelError)
	font, err := psf.Parse(testFontBytes())
	env.Require().NoError(err, "parsing the synthetic test font must not fail")
	env.font = font
}

// testFontBytes assembles a tiny 8×2 px PSF2 font with three glyphs,
// mapping ' '→0, 'A'→1 and both 'O' and '0'→2.
func testFontBytes() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:], psf.Magic)
	binary.LittleEndian.PutUint32(buf[8:], 32)        // headersize
	binary.LittleEndian.PutUint32(buf[12:], 1)        // flags: has unicode table
	binary.LittleEndian.PutUint32(buf[16:], 3)        // length
	binary.LittleEndian.PutUint32(buf[20:], 2)        // charsize
	binary.LittleEndian.PutUint32(buf[24:], 2)        // height
	binary.LittleEndian.PutUint32(buf[28:], 8)        // width
	buf = append(buf, 0x00, 0x00)                     // glyph #0: blank
	buf = append(buf, 0b11000000, 0b00000011)         // glyph #1
	buf = append(buf, 0xff, 0xff)                     // glyph #2: solid
	buf = append(buf, ' ', 0xff)                      // entry 0
	buf = append(buf, 'A', 0xff)                      // entry 1
	buf = append(buf, 'O', '0', 0xff)                 // entry 2
	return buf
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestFontInfo() {
	info := FontInfo(env.font)
	env.Equal("PSF2", info["format"])
	env.Equal("3", info["glyphs"])
	env.Equal("8×2", info["cell"])
	env.Equal("true", info["unicode-table"])
	env.Equal("4", info["coverage"])
}

func (env *QueryTestEnviron) TestCoverage() {
	env.Equal(4, Coverage(env.font), "4 codepoints map onto 3 glyphs")
	env.Equal(0, Coverage(nil))
}

func (env *QueryTestEnviron) TestHasGlyph() {
	env.True(HasGlyph(env.font, 'A'))
	env.True(HasGlyph(env.font, '0'))
	env.False(HasGlyph(env.font, 'B'))
	env.False(HasGlyph(nil, 'A'))
}

func (env *QueryTestEnviron) TestLookupGlyphInfo() {
	info, ok := LookupGlyphInfo(env.font, 'A')
	env.Require().True(ok, "expected glyph info for 'A'")
	env.Equal(1, info.Index)
	env.Equal("LATIN CAPITAL LETTER A", info.Name)
	env.Equal(8, info.Width)
	env.Equal(2, info.Height)
	env.Equal(4, info.SetPixels)

	_, ok = LookupGlyphInfo(env.font, 'B')
	env.False(ok, "no glyph info for unmapped 'B'")
}

func (env *QueryTestEnviron) TestCodepointsRange() {
	got := map[rune]int{}
	var order []rune
	for c, inx := range CodepointsRange(env.font) {
		got[c] = inx
		order = append(order, c)
	}
	env.Equal(map[rune]int{' ': 0, 'A': 1, 'O': 2, '0': 2}, got)
	env.Equal([]rune{' ', '0', 'A', 'O'}, order, "codepoints in ascending order")
}
