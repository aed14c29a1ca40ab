package psf

// Glyph is the bitmap of a single character. A set bit indicates that a
// pixel should be drawn. Rows are stored MSB-first and padded to a whole
// byte; glyphs are immutable once parsed.
type Glyph struct {
	bitmap   []byte
	lineSize int
	width    int
	height   int
}

// Width is the width in pixels of this individual glyph.
//
// Although a PSF2 font has a nominal width in pixels, each stored pixel row
// is rounded up to the next byte, so a glyph's effective width is always a
// multiple of 8 and may exceed the font's nominal width. Some fonts use
// these padding bits on purpose to draw a glyph slightly wider than
// nominal (Cozette does this for the heart glyph, for instance).
func (g *Glyph) Width() int {
	return g.width
}

// Height is the height in pixels of this glyph. It always equals the height
// of the font; PSF2 knows no vertical padding.
func (g *Glyph) Height() int {
	return g.height
}

// LineSize is the number of bytes storing one row of pixels.
func (g *Glyph) LineSize() int {
	return g.lineSize
}

// Bitmap returns the raw row-major bitmap bytes, len = LineSize × Height.
// The returned slice is the glyph's backing store and must be treated as
// read-only.
func (g *Glyph) Bitmap() []byte {
	return g.bitmap
}

// Pixel checks whether an individual pixel of this glyph is set. Bit 0 of a
// row is the leftmost pixel, i.e. the most significant bit of the row's
// first byte. Pixel returns None if (x, y) lies outside the glyph.
func (g *Glyph) Pixel(x, y int) Option[bool] {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return None[bool]()
	}
	mask := byte(0b10000000) >> (x % 8)
	b := g.bitmap[y*g.lineSize+x/8]
	return Some(b&mask > 0)
}
