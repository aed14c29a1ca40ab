package psf

// The PSF2 header is 32 bytes of little-endian uint32 fields:
//
//	offset 0   magic      0x864ab572
//	offset 4   version    always 0
//	offset 8   headersize offset of the glyph table, 32 for every known font
//	offset 12  flags      bit 0: font carries a Unicode table
//	offset 16  length     number of glyphs
//	offset 20  charsize   bytes per glyph bitmap
//	offset 24  height     nominal glyph height in pixels
//	offset 28  width      nominal glyph width in pixels

// Magic is the PSF2 magic number, stored little-endian at the start of a
// font file (i.e. as bytes 0x72 0xb5 0x4a 0x86).
const Magic uint32 = 0x864ab572

const headerSize = 32

// Byte offsets of the header fields.
const (
	offMagic      = 0
	offVersion    = 4
	offHeaderSize = 8
	offFlags      = 12
	offLength     = 16
	offCharSize   = 20
	offHeight     = 24
	offWidth      = 28
)

// flagHasUnicodeTable is set in Header.Flags if the glyph table is followed
// by a Unicode mapping table.
const flagHasUnicodeTable uint32 = 0x00000001

// Header mirrors the fixed-size PSF2 file header.
type Header struct {
	Magic      uint32
	Version    uint32
	HeaderSize uint32 // byte offset of the glyph table
	Flags      uint32
	Length     uint32 // number of glyphs
	CharSize   uint32 // bytes per glyph bitmap
	Height     uint32 // nominal glyph height in pixels
	Width      uint32 // nominal glyph width in pixels
}

// HasUnicodeTable reports whether the header announces a Unicode mapping
// table following the glyph bitmaps.
func (h Header) HasUnicodeTable() bool {
	return h.Flags&flagHasUnicodeTable != 0
}

// lineSize is the number of bytes storing one row of glyph pixels:
// the nominal width rounded up to a whole byte.
func (h Header) lineSize() int {
	return (int(h.Width) + 7) / 8
}

// parseHeader reads and validates the fixed 32-byte header at the start of src.
func parseHeader(src binarySegm, ec *errorCollector) (Header, error) {
	var h Header
	buf, err := src.view(0, headerSize)
	if err != nil {
		return h, ec.fail(KindTruncatedHeader, "header", 0,
			"need %d header bytes, have %d", headerSize, len(src))
	}
	h.Magic = u32(buf[offMagic:])
	h.Version = u32(buf[offVersion:])
	h.HeaderSize = u32(buf[offHeaderSize:])
	h.Flags = u32(buf[offFlags:])
	h.Length = u32(buf[offLength:])
	h.CharSize = u32(buf[offCharSize:])
	h.Height = u32(buf[offHeight:])
	h.Width = u32(buf[offWidth:])
	tracer().Debugf("PSF2 header = %+v", h)
	if h.Magic != Magic {
		return h, ec.fail(KindInvalidMagic, "header", offMagic,
			"not a PSF2 font: magic is 0x%08x, want 0x%08x", h.Magic, Magic)
	}
	if h.Version != 0 {
		return h, ec.fail(KindUnsupportedVersion, "header", offVersion,
			"PSF2 version %d not supported", h.Version)
	}
	if h.HeaderSize < headerSize {
		return h, ec.fail(KindInconsistentGeometry, "header", offHeaderSize,
			"glyph table offset %d lies within the %d-byte header", h.HeaderSize, headerSize)
	}
	if h.HeaderSize != headerSize {
		// legal per the format, but no font in the wild does this
		ec.addWarning("header", offHeaderSize, "unusual glyph table offset %d", h.HeaderSize)
	}
	return h, nil
}
