/*
Package psf decodes "PC Screen Font" version 2 (PSF2) files, the bitmap
font format used for Linux console fonts.

A PSF2 file is a fixed 32-byte header, followed by a table of equally
sized glyph bitmaps, optionally followed by a table mapping Unicode
codepoints to glyph indices. Package `psf` parses all three sections into
an immutable Font value and exposes read-only queries on it: the font's
bounding box, glyph lookup by codepoint, and per-pixel bit tests on
glyph bitmaps.

Package `psf` is a codec, nothing more. It does not rasterize text, it
does not create or modify fonts, and it performs no I/O: clients hand it
a byte slice (read from disk, embedded at build time, …) and blit the
resulting glyph bitmaps through whatever drawing path they use. The parse
copies every byte it retains, so the input slice may be reused or
discarded once Parse returns.

Fonts are parsed in one forward pass and are immutable afterwards, which
makes a *Font safe for concurrent read access without synchronization.

# Caveats

PSF version 1 is not supported. Multi-codepoint spellings in the Unicode
table (sequences introduced by a 0xFE byte) are recognized syntactically
but not entered into the mapping; see the notes on Parse.

# Links

The format is documented with the Linux kbd project:
https://www.win.tue.nl/~aeb/linux/kbd/font-formats-1.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.psf'
func tracer() tracing.Trace {
	return tracing.Select("font.psf")
}
