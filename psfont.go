/*
Package psfont handles PSF2 bitmap screen fonts.

"PC Screen Font" version 2 is the fixed-cell bitmap font format of the
Linux console. This root package offers convenience entry points for the
common cases—parse a byte slice, load a font file (gzipped or not), take
the measure of a piece of text on the font's cell grid. The codec itself
lives in package psf, read-only font queries in package psfquery.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package psfont

import (
	"unicode/utf8"

	"github.com/npillmayer/psfont/internal/fontload"
	"github.com/npillmayer/psfont/psf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.psf'
func tracer() tracing.Trace {
	return tracing.Select("font.psf")
}

// FromBinary parses raw PSF2 bytes and returns a decoded font.
//
// The parse copies everything it retains, so data may be reused or
// discarded once FromBinary returns.
func FromBinary(data []byte) (*psf.Font, error) {
	return psf.Parse(data)
}

// LoadFont loads a PSF2 screen font from a file. Console fonts usually ship
// gzip-compressed (*.psfu.gz); LoadFont decompresses them transparently.
func LoadFont(fontfile string) (*psf.Font, error) {
	f, err := fontload.LoadScreenFont(fontfile)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded screen font %s", f.Fontname)
	return f.PSF, nil
}

// TextSpan returns the extent in pixels that text occupies on the fixed
// cell grid of font f. Every rune accounts for one cell, whether the font
// maps it or not; the console renders unmapped runes as a fallback cell of
// the same size.
func TextSpan(f *psf.Font, text string) (width int, height int) {
	if f == nil || text == "" {
		return 0, 0
	}
	return utf8.RuneCountInString(text) * f.Width(), f.Height()
}

// SupportsText reports whether font f maps every rune of text to a glyph.
func SupportsText(f *psf.Font, text string) bool {
	if f == nil {
		return false
	}
	for _, c := range text {
		if f.Lookup(c).IsNone() {
			return false
		}
	}
	return true
}
