package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/psfont/psf"
	"github.com/npillmayer/psfont/psfquery"
	"github.com/pterm/pterm"
)

func printHeader(h psf.Header) {
	data := [][]string{
		{"Field", "Value"},
		{"magic", fmt.Sprintf("0x%08x", h.Magic)},
		{"version", fmt.Sprintf("%d", h.Version)},
		{"headersize", fmt.Sprintf("%d", h.HeaderSize)},
		{"flags", fmt.Sprintf("0x%08x", h.Flags)},
		{"length", fmt.Sprintf("%d", h.Length)},
		{"charsize", fmt.Sprintf("%d", h.CharSize)},
		{"height", fmt.Sprintf("%d", h.Height)},
		{"width", fmt.Sprintf("%d", h.Width)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printInfo(fontname string, f *psf.Font) {
	info := psfquery.FontInfo(f)
	pterm.Printf("Font %s:\n", fontname)
	for _, key := range []string{"format", "glyphs", "cell", "unicode-table", "coverage"} {
		pterm.Printf("  %-14s %s\n", key, info[key])
	}
}

// printGlyph looks up the glyph for the first rune of arg and prints its
// bitmap, one character cell per pixel.
func printGlyph(f *psf.Font, arg string) error {
	c := []rune(arg)[0]
	info, ok := psfquery.LookupGlyphInfo(f, c)
	if !ok {
		return fmt.Errorf("font has no glyph for %#U", c)
	}
	pterm.Printf("glyph #%d for %#U %s, %d×%d px, %d pixels set\n",
		info.Index, c, info.Name, info.Width, info.Height, info.SetPixels)
	glyph := f.Glyph(info.Index)
	pterm.Println(rasterize(glyph))
	return nil
}

// rasterize renders a glyph bitmap as text, row by row.
func rasterize(g *psf.Glyph) string {
	sb := strings.Builder{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Pixel(x, y).Or(false) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune('·')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// printUnicodeTable lists the font's codepoint → glyph associations.
func printUnicodeTable(f *psf.Font) {
	count := 0
	for c, inx := range psfquery.CodepointsRange(f) {
		pterm.Printf("  %#U -> glyph #%d\n", c, inx)
		count++
	}
	pterm.Printf("%d codepoints mapped\n", count)
}
