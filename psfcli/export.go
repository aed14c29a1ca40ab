package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/npillmayer/psfont/psf"
	"github.com/pterm/pterm"
	"golang.org/x/image/draw"
)

const sheetColumns = 16

// exportGlyphSheet writes all glyphs of a font as a PNG contact sheet,
// 16 glyphs per row, optionally scaled up by an integer factor.
func exportGlyphSheet(f *psf.Font, path string, scale int) error {
	img := glyphSheet(f)
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %d glyphs to %s\n", f.NumGlyphs(), path)
	return nil
}

// glyphSheet draws each glyph into a grid cell, using the padded glyph
// width so that pixels in the padding bits stay visible.
func glyphSheet(f *psf.Font) *image.RGBA {
	cellW, cellH := 0, f.Height()+1
	if g := f.Glyph(0); g != nil {
		cellW = g.Width() + 1
	}
	rows := (f.NumGlyphs() + sheetColumns - 1) / sheetColumns
	img := image.NewRGBA(image.Rect(0, 0, 1+sheetColumns*cellW, 1+rows*cellH))
	background := color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	foreground := color.RGBA{0x10, 0x10, 0x10, 0xff}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for i := 0; i < f.NumGlyphs(); i++ {
		g := f.Glyph(i)
		x0 := 1 + (i%sheetColumns)*cellW
		y0 := 1 + (i/sheetColumns)*cellH
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.Pixel(x, y).Or(false) {
					img.Set(x0+x, y0+y, foreground)
				}
			}
		}
	}
	return img
}
