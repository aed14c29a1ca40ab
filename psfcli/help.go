package main

import (
	"github.com/pterm/pterm"
)

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	header                   print the PSF2 file header fields
	info                     print general font information
	glyph <char>             print the bitmap of the glyph for <char>
	unicode                  list all codepoint -> glyph associations
	export <file.png> [n]    write a glyph contact sheet, scaled n times
	help                     this text
	quit                     leave (also <ctrl>D)
	`)
}
