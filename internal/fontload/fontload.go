package fontload

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/psfont/psf"
)

// ScreenFont is a parsed console font with original bytes and PSF view.
type ScreenFont struct {
	Fontname string
	Binary   []byte
	PSF      *psf.Font
}

// LoadScreenFont loads a PSF2 screen font from a file. Console fonts are
// commonly shipped gzip-compressed (e.g. /usr/share/consolefonts/*.psfu.gz);
// compressed files are recognized by their gzip signature and decompressed
// transparently.
func LoadScreenFont(fontfile string) (*ScreenFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	if isGzip(bytez) {
		if bytez, err = gunzip(bytez); err != nil {
			return nil, err
		}
	}
	f, err := ParseScreenFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Fontname = fontname(fontfile)
	return f, nil
}

// ParseScreenFont parses a PSF2 screen font from memory.
func ParseScreenFont(fbytes []byte) (*ScreenFont, error) {
	f := &ScreenFont{Binary: fbytes}
	var err error
	if f.PSF, err = psf.Parse(fbytes); err != nil {
		return nil, err
	}
	return f, nil
}

func isGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b
}

func gunzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// fontname derives a font name from a file path, stripping compression and
// format suffixes: "/usr/share/consolefonts/Lat2-Terminus16.psfu.gz" becomes
// "Lat2-Terminus16".
func fontname(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	if ext := filepath.Ext(name); ext == ".psf" || ext == ".psfu" {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
