package psf

import (
	"errors"
	"fmt"
	"math"
)

// Reading bytes from a font's binary representation.
//
// PSF2 stores all integer header fields little-endian, in contrast to the
// big-endian SFNT family of formats.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<0 | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// binarySegm is a segment of byte data. We use it throughout this package to
// navigate the font's binary data with explicit bounds checks.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u32 returns the little-endian uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// Checked arithmetic operations to prevent integer overflow. Header fields
// are attacker-controlled; products like glyphcount × charsize must not wrap
// around before they are compared against the buffer size.

// checkedMulInt checks for overflow in multiplication of two non-negative integers.
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddInt checks for overflow in addition of two non-negative integers.
func checkedAddInt(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}
