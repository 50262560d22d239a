package des

import (
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/consts"
)

// bits28 holds one 28-bit key half as individual 0/1 byte values,
// indexed 0 (MSB) through 27 (LSB). 28 isn't byte-aligned so the
// per-round rotation works on this representation instead of routing
// through permute.
type bits28 [28]byte

// rotateLeft28 rotates a 28-bit half left by shift positions.
func rotateLeft28(b bits28, shift int) bits28 {
	var out bits28
	for i := range out {
		out[i] = b[(i+shift)%28]
	}
	return out
}

// pack56 concatenates c and d into a 56-bit string packed into 7 bytes.
func pack56(c, d bits28) []byte {
	out := make([]byte, 7)
	for i, v := range c {
		setBit(out, i, v)
	}
	for i, v := range d {
		setBit(out, 28+i, v)
	}
	return out
}

// Subkeys expands an 8-byte DES key into 16 round subkeys, each 6
// bytes (48 bits) wide, per the standard PC1/PC2 key schedule.
func Subkeys(key []byte) ([16][6]byte, error) {
	var subkeys [16][6]byte

	if len(key) != consts.DESKeySize {
		return subkeys, cipheerr.ErrInvalidKeyLength
	}

	reduced := permute(key, pc1)

	var c, d bits28
	for i := range c {
		c[i] = getBit(reduced, i)
		d[i] = getBit(reduced, 28+i)
	}

	for round := 0; round < 16; round++ {
		shift := keyShifts[round]
		c = rotateLeft28(c, shift)
		d = rotateLeft28(d, shift)

		combined := pack56(c, d)
		sub := permute(combined, pc2)
		copy(subkeys[round][:], sub)
	}

	return subkeys, nil
}
