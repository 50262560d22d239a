package mode

import (
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/galois"
)

// validSegmentBits reports whether s is a supported CFB segment width:
// any sub-byte width in {1,2,4}, or any byte-aligned width up to the
// full block size.
func validSegmentBits(s, blockSize int) bool {
	switch s {
	case 1, 2, 4:
		return true
	}
	return s > 0 && s%8 == 0 && s <= blockSize*8
}

// readBits reads the n-bit, MSB-first group starting at absolute bit
// offset off within buf, returned right-justified in a byte.
func readBits(buf []byte, off, n int) byte {
	var v byte
	for i := 0; i < n; i++ {
		byteIdx := (off + i) / 8
		bitIdx := uint(7 - (off+i)%8)
		bit := (buf[byteIdx] >> bitIdx) & 1
		v = v<<1 | bit
	}
	return v
}

// writeBits writes the low n bits of v into buf starting at absolute
// bit offset off, MSB-first.
func writeBits(buf []byte, off, n int, v byte) {
	for i := 0; i < n; i++ {
		bit := (v >> uint(n-1-i)) & 1
		byteIdx := (off + i) / 8
		bitIdx := uint(7 - (off+i)%8)
		mask := byte(1) << bitIdx
		if bit != 0 {
			buf[byteIdx] |= mask
		} else {
			buf[byteIdx] &^= mask
		}
	}
}

// shiftLeftBits shifts the bit register buf (blockSize bytes) left by
// n bits in place, carrying each byte's top n bits into its left
// neighbour, and zero-fills the vacated low bits.
func shiftLeftBits(buf []byte, n int) {
	total := len(buf) * 8
	shifted := make([]byte, len(buf))
	for i := 0; i < total-n; i++ {
		bit := readBits(buf, i+n, 1)
		writeBits(shifted, i, 1, bit)
	}
	copy(buf, shifted)
}

func cfbByteAligned(c Block, input, iv []byte, segBytes int, encrypting bool) ([]byte, error) {
	bs := c.BlockSize()
	out := make([]byte, len(input))
	x := append([]byte{}, iv...)

	for i := 0; i < len(input); i += segBytes {
		t, err := c.EncryptBlock(x)
		if err != nil {
			return nil, err
		}

		seg := input[i : i+segBytes]
		keystream := t[:segBytes]
		outSeg := galois.XorBlocks(seg, keystream)
		copy(out[i:i+segBytes], outSeg)

		var cipherSeg []byte
		if encrypting {
			cipherSeg = outSeg
		} else {
			cipherSeg = seg
		}

		if segBytes == bs {
			copy(x, cipherSeg)
		} else {
			copy(x, x[segBytes:])
			copy(x[bs-segBytes:], cipherSeg)
		}
	}

	return out, nil
}

func cfbSubByte(c Block, input, iv []byte, segBits int, encrypting bool) ([]byte, error) {
	bs := c.BlockSize()
	totalBits := len(input) * 8
	out := make([]byte, len(input))
	x := append([]byte{}, iv...)

	for off := 0; off < totalBits; off += segBits {
		t, err := c.EncryptBlock(x)
		if err != nil {
			return nil, err
		}

		keystream := readBits(t, 0, segBits)
		seg := readBits(input, off, segBits)
		outSeg := seg ^ keystream
		writeBits(out, off, segBits, outSeg)

		var cipherSeg byte
		if encrypting {
			cipherSeg = outSeg
		} else {
			cipherSeg = seg
		}

		shiftLeftBits(x, segBits)
		writeBits(x, bs*8-segBits, segBits, cipherSeg)
	}

	return out, nil
}

func cfb(c Block, input, iv []byte, segmentBits int, encrypting bool) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	if !validSegmentBits(segmentBits, bs) {
		return nil, cipheerr.ErrInvalidSegment
	}
	if len(input) == 0 || (len(input)*8)%segmentBits != 0 {
		return nil, cipheerr.ErrInvalidSegment
	}

	if segmentBits%8 == 0 {
		return cfbByteAligned(c, input, iv, segmentBits/8, encrypting)
	}
	return cfbSubByte(c, input, iv, segmentBits, encrypting)
}

// EncryptCFB encrypts input using CFB mode with the given segment size
// in bits.
func EncryptCFB(c Block, input, iv []byte, segmentBits int) ([]byte, error) {
	return cfb(c, input, iv, segmentBits, true)
}

// DecryptCFB decrypts input using CFB mode with the given segment size
// in bits.
func DecryptCFB(c Block, input, iv []byte, segmentBits int) ([]byte, error) {
	return cfb(c, input, iv, segmentBits, false)
}
