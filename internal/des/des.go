package des

import "github.com/mrybak/gocipher/internal/cipheerr"

const blockSize = 8

// Cipher is a single-key DES block cipher. It implements the
// mode.Block interface.
type Cipher struct {
	subkeys [16][6]byte
}

// New derives the 16 round subkeys from an 8-byte DES key.
func New(key []byte) (*Cipher, error) {
	subkeys, err := Subkeys(key)
	if err != nil {
		return nil, err
	}

	return &Cipher{subkeys: subkeys}, nil
}

// BlockSize returns 8, the DES block size in bytes.
func (c *Cipher) BlockSize() int {
	return blockSize
}

// sixBitGroup extracts the i-th 6-bit group (0-indexed) from a 48-bit
// value packed into 6 bytes.
func sixBitGroup(x []byte, i int) byte {
	var v byte
	for b := 0; b < 6; b++ {
		v = v<<1 | getBit(x, i*6+b)
	}
	return v
}

// feistelF is the DES round function: expand R to 48 bits, mix in the
// round subkey, substitute through the eight S-boxes, and permute.
func feistelF(r []byte, subkey [6]byte) []byte {
	expanded := permute(r, expansionTable)

	for i := range expanded {
		expanded[i] ^= subkey[i]
	}

	sboxOut := make([]byte, 4)
	for i := 0; i < 8; i++ {
		group := sixBitGroup(expanded, i)
		row := (group>>4)&0x02 | group&0x01
		col := (group >> 1) & 0x0f
		val := sBoxes[i][int(row)*16+int(col)]

		if i%2 == 0 {
			sboxOut[i/2] |= val << 4
		} else {
			sboxOut[i/2] |= val
		}
	}

	return permute(sboxOut, pTable)
}

func feistelRounds(block []byte, subkeys [16][6]byte, reverse bool) []byte {
	permuted := permute(block, ip)

	l := append([]byte{}, permuted[0:4]...)
	r := append([]byte{}, permuted[4:8]...)

	for round := 0; round < 16; round++ {
		idx := round
		if reverse {
			idx = 15 - round
		}

		f := feistelF(r, subkeys[idx])

		newR := make([]byte, 4)
		for i := range newR {
			newR[i] = l[i] ^ f[i]
		}

		l = r
		r = newR
	}

	preOutput := append(append([]byte{}, r...), l...)
	return permute(preOutput, fp)
}

// EncryptBlock performs DES encryption of one 8-byte block.
func (c *Cipher) EncryptBlock(block []byte) ([]byte, error) {
	if len(block) != blockSize {
		return nil, cipheerr.ErrInvalidBlockAlignment
	}

	return feistelRounds(block, c.subkeys, false), nil
}

// DecryptBlock performs DES decryption of one 8-byte block.
func (c *Cipher) DecryptBlock(block []byte) ([]byte, error) {
	if len(block) != blockSize {
		return nil, cipheerr.ErrInvalidBlockAlignment
	}

	return feistelRounds(block, c.subkeys, true), nil
}
