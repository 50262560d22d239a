// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package aes implements the AES round function and one-block
// encrypt/decrypt for the AES-128/192/256 variants.
package aes

import (
	"github.com/mrybak/gocipher/internal/aeskey"
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/consts"
	"github.com/mrybak/gocipher/internal/galois"
	"github.com/mrybak/gocipher/internal/sbox"
)

// Cipher is an AES block cipher bound to one expanded key schedule.
// It implements the mode.Block interface.
type Cipher struct {
	variant  consts.AESVariant
	schedule []byte
}

// New expands key under variant and returns a ready-to-use Cipher.
func New(variant consts.AESVariant, key []byte) (*Cipher, error) {
	schedule, err := aeskey.Expand(key, variant)
	if err != nil {
		return nil, err
	}

	return &Cipher{variant: variant, schedule: schedule}, nil
}

// BlockSize returns 16, the AES state size in bytes.
func (c *Cipher) BlockSize() int {
	return consts.AESBlockSize
}

func subBytes(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	for i := range state {
		state[i] = sbox.SBox[state[i]]
	}
	return state
}

func invSubBytes(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	for i := range state {
		state[i] = sbox.InvBox[state[i]]
	}
	return state
}

// shiftRows rotates row r of the 4x4 column-major state left by r.
func shiftRows(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	var shifted [consts.AESBlockSize]byte
	copy(shifted[:], state[:])

	for i := 1; i < 4; i++ {
		for col := 0; col < 4; col++ {
			shifted[i+4*col] = state[i+4*((col+i)%4)]
		}
	}

	return shifted
}

func invShiftRows(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	var shifted [consts.AESBlockSize]byte
	copy(shifted[:], state[:])

	for i := 1; i < 4; i++ {
		for col := 0; col < 4; col++ {
			shifted[i+4*col] = state[i+4*((col-i+4)%4)]
		}
	}

	return shifted
}

func mixColumns(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	var mixed [consts.AESBlockSize]byte

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = galois.Gmul(0x02, state[4*i+0]) ^ galois.Gmul(0x03, state[4*i+1]) ^ state[4*i+2] ^ state[4*i+3]
		mixed[4*i+1] = state[4*i+0] ^ galois.Gmul(0x02, state[4*i+1]) ^ galois.Gmul(0x03, state[4*i+2]) ^ state[4*i+3]
		mixed[4*i+2] = state[4*i+0] ^ state[4*i+1] ^ galois.Gmul(0x02, state[4*i+2]) ^ galois.Gmul(0x03, state[4*i+3])
		mixed[4*i+3] = galois.Gmul(0x03, state[4*i+0]) ^ state[4*i+1] ^ state[4*i+2] ^ galois.Gmul(0x02, state[4*i+3])
	}

	return mixed
}

func invMixColumns(state [consts.AESBlockSize]byte) [consts.AESBlockSize]byte {
	var mixed [consts.AESBlockSize]byte

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = galois.Gmul(0x0e, state[4*i+0]) ^ galois.Gmul(0x0b, state[4*i+1]) ^ galois.Gmul(0x0d, state[4*i+2]) ^ galois.Gmul(0x09, state[4*i+3])
		mixed[4*i+1] = galois.Gmul(0x09, state[4*i+0]) ^ galois.Gmul(0x0e, state[4*i+1]) ^ galois.Gmul(0x0b, state[4*i+2]) ^ galois.Gmul(0x0d, state[4*i+3])
		mixed[4*i+2] = galois.Gmul(0x0d, state[4*i+0]) ^ galois.Gmul(0x09, state[4*i+1]) ^ galois.Gmul(0x0e, state[4*i+2]) ^ galois.Gmul(0x0b, state[4*i+3])
		mixed[4*i+3] = galois.Gmul(0x0b, state[4*i+0]) ^ galois.Gmul(0x0d, state[4*i+1]) ^ galois.Gmul(0x09, state[4*i+2]) ^ galois.Gmul(0x0e, state[4*i+3])
	}

	return mixed
}

func (c *Cipher) addRoundKey(state [consts.AESBlockSize]byte, roundIdx int) [consts.AESBlockSize]byte {
	roundKey := c.schedule[roundIdx*consts.AESBlockSize : (roundIdx+1)*consts.AESBlockSize]

	var out [consts.AESBlockSize]byte
	for i, b := range state {
		out[i] = galois.Gadd(b, roundKey[i])
	}

	return out
}

// EncryptBlock performs AES encryption of one 16-byte block.
func (c *Cipher) EncryptBlock(block []byte) ([]byte, error) {
	if len(block) != consts.AESBlockSize {
		return nil, cipheerr.ErrInvalidBlockAlignment
	}

	var state [consts.AESBlockSize]byte
	copy(state[:], block)

	nr := c.variant.Rounds()
	state = c.addRoundKey(state, 0)

	for round := 1; round < nr; round++ {
		state = subBytes(state)
		state = shiftRows(state)
		state = mixColumns(state)
		state = c.addRoundKey(state, round)
	}

	state = subBytes(state)
	state = shiftRows(state)
	state = c.addRoundKey(state, nr)

	out := make([]byte, consts.AESBlockSize)
	copy(out, state[:])
	return out, nil
}

// DecryptBlock performs AES decryption of one 16-byte block.
func (c *Cipher) DecryptBlock(block []byte) ([]byte, error) {
	if len(block) != consts.AESBlockSize {
		return nil, cipheerr.ErrInvalidBlockAlignment
	}

	var state [consts.AESBlockSize]byte
	copy(state[:], block)

	nr := c.variant.Rounds()
	state = c.addRoundKey(state, nr)

	for round := nr - 1; round > 0; round-- {
		state = invShiftRows(state)
		state = invSubBytes(state)
		state = c.addRoundKey(state, round)
		state = invMixColumns(state)
	}

	state = invShiftRows(state)
	state = invSubBytes(state)
	state = c.addRoundKey(state, 0)

	out := make([]byte, consts.AESBlockSize)
	copy(out, state[:])
	return out, nil
}
