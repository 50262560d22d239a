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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package aeskey implements the AES key schedule for all three
// variants (AES-128/192/256).
package aeskey

import (
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/consts"
	"github.com/mrybak/gocipher/internal/galois"
	"github.com/mrybak/gocipher/internal/sbox"
)

// Rcon returns the idx-th AES round constant: x^(idx-1) in GF(2^8).
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1

	for idx != 1 {
		rcon = galois.Gmul(rcon, 2)
		idx--
	}

	return rcon
}

// RotWord rotates a 4-byte word: b0 b1 b2 b3 -> b1 b2 b3 b0.
func RotWord(word [consts.WordSize]byte) [consts.WordSize]byte {
	var rotated [consts.WordSize]byte

	for i := 0; i < consts.WordSize-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WordSize-1] = word[0]
	return rotated
}

// SubWord applies the forward S-box to each byte of a 4-byte word.
func SubWord(word [consts.WordSize]byte) [consts.WordSize]byte {
	var subw [consts.WordSize]byte

	for i := 0; i < consts.WordSize; i++ {
		subw[i] = sbox.SBox[word[i]]
	}

	return subw
}

func scheduleCore(word [consts.WordSize]byte, idx byte) [consts.WordSize]byte {
	word = RotWord(word)
	word = SubWord(word)
	word[0] ^= Rcon(idx)
	return word
}

// Expand builds the round-key schedule for key under variant, returning
// a slice of length variant.ExpandedKeySize() that the caller must treat
// as read-only from this point on.
func Expand(key []byte, variant consts.AESVariant) ([]byte, error) {
	if !variant.Valid() || len(key) != variant.KeySize() {
		return nil, cipheerr.ErrInvalidKeyLength
	}

	nk := variant.Nk()
	scheduleWords := variant.ScheduleWords()
	keySize := variant.KeySize()

	xKey := make([]byte, variant.ExpandedKeySize())
	copy(xKey, key)

	var tmpKey [consts.WordSize]byte
	var rconIdx byte = 1

	for i := nk; i < scheduleWords; i++ {
		c := i * consts.WordSize
		copy(tmpKey[:], xKey[c-consts.WordSize:c])

		switch {
		case i%nk == 0:
			tmpKey = scheduleCore(tmpKey, rconIdx)
			rconIdx++
		case nk > 6 && i%nk == 4:
			tmpKey = SubWord(tmpKey)
		}

		for a := 0; a < consts.WordSize; a++ {
			xKey[c+a] = xKey[c-keySize+a] ^ tmpKey[a]
		}
	}

	return xKey, nil
}
