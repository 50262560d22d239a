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

// Package consts defines the fixed sizes and per-variant parameters
// shared by the AES and DES implementations.
package consts

// AESVariant selects the AES key size. It is passed explicitly to every
// AES call instead of being held in a package-level switch.
type AESVariant int

const (
	AES128 AESVariant = iota
	AES192
	AES256
)

func (v AESVariant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "AES-unknown"
	}
}

const (
	// WordSize is the size in bytes of one schedule word.
	WordSize = 4

	// AESBlockSize is the size of one AES state block.
	AESBlockSize = 16

	// DESBlockSize is the size of one DES/TDEA state block.
	DESBlockSize = 8

	// DESKeySize is the size of a single DES key.
	DESKeySize = 8

	// DESRounds is the number of Feistel rounds in one DES block op.
	DESRounds = 16
)

// aesParams holds the Nk (key words) and Nr (rounds) for a variant.
type aesParams struct {
	nk int
	nr int
}

var variantParams = map[AESVariant]aesParams{
	AES128: {nk: 4, nr: 10},
	AES192: {nk: 6, nr: 12},
	AES256: {nk: 8, nr: 14},
}

// Nk returns the number of 32-bit key words for the variant.
func (v AESVariant) Nk() int { return variantParams[v].nk }

// Rounds returns the number of AES rounds for the variant.
func (v AESVariant) Rounds() int { return variantParams[v].nr }

// KeySize returns the key length in bytes for the variant.
func (v AESVariant) KeySize() int { return v.Nk() * WordSize }

// ScheduleWords returns the number of 32-bit words in the expanded
// round-key schedule: 4*(Nr+1).
func (v AESVariant) ScheduleWords() int { return 4 * (v.Rounds() + 1) }

// ExpandedKeySize returns the size in bytes of the expanded schedule.
func (v AESVariant) ExpandedKeySize() int { return v.ScheduleWords() * WordSize }

// Valid reports whether v is one of the three known variants.
func (v AESVariant) Valid() bool {
	_, ok := variantParams[v]
	return ok
}
