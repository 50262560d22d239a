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

// Package galois implements the GF(2^8) field arithmetic used by AES
// MixColumns and by every mode driver's block XOR.
package galois

// Gadd is addition in GF(2^8), which is XOR.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// Gsub is subtraction in GF(2^8); identical to Gadd since the field has
// characteristic 2.
func Gsub(a byte, b byte) byte {
	return a ^ b
}

// Gmul multiplies a and b in GF(2^8) with reduction polynomial
// x^8+x^4+x^3+x+1 (0x11B), using the peasant multiplication algorithm.
func Gmul(a byte, b byte) byte {
	var p byte = 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1

		if hiBitSet {
			a ^= 0x1b
		}

		b >>= 1
	}

	return p
}

// XorBlocks XORs two equal-length byte slices, returning a new slice.
func XorBlocks(a []byte, b []byte) []byte {
	result := make([]byte, len(a))

	for i, val := range a {
		result[i] = Gadd(val, b[i])
	}

	return result
}
