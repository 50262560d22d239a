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

// Package gocipher ties together the AES and DES block primitives with
// the ECB/CBC/CFB/OFB/CTR modes of operation into one public API.
// Everything under internal/ is a pure function of its own inputs; this
// package is the only place that selects a cipher, builds its key
// schedule, and hands it to a mode driver.
package gocipher

import (
	"github.com/mrybak/gocipher/internal/aes"
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/consts"
	"github.com/mrybak/gocipher/internal/des"
	"github.com/mrybak/gocipher/internal/mode"
)

// Re-exported error sentinels. Callers compare against these with
// errors.Is instead of internal/cipheerr's values directly.
var (
	ErrInvalidKeyLength      = cipheerr.ErrInvalidKeyLength
	ErrInvalidBlockAlignment = cipheerr.ErrInvalidBlockAlignment
	ErrInvalidSegment        = cipheerr.ErrInvalidSegment
	ErrInvalidIv             = cipheerr.ErrInvalidIv
)

// AESVariant selects AES-128/192/256. It is an alias of consts.AESVariant
// so callers never need to import the internal package directly.
type AESVariant = consts.AESVariant

const (
	AES128 = consts.AES128
	AES192 = consts.AES192
	AES256 = consts.AES256
)

// Mode selects the mode of operation driving a block cipher.
type Mode int

const (
	ECB Mode = iota
	CBC
	CFB
	OFB
	CTR
)

// ModeParams bundles a mode selector with its parameters. IV is
// required for every mode but ECB; SegmentBits is only meaningful
// (and only required) for CFB.
type ModeParams struct {
	Mode        Mode
	IV          []byte
	SegmentBits int
}

func validateModeParams(params ModeParams, blockSize int) error {
	if params.Mode != ECB && len(params.IV) != blockSize {
		return cipheerr.ErrInvalidIv
	}
	if params.Mode == CFB && params.SegmentBits <= 0 {
		return cipheerr.ErrInvalidSegment
	}
	return nil
}

func runMode(c mode.Block, input []byte, encrypting bool, params ModeParams) ([]byte, error) {
	if err := validateModeParams(params, c.BlockSize()); err != nil {
		return nil, err
	}

	switch params.Mode {
	case ECB:
		if encrypting {
			return mode.EncryptECB(c, input)
		}
		return mode.DecryptECB(c, input)
	case CBC:
		if encrypting {
			return mode.EncryptCBC(c, input, params.IV)
		}
		return mode.DecryptCBC(c, input, params.IV)
	case CFB:
		if encrypting {
			return mode.EncryptCFB(c, input, params.IV, params.SegmentBits)
		}
		return mode.DecryptCFB(c, input, params.IV, params.SegmentBits)
	case OFB:
		if encrypting {
			return mode.EncryptOFB(c, input, params.IV)
		}
		return mode.DecryptOFB(c, input, params.IV)
	case CTR:
		if encrypting {
			return mode.EncryptCTR(c, input, params.IV)
		}
		return mode.DecryptCTR(c, input, params.IV)
	default:
		return nil, cipheerr.ErrInvalidSegment
	}
}

// AesEncrypt encrypts plaintext under key using the AES variant and
// mode selected by params.
func AesEncrypt(variant consts.AESVariant, key, plaintext []byte, params ModeParams) ([]byte, error) {
	c, err := aes.New(variant, key)
	if err != nil {
		return nil, err
	}
	return runMode(c, plaintext, true, params)
}

// AesDecrypt decrypts ciphertext under key using the AES variant and
// mode selected by params.
func AesDecrypt(variant consts.AESVariant, key, ciphertext []byte, params ModeParams) ([]byte, error) {
	c, err := aes.New(variant, key)
	if err != nil {
		return nil, err
	}
	return runMode(c, ciphertext, false, params)
}

// DesEncrypt encrypts plaintext under an 8-byte DES key using the mode
// selected by params.
func DesEncrypt(key, plaintext []byte, params ModeParams) ([]byte, error) {
	c, err := des.New(key)
	if err != nil {
		return nil, err
	}
	return runMode(c, plaintext, true, params)
}

// DesDecrypt decrypts ciphertext under an 8-byte DES key using the mode
// selected by params.
func DesDecrypt(key, ciphertext []byte, params ModeParams) ([]byte, error) {
	c, err := des.New(key)
	if err != nil {
		return nil, err
	}
	return runMode(c, ciphertext, false, params)
}

// TdeaEncrypt encrypts plaintext under three independent 8-byte DES
// keys composed as encrypt-decrypt-encrypt, using the mode selected by
// params.
func TdeaEncrypt(key1, key2, key3, plaintext []byte, params ModeParams) ([]byte, error) {
	c, err := des.NewTDEA(append(append(append([]byte{}, key1...), key2...), key3...))
	if err != nil {
		return nil, err
	}
	return runMode(c, plaintext, true, params)
}

// TdeaDecrypt decrypts ciphertext under three independent 8-byte DES
// keys, using the mode selected by params.
func TdeaDecrypt(key1, key2, key3, ciphertext []byte, params ModeParams) ([]byte, error) {
	c, err := des.NewTDEA(append(append(append([]byte{}, key1...), key2...), key3...))
	if err != nil {
		return nil, err
	}
	return runMode(c, ciphertext, false, params)
}
