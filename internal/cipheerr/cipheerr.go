// Package cipheerr defines the shared error taxonomy returned by every
// cipher and mode driver in this module. Keeping the sentinels in one
// leaf package lets aes, des, and mode return the same errors.New
// values the root package re-exports, instead of each wrapping its own.
package cipheerr

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key does not match the
	// length required by the selected cipher or AES variant.
	ErrInvalidKeyLength = errors.New("gocipher: invalid key length")

	// ErrInvalidBlockAlignment is returned when input to ECB, CBC, OFB,
	// or CTR is empty or not a positive multiple of the block size.
	ErrInvalidBlockAlignment = errors.New("gocipher: input length is not a positive multiple of the block size")

	// ErrInvalidSegment is returned when a CFB segment size is not in
	// the valid set, or the input's bit length isn't a multiple of it.
	ErrInvalidSegment = errors.New("gocipher: invalid CFB segment size")

	// ErrInvalidIv is returned when an IV or counter is missing or its
	// length does not equal the cipher's block size.
	ErrInvalidIv = errors.New("gocipher: invalid iv or counter length")
)
