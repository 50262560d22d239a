package des

import (
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/consts"
)

// TDEACipher composes three DES keys into the EDE (encrypt-decrypt-
// encrypt) construction used by Triple-DES. It implements the
// mode.Block interface so it drops into the same mode drivers as a
// plain Cipher.
type TDEACipher struct {
	k1, k2, k3 *Cipher
}

// NewTDEA builds a TDEACipher from a 24-byte key, split into three
// 8-byte DES keys k1, k2, k3 in order.
func NewTDEA(key []byte) (*TDEACipher, error) {
	if len(key) != consts.DESKeySize*3 {
		return nil, cipheerr.ErrInvalidKeyLength
	}

	k1, err := New(key[0:8])
	if err != nil {
		return nil, err
	}
	k2, err := New(key[8:16])
	if err != nil {
		return nil, err
	}
	k3, err := New(key[16:24])
	if err != nil {
		return nil, err
	}

	return &TDEACipher{k1: k1, k2: k2, k3: k3}, nil
}

// BlockSize returns 8, the DES block size in bytes.
func (t *TDEACipher) BlockSize() int {
	return blockSize
}

// EncryptBlock performs encrypt-decrypt-encrypt with k1, k2, k3.
func (t *TDEACipher) EncryptBlock(block []byte) ([]byte, error) {
	stage1, err := t.k1.EncryptBlock(block)
	if err != nil {
		return nil, err
	}
	stage2, err := t.k2.DecryptBlock(stage1)
	if err != nil {
		return nil, err
	}
	return t.k3.EncryptBlock(stage2)
}

// DecryptBlock reverses EncryptBlock: decrypt-encrypt-decrypt with
// k3, k2, k1.
func (t *TDEACipher) DecryptBlock(block []byte) ([]byte, error) {
	stage1, err := t.k3.DecryptBlock(block)
	if err != nil {
		return nil, err
	}
	stage2, err := t.k2.EncryptBlock(stage1)
	if err != nil {
		return nil, err
	}
	return t.k1.DecryptBlock(stage2)
}
