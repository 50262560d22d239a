// Package mode implements the ECB, CBC, CFB, OFB, and CTR confidentiality
// modes as block-cipher-agnostic drivers over the Block interface, so
// AES, DES, and Triple-DES share one set of streaming compositions.
package mode

import (
	"github.com/mrybak/gocipher/internal/cipheerr"
	"github.com/mrybak/gocipher/internal/galois"
)

// Block is the minimal interface a one-block cipher must satisfy to be
// driven by any mode in this package.
type Block interface {
	BlockSize() int
	EncryptBlock(block []byte) ([]byte, error)
	DecryptBlock(block []byte) ([]byte, error)
}

func checkAlignment(input []byte, blockSize int) error {
	if len(input) == 0 || len(input)%blockSize != 0 {
		return cipheerr.ErrInvalidBlockAlignment
	}
	return nil
}

func checkIV(iv []byte, blockSize int) error {
	if len(iv) != blockSize {
		return cipheerr.ErrInvalidIv
	}
	return nil
}

// EncryptECB encrypts plaintext block by block with no chaining.
func EncryptECB(c Block, plaintext []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(plaintext, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i += bs {
		blk, err := c.EncryptBlock(plaintext[i : i+bs])
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], blk)
	}
	return out, nil
}

// DecryptECB decrypts ciphertext block by block with no chaining.
func DecryptECB(c Block, ciphertext []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(ciphertext, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		blk, err := c.DecryptBlock(ciphertext[i : i+bs])
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], blk)
	}
	return out, nil
}

// EncryptCBC chains each plaintext block against the previous
// ciphertext block (IV for the first block) before encrypting.
func EncryptCBC(c Block, plaintext, iv []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(plaintext, bs); err != nil {
		return nil, err
	}
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(plaintext))
	prev := append([]byte{}, iv...)

	for i := 0; i < len(plaintext); i += bs {
		mixed := galois.XorBlocks(plaintext[i:i+bs], prev)
		blk, err := c.EncryptBlock(mixed)
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], blk)
		prev = out[i : i+bs]
	}
	return out, nil
}

// DecryptCBC reverses EncryptCBC. Each ciphertext block is saved into a
// local buffer before DecryptBlock runs, so the feedback register never
// aliases a buffer DecryptBlock might still be reading.
func DecryptCBC(c Block, ciphertext, iv []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(ciphertext, bs); err != nil {
		return nil, err
	}
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(ciphertext))
	prev := append([]byte{}, iv...)

	for i := 0; i < len(ciphertext); i += bs {
		curr := append([]byte{}, ciphertext[i:i+bs]...)

		decrypted, err := c.DecryptBlock(curr)
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], galois.XorBlocks(decrypted, prev))
		prev = curr
	}
	return out, nil
}

// EncryptOFB and DecryptOFB are the same recurrence: the cipher output
// stream only depends on the IV and the key, never on the plaintext or
// ciphertext, so encryption and decryption are identical operations.
func EncryptOFB(c Block, input, iv []byte) ([]byte, error) {
	return ofb(c, input, iv)
}

func DecryptOFB(c Block, input, iv []byte) ([]byte, error) {
	return ofb(c, input, iv)
}

func ofb(c Block, input, iv []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(input, bs); err != nil {
		return nil, err
	}
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(input))
	feedback := append([]byte{}, iv...)

	for i := 0; i < len(input); i += bs {
		stream, err := c.EncryptBlock(feedback)
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], galois.XorBlocks(input[i:i+bs], stream))
		feedback = stream
	}
	return out, nil
}

// incrementCounter treats block as one big-endian unsigned integer and
// increments it in place with carry propagation, independent of
// whether the low byte happens to be 0xFF.
func incrementCounter(block []byte) {
	for i := len(block) - 1; i >= 0; i-- {
		block[i]++
		if block[i] != 0 {
			return
		}
	}
}

// EncryptCTR and DecryptCTR are the same recurrence: the counter
// keystream only depends on the ICV and the key.
func EncryptCTR(c Block, input, icv []byte) ([]byte, error) {
	return ctr(c, input, icv)
}

func DecryptCTR(c Block, input, icv []byte) ([]byte, error) {
	return ctr(c, input, icv)
}

func ctr(c Block, input, icv []byte) ([]byte, error) {
	bs := c.BlockSize()
	if err := checkAlignment(input, bs); err != nil {
		return nil, err
	}
	if err := checkIV(icv, bs); err != nil {
		return nil, err
	}

	out := make([]byte, len(input))
	counter := append([]byte{}, icv...)

	for i := 0; i < len(input); i += bs {
		stream, err := c.EncryptBlock(counter)
		if err != nil {
			return nil, err
		}
		copy(out[i:i+bs], galois.XorBlocks(input[i:i+bs], stream))
		incrementCounter(counter)
	}
	return out, nil
}
