package aeskey

import (
	"testing"

	"github.com/mrybak/gocipher/internal/consts"
)

func TestRcon(t *testing.T) {
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		if got := Rcon(byte(i)); got != w {
			t.Errorf("Rcon(%d) = %#x, want %#x", i, got, w)
		}
	}
}

func TestExpandLength(t *testing.T) {
	variants := []consts.AESVariant{consts.AES128, consts.AES192, consts.AES256}

	for _, v := range variants {
		key := make([]byte, v.KeySize())
		schedule, err := Expand(key, v)
		if err != nil {
			t.Fatalf("%s: Expand: %v", v, err)
		}
		if len(schedule) != v.ExpandedKeySize() {
			t.Errorf("%s: len(schedule) = %d, want %d", v, len(schedule), v.ExpandedKeySize())
		}
	}
}

func TestRotWord(t *testing.T) {
	word := [consts.WordSize]byte{0x09, 0xcf, 0x4f, 0x3c}
	want := [consts.WordSize]byte{0xcf, 0x4f, 0x3c, 0x09}

	if got := RotWord(word); got != want {
		t.Errorf("RotWord(%v) = %v, want %v", word, got, want)
	}
}
