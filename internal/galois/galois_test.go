package galois

import "testing"

func TestGmul(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
	}

	for _, tt := range tests {
		if got := Gmul(tt.a, tt.b); got != tt.want {
			t.Errorf("Gmul(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGaddIsXor(t *testing.T) {
	if Gadd(0x57, 0x83) != 0x57^0x83 {
		t.Errorf("Gadd is not XOR")
	}
	if Gsub(0x57, 0x83) != Gadd(0x57, 0x83) {
		t.Errorf("Gsub should equal Gadd in a characteristic-2 field")
	}
}

func TestXorBlocks(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0xff, 0x00, 0x0f}

	got := XorBlocks(a, b)
	want := []byte{0xfe, 0x02, 0x0c}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("XorBlocks = % x, want % x", got, want)
		}
	}

	// a must not be mutated.
	if a[0] != 0x01 {
		t.Errorf("XorBlocks mutated its input")
	}
}
