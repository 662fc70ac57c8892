package enc

import (
	"bytes"
	"testing"
)

func TestUint64Layout(t *testing.T) {
	got := Uint64(11)
	want := []byte{11, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("encoding mismatch: got %v, want %v", got, want)
	}
	if len(Uint64(0)) != Uint64Size {
		t.Fatal("encoding should always be 8 bytes")
	}

	max := Uint64(^uint64(0))
	if !bytes.Equal(max, bytes.Repeat([]byte{0xff}, 8)) {
		t.Fatalf("max encoding mismatch: got %v", max)
	}
}

func TestAppendUint64(t *testing.T) {
	b := AppendUint64([]byte{0xaa}, 0x0102030405060708)
	want := []byte{0xaa, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(b, want) {
		t.Fatalf("append mismatch: got %v, want %v", b, want)
	}
}
