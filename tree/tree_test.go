package tree

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/lukeburns/hypercore-crypto/digest"
)

// Reference digest locking in the wire encoding: SHA-256 over
// 0x00 || u64le(11) || "hello world"
func TestLeafHashVector(t *testing.T) {
	want := "bc260f875f75e760bd05e029648785cc3793100eda763cf9754423442027bcb5"
	got := hex.EncodeToString(LeafHash([]byte("hello world")))
	if got != want {
		t.Fatalf("leaf hash vector mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestLeafHashDistinguishesInputs(t *testing.T) {
	a := LeafHash([]byte("hello"))
	b := LeafHash([]byte("hello"))
	c := LeafHash([]byte("hello "))
	if !bytes.Equal(a, b) {
		t.Fatal("leaf hash should be deterministic")
	}
	if bytes.Equal(a, c) {
		t.Fatal("distinct inputs should not collide")
	}
	if len(a) != digest.Size {
		t.Fatalf("leaf hash should be %d bytes, got %d", digest.Size, len(a))
	}
}

func TestParentHashCommutes(t *testing.T) {
	a := Node{Index: 0, Size: 1, Hash: LeafHash([]byte("a"))}
	b := Node{Index: 2, Size: 1, Hash: LeafHash([]byte("b"))}

	ab, err := ParentHash(a, b)
	if err != nil {
		t.Fatalf("parent hash failed: %v", err)
	}
	ba, err := ParentHash(b, a)
	if err != nil {
		t.Fatalf("parent hash failed: %v", err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatal("parent hash should not depend on argument order")
	}

	want := "2fca5534750e6e3cb33a8e6b0444a241d059c3e0977afb117d22d01c5e4772f0"
	if got := hex.EncodeToString(ab); got != want {
		t.Fatalf("parent hash vector mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestParentHashCommitsSize(t *testing.T) {
	h := LeafHash([]byte("x"))
	a := Node{Index: 0, Size: 1, Hash: h}
	b := Node{Index: 2, Size: 1, Hash: h}
	small, err := ParentHash(a, b)
	if err != nil {
		t.Fatalf("parent hash failed: %v", err)
	}
	b.Size = 2
	large, err := ParentHash(a, b)
	if err != nil {
		t.Fatalf("parent hash failed: %v", err)
	}
	if bytes.Equal(small, large) {
		t.Fatal("parents over different extents should not collide")
	}
}

func TestParentHashRejectsBadDigest(t *testing.T) {
	good := Node{Index: 0, Size: 1, Hash: LeafHash([]byte("a"))}
	bad := Node{Index: 2, Size: 1, Hash: []byte("short")}
	if _, err := ParentHash(good, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := ParentHash(bad, good); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Reference digest locking in the root encoding order and layout
func TestRootHashVector(t *testing.T) {
	want := "cdda7cb78b06d51e3eb0d8d07fc4e1e2150d633529f57fb130a2b624b5991c63"
	roots := []Node{
		{Index: 3, Size: 11, Hash: make([]byte, 32)},
		{Index: 9, Size: 2, Hash: make([]byte, 32)},
	}
	got, err := RootHash(roots)
	if err != nil {
		t.Fatalf("root hash failed: %v", err)
	}
	if hex.EncodeToString(got) != want {
		t.Fatalf("root hash vector mismatch:\n got %x\nwant %s", got, want)
	}
}

func TestRootHashOrderSignificant(t *testing.T) {
	a := Node{Index: 1, Size: 1, Hash: LeafHash([]byte("a"))}
	b := Node{Index: 5, Size: 3, Hash: LeafHash([]byte("b"))}

	ab, err := RootHash([]Node{a, b})
	if err != nil {
		t.Fatalf("root hash failed: %v", err)
	}
	ba, err := RootHash([]Node{b, a})
	if err != nil {
		t.Fatalf("root hash failed: %v", err)
	}
	if bytes.Equal(ab, ba) {
		t.Fatal("root hash must preserve caller-supplied order")
	}
}

func TestRootHashEmptyAndInvalid(t *testing.T) {
	empty, err := RootHash(nil)
	if err != nil {
		t.Fatalf("empty root list should hash, got %v", err)
	}
	if len(empty) != digest.Size {
		t.Fatalf("root hash should be %d bytes, got %d", digest.Size, len(empty))
	}
	if _, err := RootHash([]Node{{Index: 0, Size: 0, Hash: make([]byte, 31)}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDomainSeparation(t *testing.T) {
	// A leaf whose content is exactly a parent preimage must still hash
	// differently, because the type tags differ.
	h := LeafHash([]byte("a"))
	parent, err := ParentHash(
		Node{Index: 0, Size: 1, Hash: h},
		Node{Index: 2, Size: 1, Hash: h},
	)
	if err != nil {
		t.Fatalf("parent hash failed: %v", err)
	}
	root, err := RootHash([]Node{{Index: 1, Size: 2, Hash: h}})
	if err != nil {
		t.Fatalf("root hash failed: %v", err)
	}
	if bytes.Equal(h, parent) || bytes.Equal(h, root) || bytes.Equal(parent, root) {
		t.Fatal("leaf, parent, and root digests must never coincide")
	}
}

func TestSignableLayout(t *testing.T) {
	h := LeafHash([]byte("entry"))
	payload, err := Signable(h, 42)
	if err != nil {
		t.Fatalf("signable failed: %v", err)
	}
	if len(payload) != digest.Size+8 {
		t.Fatalf("signable should be %d bytes, got %d", digest.Size+8, len(payload))
	}
	if !bytes.Equal(payload[:digest.Size], h) {
		t.Fatal("signable should start with the tree hash")
	}
	if binary.LittleEndian.Uint64(payload[digest.Size:]) != 42 {
		t.Fatal("signable should end with the little-endian length")
	}
	if _, err := Signable([]byte("short"), 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
