// Package digest implements the hashing primitives shared by the hypercore
// tree and key layers: a generic multi-chunk SHA-256, discovery-key and
// namespace derivation, and capability tokens.
//
// Long-lived outputs (discovery keys, namespace entries, capability tokens)
// are always freshly allocated and never alias internal scratch memory, so
// callers may retain them without pinning larger buffers. HashInto is
// provided for callers that want to control allocation on hot paths.
package digest

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
)

// Size is the length in bytes of every digest produced by this package
const Size = sha256.Size

// ErrInvalidInput reports a structurally invalid argument, such as a buffer
// of the wrong length or an id that does not fit in a single byte.
var ErrInvalidInput = errors.New("digest: invalid input")

var discoveryKeyPrefix = []byte("hypercore")

// Hash computes the SHA-256 digest of the concatenation of chunks. The
// result is identical whether the input arrives as one buffer or split at
// arbitrary boundaries.
func Hash(chunks ...[]byte) []byte {
	out := make([]byte, Size)
	HashInto(out, chunks...)
	return out
}

// HashInto writes the digest of the concatenation of chunks into out, which
// must be exactly Size bytes.
func HashInto(out []byte, chunks ...[]byte) {
	if len(out) != Size {
		panic("digest: output buffer must be 32 bytes")
	}
	h := sha256.New()
	for _, c := range chunks {
		h.Write(c)
	}
	h.Sum(out[:0])
}

// DiscoveryKey derives the public rendezvous identifier for a 32-byte
// public key. The output is a pure function of the key bytes and is safe to
// publish: it is never usable as key material.
func DiscoveryKey(publicKey []byte) ([]byte, error) {
	if len(publicKey) != Size {
		return nil, ErrInvalidInput
	}
	return Hash(discoveryKeyPrefix, publicKey), nil
}

// RandomBytes returns n cryptographically random bytes. A failing random
// source is a fatal precondition, so it panics rather than degrading to
// weak randomness.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic("digest: failed to read from crypto/rand: " + err.Error())
	}
	return b
}
