// Package schnorr implements hypercore's Schnorr-style signature scheme
// over the ristretto255 prime-order group: key generation, signing, and
// verification, plus key-pair validation and a best-effort wipe hook.
//
// Two historical signature layouts exist (see Scheme); they are not
// interchangeable and the package-level Sign and Verify use the
// challenge-recovery Subtractive layout.
package schnorr

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/gtank/ristretto255"
)

const (
	// PublicKeySize is the canonical ristretto255 point encoding length
	PublicKeySize = 32
	// SecretKeySize is the private scalar followed by a public-key copy
	SecretKeySize = 64
	// SignatureSize is the two 32-byte signature components
	SignatureSize = 64
	// SeedSize is the input length for deterministic key derivation
	SeedSize = 32
)

var (
	// ErrInvalidInput reports a key, seed, or signature of the wrong length
	ErrInvalidInput = errors.New("schnorr: invalid input")
	// ErrDecoding reports a non-canonical point or scalar encoding
	ErrDecoding = errors.New("schnorr: malformed encoding")
)

// KeyPair holds a ristretto255 signing identity. SecretKey stores the
// private scalar in its first 32 bytes and a copy of PublicKey in its last
// 32, so either half can be checked against the other.
type KeyPair struct {
	PublicKey []byte
	SecretKey []byte
}

// GenerateKeyPair creates a key pair from fresh randomness. An unavailable
// random source is unrecoverable; there is no fallback.
func GenerateKeyPair() (*KeyPair, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand.Reader, wide[:]); err != nil {
		return nil, err
	}
	return fromScalar(ristretto255.NewScalar().FromUniformBytes(wide[:])), nil
}

// KeyPairFromSeed derives a key pair deterministically from a 32-byte seed,
// enabling reproducible identities and fixed test vectors.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidInput
	}
	return fromScalar(hashToScalar(seed)), nil
}

func fromScalar(priv *ristretto255.Scalar) *KeyPair {
	pub := ristretto255.NewElement().ScalarBaseMult(priv).Encode(make([]byte, 0, PublicKeySize))
	sk := priv.Encode(make([]byte, 0, SecretKeySize))
	sk = append(sk, pub...)
	return &KeyPair{PublicKey: pub, SecretKey: sk}
}

// ValidateKeyPair reports whether the stored private scalar produces the
// stored public key, in both its copies. It fails closed: any length
// mismatch or decode error returns false.
func ValidateKeyPair(kp *KeyPair) bool {
	if kp == nil || len(kp.PublicKey) != PublicKeySize || len(kp.SecretKey) != SecretKeySize {
		return false
	}
	priv := ristretto255.NewScalar()
	if err := priv.Decode(kp.SecretKey[:32]); err != nil {
		return false
	}
	pub := ristretto255.NewElement().ScalarBaseMult(priv).Encode(make([]byte, 0, PublicKeySize))
	return subtle.ConstantTimeCompare(pub, kp.PublicKey) == 1 &&
		subtle.ConstantTimeCompare(kp.SecretKey[32:], kp.PublicKey) == 1
}

// Wipe zeroes b in place. Go offers no guarded memory, so this is a
// no-op-safe defense-in-depth hook for callers discarding secret material.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
