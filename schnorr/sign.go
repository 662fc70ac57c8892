package schnorr

import (
	"crypto/rand"
	"io"

	"github.com/gtank/ristretto255"
	"golang.org/x/crypto/sha3"

	"github.com/lukeburns/hypercore-crypto/digest"
)

// Scheme selects between the two historical hypercore signature layouts.
// The constructions are not interchangeable: a signature produced under one
// never verifies under the other.
type Scheme int

const (
	// Subtractive is the challenge-recovery construction: s = k - e*sk,
	// encoded as s || e. Verification recomputes R' = s*G + e*P and checks
	// that the rederived challenge equals e.
	Subtractive Scheme = iota
	// Additive is the commitment construction: s = k + e*sk, encoded as
	// R || s. Verification checks s*G == R + e*P.
	Additive
)

// Sign signs message with the default Subtractive scheme.
func Sign(message, secretKey []byte) ([]byte, error) {
	return Subtractive.Sign(message, secretKey)
}

// Verify checks a default-scheme signature.
func Verify(message, signature, publicKey []byte) bool {
	return Subtractive.Verify(message, signature, publicKey)
}

// Sign produces a 64-byte signature over message with a 64-byte secret key.
// The nonce scalar is drawn fresh from crypto/rand on every call; reusing a
// nonce across two signatures under the same key leaks the private scalar.
func (sc Scheme) Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeySize {
		return nil, ErrInvalidInput
	}
	priv := ristretto255.NewScalar()
	if err := priv.Decode(secretKey[:32]); err != nil {
		return nil, ErrDecoding
	}
	publicKey := secretKey[32:]

	var wide [64]byte
	if _, err := io.ReadFull(rand.Reader, wide[:]); err != nil {
		return nil, err
	}
	k := ristretto255.NewScalar().FromUniformBytes(wide[:])
	commitment := ristretto255.NewElement().ScalarBaseMult(k).Encode(make([]byte, 0, 32))
	e := challenge(commitment, publicKey, message)

	switch sc {
	case Subtractive:
		s := ristretto255.NewScalar().Subtract(k, ristretto255.NewScalar().Multiply(e, priv))
		sig := s.Encode(make([]byte, 0, SignatureSize))
		return e.Encode(sig), nil
	case Additive:
		s := ristretto255.NewScalar().Add(k, ristretto255.NewScalar().Multiply(e, priv))
		sig := append(make([]byte, 0, SignatureSize), commitment...)
		return s.Encode(sig), nil
	default:
		return nil, ErrInvalidInput
	}
}

// Verify reports whether signature is valid for message under publicKey.
// It is total over adversarial input: wrong lengths, non-canonical point or
// scalar encodings, and out-of-range scalars all yield false, never a
// panic.
func (sc Scheme) Verify(message, signature, publicKey []byte) bool {
	if len(signature) != SignatureSize || len(publicKey) != PublicKeySize {
		return false
	}
	pub := ristretto255.NewElement()
	if err := pub.Decode(publicKey); err != nil {
		return false
	}

	switch sc {
	case Subtractive:
		s := ristretto255.NewScalar()
		e := ristretto255.NewScalar()
		if s.Decode(signature[:32]) != nil || e.Decode(signature[32:]) != nil {
			return false
		}
		// R' = s*G + e*P equals the signer's commitment when s = k - e*sk.
		commitment := ristretto255.NewElement().Add(
			ristretto255.NewElement().ScalarBaseMult(s),
			ristretto255.NewElement().ScalarMult(e, pub),
		)
		return challenge(commitment.Encode(make([]byte, 0, 32)), publicKey, message).Equal(e) == 1
	case Additive:
		commitment := ristretto255.NewElement()
		s := ristretto255.NewScalar()
		if commitment.Decode(signature[:32]) != nil || s.Decode(signature[32:]) != nil {
			return false
		}
		e := challenge(signature[:32], publicKey, message)
		lhs := ristretto255.NewElement().ScalarBaseMult(s)
		rhs := ristretto255.NewElement().Add(commitment, ristretto255.NewElement().ScalarMult(e, pub))
		return lhs.Equal(rhs) == 1
	default:
		return false
	}
}

// challenge computes e = hashToScalar(Hash(R || publicKey || message)).
func challenge(commitment, publicKey, message []byte) *ristretto255.Scalar {
	return hashToScalar(digest.Hash(commitment, publicKey, message))
}

// hashToScalar expands input with SHAKE256 to 64 uniform bytes and maps
// them to a scalar mod the group order.
func hashToScalar(input []byte) *ristretto255.Scalar {
	var wide [64]byte
	sha3.ShakeSum256(wide[:], input)
	return ristretto255.NewScalar().FromUniformBytes(wide[:])
}
