// Package box implements sealed messages to a hypercore public key: an
// ephemeral ristretto255 Diffie-Hellman exchange derives a 32-byte key, and
// the message is masked with a keystream cycling over that key. Open is the
// exact inverse of Seal. The mask carries no authenticator; callers needing
// integrity sign the plaintext separately.
package box

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/lukeburns/hypercore-crypto/digest"
	"github.com/lukeburns/hypercore-crypto/schnorr"
)

// Overhead is the number of bytes Seal prepends: the ephemeral public key
const Overhead = 32

var (
	// ErrInvalidInput reports a key or sealed buffer of the wrong length
	ErrInvalidInput = errors.New("box: invalid input")
	// ErrDecoding reports a non-canonical point or scalar encoding
	ErrDecoding = errors.New("box: malformed encoding")
)

// Seal encrypts message to recipientPublicKey under a fresh ephemeral key.
// The ephemeral public key is prepended so the recipient can rederive the
// shared secret; sealing the same message twice yields distinct outputs.
func Seal(message, recipientPublicKey []byte) ([]byte, error) {
	if len(recipientPublicKey) != schnorr.PublicKeySize {
		return nil, ErrInvalidInput
	}
	recipient := ristretto255.NewElement()
	if err := recipient.Decode(recipientPublicKey); err != nil {
		return nil, ErrDecoding
	}

	var wide [64]byte
	if _, err := io.ReadFull(rand.Reader, wide[:]); err != nil {
		return nil, err
	}
	eph := ristretto255.NewScalar().FromUniformBytes(wide[:])
	out := ristretto255.NewElement().ScalarBaseMult(eph).Encode(make([]byte, 0, Overhead+len(message)))

	return mask(out, message, sharedKey(eph, recipient)), nil
}

// Open decrypts a sealed message with the recipient's 64-byte secret key.
func Open(sealed, secretKey []byte) ([]byte, error) {
	if len(sealed) < Overhead || len(secretKey) != schnorr.SecretKeySize {
		return nil, ErrInvalidInput
	}
	priv := ristretto255.NewScalar()
	if err := priv.Decode(secretKey[:32]); err != nil {
		return nil, ErrDecoding
	}
	ephPublic := ristretto255.NewElement()
	if err := ephPublic.Decode(sealed[:Overhead]); err != nil {
		return nil, ErrDecoding
	}
	key := sharedKey(priv, ephPublic)
	return mask(make([]byte, 0, len(sealed)-Overhead), sealed[Overhead:], key), nil
}

// sharedKey hashes the Diffie-Hellman point scalar*point into the mask key.
func sharedKey(scalar *ristretto255.Scalar, point *ristretto255.Element) []byte {
	shared := ristretto255.NewElement().ScalarMult(scalar, point)
	return digest.Hash(shared.Encode(make([]byte, 0, 32)))
}

// mask appends data XORed with a keystream cycling over key to out.
func mask(out, data, key []byte) []byte {
	for i, b := range data {
		out = append(out, b^key[i%len(key)])
	}
	return out
}
