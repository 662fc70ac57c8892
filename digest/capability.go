package digest

var capabilityPrefix = []byte("hypercore capability")

// Capability derives the authorization token this side presents during a
// replication handshake, binding the core key to the first 32 bytes of the
// transmit nonce.
func Capability(key, txNonce []byte) ([]byte, error) {
	return capability(key, txNonce)
}

// RemoteCapability derives the token expected from the remote side, bound
// to the receive nonce. Both ends compute the same function over opposite
// halves of the handshake split.
func RemoteCapability(key, rxNonce []byte) ([]byte, error) {
	return capability(key, rxNonce)
}

func capability(key, nonce []byte) ([]byte, error) {
	if len(key) != Size || len(nonce) < Size {
		return nil, ErrInvalidInput
	}
	return Hash(capabilityPrefix, nonce[:Size], key), nil
}
