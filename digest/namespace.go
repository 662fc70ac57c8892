package digest

// Namespace derives the first count entries of the namespace vector for
// name: one independent 32-byte domain-separation salt per id 0..count-1.
// Each entry is Hash(Hash(name) || id) with id encoded as a single byte, so
// count may not exceed 256.
func Namespace(name []byte, count int) ([][]byte, error) {
	if count < 0 || count > 256 {
		return nil, ErrInvalidInput
	}
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i
	}
	return NamespaceAt(name, ids)
}

// NamespaceAt derives namespace entries at the given ids, in the given
// order. Entries are independent: any subset, in any order, matches what a
// full-range derivation would produce at those positions. Ids must fit in a
// single byte (0-255); anything else fails with ErrInvalidInput before any
// hashing occurs.
func NamespaceAt(name []byte, ids []int) ([][]byte, error) {
	for _, id := range ids {
		if id < 0 || id > 255 {
			return nil, ErrInvalidInput
		}
	}
	base := Hash(name)
	out := make([][]byte, len(ids))
	for i, id := range ids {
		out[i] = Hash(base, []byte{byte(id)})
	}
	return out, nil
}
