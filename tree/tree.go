// Package tree implements the domain-separated hashers for hypercore's
// flat Merkle tree: leaf, parent, and root digests plus the signable
// payload derived from a root digest. Tree construction and proof plumbing
// belong to the append-log layer; this package only defines the byte-exact
// digest inputs.
package tree

import (
	"errors"

	"github.com/lukeburns/hypercore-crypto/digest"
	"github.com/lukeburns/hypercore-crypto/internal/enc"
)

// Type tags prepended to every digest input. A valid leaf, parent, and root
// digest can therefore never collide with one another, which blocks the
// generic Merkle second-preimage attack where leaf content is crafted to
// look like an internal node.
const (
	TagLeaf   byte = 0x00
	TagParent byte = 0x01
	TagRoot   byte = 0x02
)

// ErrInvalidInput reports a node whose digest is not exactly 32 bytes
var ErrInvalidInput = errors.New("tree: invalid input")

// Node is a caller-supplied tree node: its position in the flat tree
// enumeration, the total leaf bytes covered by its subtree, and its digest.
type Node struct {
	Index uint64
	Size  uint64
	Hash  []byte
}

// LeafHash digests a leaf's content together with its explicit length. The
// length prefix removes any ambiguity between adjacent fields, so two
// distinct inputs never produce the same digest preimage.
func LeafHash(data []byte) []byte {
	return digest.Hash([]byte{TagLeaf}, enc.Uint64(uint64(len(data))), data)
}

// ParentHash combines two sibling nodes. The node with the smaller index is
// hashed first regardless of argument order, so the result is identical for
// (a, b) and (b, a). The combined size commits the subtree's cumulative
// leaf-byte extent.
func ParentHash(a, b Node) ([]byte, error) {
	if len(a.Hash) != digest.Size || len(b.Hash) != digest.Size {
		return nil, ErrInvalidInput
	}
	if a.Index > b.Index {
		a, b = b, a
	}
	return digest.Hash([]byte{TagParent}, enc.Uint64(a.Size+b.Size), a.Hash, b.Hash), nil
}

// RootHash digests the current set of subtree roots in caller-supplied
// order: hash || index || size per root. The order is not normalized here;
// callers needing cross-implementation determinism must pass roots in
// canonical ascending-index order themselves.
func RootHash(roots []Node) ([]byte, error) {
	chunks := make([][]byte, 0, 1+2*len(roots))
	chunks = append(chunks, []byte{TagRoot})
	for _, r := range roots {
		if len(r.Hash) != digest.Size {
			return nil, ErrInvalidInput
		}
		buf := make([]byte, 0, 2*enc.Uint64Size)
		buf = enc.AppendUint64(buf, r.Index)
		buf = enc.AppendUint64(buf, r.Size)
		chunks = append(chunks, r.Hash, buf)
	}
	return digest.Hash(chunks...), nil
}

// Signable builds the payload the log layer signs: the authenticated tree
// hash followed by the log length.
func Signable(treeHash []byte, length uint64) ([]byte, error) {
	if len(treeHash) != digest.Size {
		return nil, ErrInvalidInput
	}
	out := make([]byte, 0, digest.Size+enc.Uint64Size)
	out = append(out, treeHash...)
	return enc.AppendUint64(out, length), nil
}
