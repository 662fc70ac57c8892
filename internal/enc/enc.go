package enc

import "encoding/binary"

// Uint64Size is the fixed width of an encoded unsigned integer
const Uint64Size = 8

// AppendUint64 appends n as a fixed 8-byte little-endian unsigned integer
func AppendUint64(b []byte, n uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, n)
}

// Uint64 encodes n as a fixed 8-byte little-endian unsigned integer
func Uint64(n uint64) []byte {
	return AppendUint64(make([]byte, 0, Uint64Size), n)
}
