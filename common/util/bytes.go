package util

import (
	"encoding/binary"
)

// Uint64ToBytes returns the big endian encoding of i. Big endian keeps
// numeric order under the lexicographic key iteration of the database.
func Uint64ToBytes(i uint64) []byte {
	a := make([]byte, 8)
	binary.BigEndian.PutUint64(a, i)
	return a
}

// BytesToUint64 decodes a big endian uint64.
func BytesToUint64(i []byte) uint64 { return binary.BigEndian.Uint64(i) }
