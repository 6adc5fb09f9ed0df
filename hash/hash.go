// Package hash is the canonical hash used for chain objects: block hashes,
// transaction IDs and the genesis ID. Record commitments use blake3, see
// common/types.
package hash

import "github.com/minio/sha256-simd"

const (
	// Size is an alias to minio sha256.Size (32 bytes).
	Size = sha256.Size
)

var (
	// New is an alias to minio sha256.New.
	New = sha256.New
	// Sum is an alias to minio sha256.Sum256.
	Sum = sha256.Sum256
)
