package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/hash"
	"github.com/slingshotlabs/go-slingshot/log"
)

const (
	// Hash32Length is the expected length of the hash, one hash.Sum output.
	Hash32Length = hash.Size
)

// Hash32 represents the 32-byte hash of arbitrary data.
type Hash32 [Hash32Length]byte

// EmptyHash32 is a canonical all-zero Hash32.
var EmptyHash32 Hash32

// CalcHash32 returns the 32-byte hash of the given data.
func CalcHash32(data []byte) Hash32 {
	return hash.Sum(data)
}

// CalcAggregateHash32 returns the 32-byte hash of the given data aggregated
// with previous hash h.
func CalcAggregateHash32(h Hash32, data []byte) Hash32 {
	hasher := hash.New()
	hasher.Write(h.Bytes())
	hasher.Write(data) // this never returns an error: https://golang.org/pkg/hash/#Hash
	var res Hash32
	hasher.Sum(res[:0])
	return res
}

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash32 {
	var h Hash32
	h.SetBytes(b)
	return h
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return util.Encode(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 10 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	l := len(h.Hex())
	return Shorten(h.Hex()[util.Min(2, l):], 10)
}

// Shorten shortens a string to a specified length.
func Shorten(s string, maxlen int) string {
	l := len(s)
	return s[:util.Min(maxlen, l)]
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted as is,
// without going through the stringer interface used for logging.
func (h Hash32) Format(s fmt.State, c rune) {
	_, _ = fmt.Fprintf(s, "%"+string(c), h[:])
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	return util.UnmarshalFixedText("Hash", input, h[:])
}

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash32) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-32:]
	}

	copy(h[32-len(b):], b)
}

// IsEmpty reports whether the hash is all zero.
func (h Hash32) IsEmpty() bool {
	return h == EmptyHash32
}

// Field returns a log field. Implements the LoggableField interface.
func (h Hash32) Field() log.Field { return log.String("hash", h.ShortString()) }
