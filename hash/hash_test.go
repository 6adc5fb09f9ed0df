package hash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumMatchesStdlib(t *testing.T) {
	data := []byte("slingshot genesis")
	require.Equal(t, sha256.Sum256(data), Sum(data))
	require.Equal(t, Size, len(Sum(data)))
}

func TestNewStreaming(t *testing.T) {
	h := New()
	h.Write([]byte("sling"))
	h.Write([]byte("shot"))
	var streamed [Size]byte
	h.Sum(streamed[:0])
	require.Equal(t, Sum([]byte("slingshot")), streamed)
}
