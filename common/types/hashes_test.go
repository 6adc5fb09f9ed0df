package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash32(t *testing.T) {
	h := CalcHash32([]byte("slingshot"))
	require.False(t, h.IsEmpty())
	require.Equal(t, h, CalcHash32([]byte("slingshot")))
	require.NotEqual(t, h, CalcHash32([]byte("slingshots")))

	require.Len(t, h.Hex(), 2+2*Hash32Length)
	require.Equal(t, h.Hex(), h.String())
	require.Len(t, h.ShortString(), 10)

	require.Equal(t, h, BytesToHash(h.Bytes()))
}

func TestHash32Text(t *testing.T) {
	h := CalcHash32([]byte("abc"))
	text, err := h.MarshalText()
	require.NoError(t, err)

	var out Hash32
	require.NoError(t, out.UnmarshalText(text))
	require.Equal(t, h, out)

	require.Error(t, out.UnmarshalText([]byte("0xdeadbeef")), "wrong length")
}

func TestCalcAggregateHash32(t *testing.T) {
	base := CalcHash32([]byte("state"))
	a := CalcAggregateHash32(base, []byte("one"))
	b := CalcAggregateHash32(base, []byte("two"))
	require.NotEqual(t, a, b)
	require.Equal(t, a, CalcAggregateHash32(base, []byte("one")))
	// order matters
	require.NotEqual(t, CalcAggregateHash32(a, []byte("two")), CalcAggregateHash32(b, []byte("one")))
}

func TestShorten(t *testing.T) {
	require.Equal(t, "abc", Shorten("abc", 5))
	require.Equal(t, "abcde", Shorten("abcdefgh", 5))
}
