package codec

import (
	"testing"

	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/require"
)

// reflected goes through the XDR fallback.
type reflected struct {
	Height uint64
	Name   string
	Data   []byte
}

// scaled implements the scale interfaces.
type scaled [8]byte

func (s *scaled) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, s[:])
}

func (s *scaled) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, s[:])
}

func TestXDRFallbackRoundTrip(t *testing.T) {
	in := reflected{Height: 42, Name: "genesis", Data: []byte{1, 2, 3}}
	buf, err := Encode(&in)
	require.NoError(t, err)

	var out reflected
	require.NoError(t, Decode(buf, &out))
	require.Equal(t, in, out)
}

func TestScaleRoundTrip(t *testing.T) {
	in := scaled{1, 2, 3, 4, 5, 6, 7, 8}
	buf, err := Encode(&in)
	require.NoError(t, err)
	// scale byte arrays have no framing
	require.Len(t, buf, 8)

	var out scaled
	require.NoError(t, Decode(buf, &out))
	require.Equal(t, in, out)
}

func TestEncodeSlice(t *testing.T) {
	in := []scaled{{1}, {2}, {3}}
	buf, err := EncodeSlice(in)
	require.NoError(t, err)

	out, err := DecodeSlice[scaled](buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDeterministic(t *testing.T) {
	in := reflected{Height: 7, Name: "block"}
	a, err := Encode(&in)
	require.NoError(t, err)
	b, err := Encode(&in)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
