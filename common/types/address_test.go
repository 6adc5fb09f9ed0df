package types_test

import (
	"strings"
	"testing"

	"github.com/cosmos/btcutil/bech32"
	"github.com/stretchr/testify/require"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

func encodeRaw(t *testing.T, hrp string, data []byte) string {
	t.Helper()
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	require.NoError(t, err)
	s, err := bech32.Encode(hrp, converted)
	require.NoError(t, err)
	return s
}

func TestAddressRoundTrip(t *testing.T) {
	pub := make([]byte, 32)
	for i := range pub {
		pub[i] = byte(i + 1)
	}
	addr := types.GenerateAddress(pub)
	require.False(t, addr.IsEmpty())

	s := addr.String()
	require.True(t, strings.HasPrefix(s, "sling1"), s)

	parsed, err := types.StringToAddress(s)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)
}

func TestStringToAddressErrors(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		_, err := types.StringToAddress("abc123")
		require.ErrorContains(t, err, types.ErrDecodeBech32.Error())
	})
	t.Run("wrong length", func(t *testing.T) {
		short := encodeRaw(t, "sling", make([]byte, 10))
		_, err := types.StringToAddress(short)
		require.ErrorIs(t, err, types.ErrWrongAddressLength)
	})
	t.Run("wrong network", func(t *testing.T) {
		other := encodeRaw(t, "other", make([]byte, types.AddressLength))
		_, err := types.StringToAddress(other)
		require.ErrorIs(t, err, types.ErrUnsupportedNetwork)
	})
	t.Run("reserved space", func(t *testing.T) {
		raw := make([]byte, types.AddressLength)
		raw[0] = 1
		bad := encodeRaw(t, "sling", raw)
		_, err := types.StringToAddress(bad)
		require.ErrorIs(t, err, types.ErrMissingReservedSpace)
	})
}

func TestGenerateAddressTruncatesKey(t *testing.T) {
	long := make([]byte, 64)
	long[63] = 7
	addr := types.GenerateAddress(long)
	// the reserved prefix stays zero
	for i := 0; i < types.AddressReservedSpace; i++ {
		require.Zero(t, addr.Bytes()[i])
	}
	require.Equal(t, byte(7), addr.Bytes()[types.AddressLength-1])
}
