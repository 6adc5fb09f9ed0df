package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase64Enc(t *testing.T) {
	enc, err := Base64FromString("aGVsbG8=")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), enc.Bytes())

	text, err := enc.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "aGVsbG8=", string(text))

	_, err = Base64FromString("not base64!!!")
	require.Error(t, err)

	var zero Base64Enc
	require.Nil(t, zero.Bytes())
}
