package signing

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEdSignerFromBuffer(t *testing.T) {
	b := []byte{1, 2, 3}
	_, err := NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "invalid key length")

	b = make([]byte, 64)
	_, err = NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Sign(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	m := make([]byte, 4)
	rand.Read(m)
	sig := ed.Sign(TRANSACTION, m)
	signed := make([]byte, len(m)+1)
	signed[0] = byte(TRANSACTION)
	copy(signed[1:], m)

	ok := ed25519.Verify(ed.PublicKey().Bytes(), signed, sig[:])
	require.Truef(t, ok, "failed to verify message %x with sig %x", m, sig)
}

func TestEdSigner_SignWithPrefix(t *testing.T) {
	ed, err := NewEdSigner(WithPrefix([]byte("chain")))
	require.NoError(t, err)

	m := []byte("pour")
	sig := ed.Sign(TRANSACTION, m)

	verifier, err := NewEdVerifier(WithVerifierPrefix([]byte("chain")))
	require.NoError(t, err)
	require.True(t, verifier.Verify(TRANSACTION, ed.PublicKey().Bytes(), m, sig))

	wrongChain, err := NewEdVerifier(WithVerifierPrefix([]byte("other")))
	require.NoError(t, err)
	require.False(t, wrongChain.Verify(TRANSACTION, ed.PublicKey().Bytes(), m, sig))
}

func TestEdSigner_ValidKeyEncoding(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	require.Equal(t, []byte(ed.priv[32:]), ed.PublicKey().Bytes())
}

func TestEdSigner_WithPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	key := ed.PrivateKey()
	ed2, err := NewEdSigner(WithPrivateKey(key))
	require.NoError(t, err)
	require.Equal(t, ed.priv, ed2.priv)
	require.Equal(t, ed.PublicKey(), ed2.PublicKey())
}

func TestHexToPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)
	encoded := hex.EncodeToString(ed.PrivateKey())

	for _, s := range []string{encoded, "0x" + encoded} {
		priv, err := HexToPrivateKey(s)
		require.NoError(t, err)
		require.Equal(t, ed.PrivateKey(), priv)
	}

	_, err = HexToPrivateKey("abcd")
	require.ErrorContains(t, err, "invalid key size")

	_, err = HexToPrivateKey(strings.Repeat("00", PrivateKeySize))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Address(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)
	addr := ed.Address()
	require.False(t, addr.IsEmpty())
	require.Equal(t, addr, ed.Address(), "address derivation is stable")
	require.Equal(t, addr.String(), ed.String())
}

func TestPublicKey_ShortString(t *testing.T) {
	pub := NewPublicKey([]byte{1, 2, 3})
	require.Equal(t, "010203", pub.String())
	require.Equal(t, "01020", pub.ShortString())

	pub = NewPublicKey([]byte{1, 2})
	require.Equal(t, pub.String(), pub.ShortString())
}
