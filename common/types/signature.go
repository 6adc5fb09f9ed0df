package types

import (
	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/common/util"
)

// EdSignatureSize is the size of an ed25519 signature.
const EdSignatureSize = 64

// EdSignature is an ed25519 signature over the canonical bytes of a
// transaction.
type EdSignature [EdSignatureSize]byte

// EmptyEdSignature is a canonical all-zero signature.
var EmptyEdSignature EdSignature

// SignatureFromBytes copies bs into a signature.
func SignatureFromBytes(bs []byte) (sig EdSignature) {
	copy(sig[:], bs)
	return
}

// Bytes returns the signature's bytes.
func (sig EdSignature) Bytes() []byte {
	return sig[:]
}

// String returns a hex representation, for logging purposes.
func (sig EdSignature) String() string {
	return Shorten(util.Encode(sig[:]), 12)
}

// IsEmpty reports whether the signature is all zero.
func (sig EdSignature) IsEmpty() bool {
	return sig == EmptyEdSignature
}

// EncodeScale implements scale codec interface.
func (sig *EdSignature) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, sig[:])
}

// DecodeScale implements scale codec interface.
func (sig *EdSignature) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, sig[:])
}
