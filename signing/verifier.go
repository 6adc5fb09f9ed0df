package signing

import (
	"crypto/ed25519"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

type edVerifierOption struct {
	prefix []byte
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption) error

// WithVerifierPrefix sets the prefix used by EdVerifier. This usually is the
// genesis ID.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) error {
		opts.prefix = prefix
		return nil
	}
}

// EdVerifier verifies signatures under the chain prefix.
type EdVerifier struct {
	prefix []byte
}

// NewEdVerifier returns a verifier configured by the given options.
func NewEdVerifier(opts ...VerifierOptionFunc) (*EdVerifier, error) {
	cfg := &edVerifierOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	verifier := &EdVerifier{
		prefix: cfg.prefix,
	}
	return verifier, nil
}

// Verify verifies that a signature matches public key and message.
func (es *EdVerifier) Verify(d Domain, pub []byte, m []byte, sig types.EdSignature) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	msg := make([]byte, 0, len(es.prefix)+1+len(m))
	msg = append(msg, es.prefix...)
	msg = append(msg, byte(d))
	msg = append(msg, m...)
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig[:])
}
