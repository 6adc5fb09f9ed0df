// Package signing wraps the ed25519 account keys used to sign transactions.
package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

// Domain separates signatures over different object kinds.
type Domain byte

const (
	// TRANSACTION is the domain of transaction signatures, the only signed
	// objects on this chain.
	TRANSACTION Domain = 0
)

// String returns the string representation of a domain.
func (d Domain) String() string {
	switch d {
	case TRANSACTION:
		return "TRANSACTION"
	default:
		return "UNKNOWN"
	}
}

type edSignerOption struct {
	priv   PrivateKey
	prefix []byte
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrefix sets the prefix used by EdSigner. This usually is the genesis ID.
func WithPrefix(prefix []byte) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.prefix = prefix
		return nil
	}
}

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}

		if len(priv) != ed25519.PrivateKeySize {
			return errors.New("could not create EdSigner: invalid key length")
		}

		keyPair := ed25519.NewKeyFromSeed(priv[:32])
		if !bytes.Equal(keyPair[32:], priv.Public().(ed25519.PublicKey)) {
			return errors.New("private and public do not match")
		}

		opt.priv = priv
		return nil
	}
}

// HexToPrivateKey decodes a hex encoded private key, with or without a 0x
// prefix.
func HexToPrivateKey(s string) (PrivateKey, error) {
	if len(s) > 1 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if n := hex.DecodedLen(len(s)); n != PrivateKeySize {
		return nil, fmt.Errorf("invalid key size %d/%d", n, PrivateKeySize)
	}
	dst := make([]byte, PrivateKeySize)
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return nil, fmt.Errorf("decoding private key: %w", err)
	}

	priv := PrivateKey(dst)
	keyPair := ed25519.NewKeyFromSeed(priv[:32])
	if !bytes.Equal(keyPair[32:], priv.Public().(ed25519.PublicKey)) {
		return nil, errors.New("private and public do not match")
	}
	return priv, nil
}

// EdSigner represents an ED25519 signer.
type EdSigner struct {
	priv PrivateKey

	prefix []byte
}

// NewEdSigner returns an auto-generated ed signer.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("could not generate key pair: %w", err)
		}
		cfg.priv = priv
	}
	sig := &EdSigner{
		priv:   cfg.priv,
		prefix: cfg.prefix,
	}
	return sig, nil
}

// Sign signs the provided message.
func (es *EdSigner) Sign(d Domain, m []byte) types.EdSignature {
	msg := make([]byte, 0, len(es.prefix)+1+len(m))
	msg = append(msg, es.prefix...)
	msg = append(msg, byte(d))
	msg = append(msg, m...)

	return *(*[types.EdSignatureSize]byte)(ed25519.Sign(es.priv, msg))
}

// Address returns the account address of the signer.
func (es *EdSigner) Address() types.Address {
	return types.GenerateAddress(es.PublicKey().Bytes())
}

// PublicKey returns the public key of the signer.
func (es *EdSigner) PublicKey() *PublicKey {
	return NewPublicKey(es.priv.Public().(ed25519.PublicKey))
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

func (es *EdSigner) String() string {
	return es.Address().String()
}
