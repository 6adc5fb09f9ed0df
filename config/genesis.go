package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/config/util"
	"github.com/slingshotlabs/go-slingshot/hash"
)

// ExtraDataLen limits the size of the genesis extra data.
const ExtraDataLen = 255

// GenesisConfig contains immutable parameters of the genesis block.
// Changing any of them produces a different chain.
type GenesisConfig struct {
	GenesisTime string `mapstructure:"genesis-time"`
	ExtraData   string `mapstructure:"genesis-extra-data"`

	// Records is the number of records minted for the node account in the
	// genesis block.
	Records uint32 `mapstructure:"genesis-records"`
	// RecordValue is the value of every genesis record, in gates.
	RecordValue uint64 `mapstructure:"genesis-record-value"`
	// RecordData is an optional base64 encoded payload attached to every
	// genesis record.
	RecordData util.Base64Enc `mapstructure:"genesis-record-data"`
}

// GenesisID computes the chain identifier from the genesis time and extra
// data. It seeds the previous-hash link of the genesis block.
func (g *GenesisConfig) GenesisID() types.Hash32 {
	hh := hash.New()
	hh.Write([]byte(g.GenesisTime))
	hh.Write([]byte(g.ExtraData))
	return types.BytesToHash(hh.Sum(nil))
}

// Validate checks that genesis parameters are consistent.
func (g *GenesisConfig) Validate() error {
	if len(g.ExtraData) > ExtraDataLen {
		return fmt.Errorf("extra-data is longer than %d symbols: %s", ExtraDataLen, g.ExtraData)
	}
	if g.Records == 0 {
		return errors.New("at least one genesis record is required")
	}
	if g.RecordValue == 0 {
		return errors.New("genesis records must carry a non-zero value")
	}
	if _, err := time.Parse(time.RFC3339, g.GenesisTime); err != nil {
		return fmt.Errorf("genesis time %s is not RFC3339: %w", g.GenesisTime, err)
	}
	return nil
}

// DefaultGenesisConfig is the genesis configuration of the local development
// chain. It is fixed so that every fresh node derives the same chain.
func DefaultGenesisConfig() GenesisConfig {
	return GenesisConfig{
		GenesisTime: "2022-11-03T00:00:00+00:00",
		ExtraData:   "testnet3",
		Records:     4,
		RecordValue: 1_000_000_000_000,
	}
}

// DefaultTestGenesisConfig returns genesis parameters for tests, with small
// record values so overflow paths stay reachable.
func DefaultTestGenesisConfig() GenesisConfig {
	cfg := DefaultGenesisConfig()
	cfg.ExtraData = "test"
	cfg.Records = 2
	cfg.RecordValue = 1_000
	return cfg
}
