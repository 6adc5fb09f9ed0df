package server

import "time"

// Config is the REST API configuration.
type Config struct {
	// Listen is the address the API listens on.
	Listen string `mapstructure:"rest-listener"`
	// MaxBlockRange caps the number of blocks a single blocks query returns.
	MaxBlockRange uint64 `mapstructure:"max-block-range"`
	// PourInterval is the minimum average spacing between faucet pours.
	PourInterval time.Duration `mapstructure:"pour-interval"`
	// PourBurst is the number of pours allowed to exceed the interval.
	PourBurst int `mapstructure:"pour-burst"`
}

// DefaultConfig returns the default REST API configuration.
func DefaultConfig() Config {
	return Config{
		Listen:        "127.0.0.1:4180",
		MaxBlockRange: 50,
		PourInterval:  time.Second,
		PourBurst:     16,
	}
}

// DefaultTestConfig binds to an ephemeral port.
func DefaultTestConfig() Config {
	cfg := DefaultConfig()
	cfg.Listen = "127.0.0.1:0"
	return cfg
}
