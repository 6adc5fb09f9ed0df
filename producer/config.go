package producer

import "time"

// Config is the block producer configuration.
type Config struct {
	// RoundTime is the target cadence between blocks. The time a round
	// spends sealing is deducted from the following wait.
	RoundTime time.Duration `mapstructure:"round-time"`
}

// DefaultConfig returns the default producer configuration.
func DefaultConfig() Config {
	return Config{
		RoundTime: 15 * time.Second,
	}
}

// DefaultTestConfig returns the producer configuration for tests.
func DefaultTestConfig() Config {
	return Config{
		RoundTime: 50 * time.Millisecond,
	}
}
