package client

import "time"

// Config configures the REST client used by the command line verbs.
type Config struct {
	// Endpoint is the base URL of the node's REST API.
	Endpoint string `mapstructure:"endpoint"`

	RetryMax     int           `mapstructure:"retry-max"`
	RetryWaitMin time.Duration `mapstructure:"retry-wait-min"`
	RetryWaitMax time.Duration `mapstructure:"retry-wait-max"`

	// Timeout bounds a single request attempt.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultConfig returns the default configuration, pointing at a node on the
// local host.
func DefaultConfig() Config {
	return Config{
		Endpoint:     "http://127.0.0.1:4180",
		RetryMax:     3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: time.Second,
		Timeout:      10 * time.Second,
	}
}
