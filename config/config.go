// Package config contains slingshot node and client configuration definitions
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/spf13/viper"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/api/node/server"
	"github.com/slingshotlabs/go-slingshot/filesystem"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/producer"
)

const (
	defaultConfigFileName = "./config.toml"
	defaultDataDirName    = "slingshot"
)

var (
	defaultHomeDir = filesystem.GetUserHomeDirectory()
	defaultDataDir = filepath.Join(defaultHomeDir, "."+defaultDataDirName)
)

// Config defines the top level configuration for a slingshot node
type Config struct {
	BaseConfig `mapstructure:"main"`
	Genesis    GenesisConfig   `mapstructure:"genesis"`
	Database   DBConfig        `mapstructure:"database"`
	API        server.Config   `mapstructure:"api"`
	Client     client.Config   `mapstructure:"client"`
	Producer   producer.Config `mapstructure:"producer"`
	LOGGING    LoggerConfig    `mapstructure:"logging"`
}

// DataDir returns the absolute path to use for the node's data. This is the
// tilde-expanded path given in the config.
func (cfg *Config) DataDir() string {
	return filesystem.GetCanonicalPath(cfg.DataDirParent)
}

// LedgerDBPath returns the on-disk location of the ledger database.
func (cfg *Config) LedgerDBPath() string {
	return filepath.Join(cfg.DataDir(), "ledger")
}

// BaseConfig defines the default configuration options for slingshot app
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`

	ConfigFile string `mapstructure:"config"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`

	// NetworkHRP is the human readable prefix of account addresses.
	NetworkHRP string `mapstructure:"network-hrp"`

	ProfilerName string `mapstructure:"profiler-name"`
	ProfilerURL  string `mapstructure:"profiler-url"`

	// PrivateKey is a hex encoded account private key the node starts with.
	// Exactly one of PrivateKey and KeyDir must be set.
	PrivateKey string `mapstructure:"key"`
	// KeyDir is the path to a program directory whose manifest carries the
	// development private key.
	KeyDir string `mapstructure:"path"`

	// FileLock is the path to a lock file that prevents two nodes from
	// sharing the same data directory.
	FileLock string `mapstructure:"filelock"`
}

// DBConfig controls the ledger database backend.
type DBConfig struct {
	// InMemory keeps the whole ledger in memory. This is the default for a
	// development chain, state is dropped when the node exits.
	InMemory bool `mapstructure:"in-memory"`
}

// DefaultConfig returns the default configuration for a slingshot node
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Genesis:    DefaultGenesisConfig(),
		Database:   defaultDBConfig(),
		API:        server.DefaultConfig(),
		Client:     client.DefaultConfig(),
		Producer:   producer.DefaultConfig(),
		LOGGING:    defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		DataDirParent: defaultDataDir,
		ConfigFile:    defaultConfigFileName,
		MetricsPort:   1010,
		NetworkHRP:    "sling",
		FileLock:      filepath.Join(os.TempDir(), "slingshot.lock"),
	}
}

func defaultDBConfig() DBConfig {
	return DBConfig{
		InMemory: true,
	}
}

// DefaultTestConfig returns the default config for tests.
func DefaultTestConfig() Config {
	conf := DefaultConfig()
	conf.BaseConfig = defaultTestConfig()
	conf.Genesis = DefaultTestGenesisConfig()
	conf.API = server.DefaultTestConfig()
	conf.Producer = producer.DefaultTestConfig()
	return conf
}

func defaultTestConfig() BaseConfig {
	conf := defaultBaseConfig()
	conf.MetricsPort += 10000
	conf.DataDirParent = os.TempDir()
	return conf
}

// LoadConfig load the config file. If the given file cannot be read the
// default config file location is tried before giving up.
func LoadConfig(fileLocation string, vip *viper.Viper) (err error) {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}

	vip.SetConfigFile(fileLocation)
	err = vip.ReadInConfig()
	if err != nil {
		if fileLocation != defaultConfigFileName {
			log.Warning("failed loading config from %v trying %v. error %v", fileLocation, defaultConfigFileName, err)
			vip.SetConfigFile(defaultConfigFileName)
			err = vip.ReadInConfig()
		}
		// we change err so check again
		if err != nil && reflect.TypeOf(viper.ConfigFileNotFoundError{}) != reflect.TypeOf(err) {
			return fmt.Errorf("failed to read config file %v", err)
		}
	}

	return nil
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}
