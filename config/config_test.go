package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// todo: test more
	vip := viper.New()
	err := LoadConfig(".asdasda", vip)
	// verify that after attempting to load a non-existent file, an attempt is made to load the default config
	assert.ErrorContains(t, err, "failed to read config file open ./config.toml")
}

func TestLoadConfigTOML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[main]
data-folder = "/tmp/slingtest"
metrics = true

[api]
rest-listener = "127.0.0.1:14180"

[genesis]
genesis-records = 7
`), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(file, vip))
	require.Equal(t, "/tmp/slingtest", vip.GetString("main.data-folder"))
	require.True(t, vip.GetBool("main.metrics"))
	require.Equal(t, "127.0.0.1:14180", vip.GetString("api.rest-listener"))
	require.Equal(t, 7, vip.GetInt("genesis.genesis-records"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Contains(t, cfg.DataDirParent, ".slingshot")
	require.Equal(t, "127.0.0.1:4180", cfg.API.Listen)
	require.True(t, cfg.Database.InMemory)
	require.Equal(t, filepath.Join(cfg.DataDir(), "ledger"), cfg.LedgerDBPath())
	require.NoError(t, cfg.Genesis.Validate())
}
