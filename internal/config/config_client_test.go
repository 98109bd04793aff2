package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://"+DefaultServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, "vault.db", filepath.Base(cfg.Storage.DB.DSN))
	assert.Equal(t, "session.json", filepath.Base(cfg.Storage.SessionPath))
	assert.Empty(t, cfg.App.HashKey)
}

func TestGetClientConfig_OverridesWin(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_ADDRESS", "http://env:1")

	cfg, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://flag:2"},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Workers: Workers{SyncInterval: time.Minute},
	})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestGetClientConfig_EnvBeatsJSON(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://json:1"
	payload.App.HashKey = "json-hash"
	t.Setenv("CONFIG", writeTempJSONConfig(t, payload))
	t.Setenv("ADAPTER_ADDRESS", "http://env:1")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "json-hash", cfg.App.HashKey)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "vault.db"}, SessionPath: "s.json"},
			Workers: ClientWorkers{SyncInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"empty session", func(c *ClientConfig) { c.Storage.SessionPath = "" }, ErrInvalidStorageConfigs},
		{"no address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"no interval", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
