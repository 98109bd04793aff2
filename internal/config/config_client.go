package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the blob integrity key shared with the server.
	HashKey  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds the settings of the sync server connection.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Retries        int
}

// ClientDB contains the local vault DSN.
type ClientDB struct {
	DSN string
}

// ClientStorage groups the local persistence settings.
type ClientStorage struct {
	DB ClientDB
	// SessionPath is the JSON file holding the saved login.
	SessionPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// DataDir returns the directory holding the client's vault, session and
// log by default: $XDG_CONFIG_HOME/envkeeper or its platform equivalent.
func DataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".envkeeper"
	}
	return filepath.Join(base, "envkeeper")
}

func clientDefaults(dataDir string) *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  filepath.Join(dataDir, "envkeeper.log"),
		},
		Storage: Storage{
			DB:      DB{DSN: filepath.Join(dataDir, "vault.db")},
			Session: Session{Path: filepath.Join(dataDir, "session.json")},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://" + DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			Retries:        2,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
	}
}

// GetClientConfig builds the client configuration from defaults, the
// optional JSON file, the environment and overrides (typically the values
// of CLI flags; nil is allowed).
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(clientDefaults(DataDir())).
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Retries:        cfg.Adapter.Retries,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			SessionPath: cfg.Storage.Session.Path,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
