// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the shared configuration tree. Both binaries load it;
// each one only reads the groups it needs.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env)
//   - env: variable name for scalar fields
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	// Server is only read by envkeeper-server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter describes how the client reaches the sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path of a JSON file merged below env
	// and flags. Env: CONFIG.
	JSONFilePath string `env:"CONFIG"`
}

// App holds keys, token parameters and logging settings.
type App struct {
	// PasswordHashKey keys the HMAC used to store account passwords.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an access token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey keys the integrity hash of uploaded blobs. Client and server
	// must agree on it; an empty key disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version overrides the build version reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Session Session `envPrefix:"SESSION_"`
}

// DB holds the database connection string.
//
// The server expects a PostgreSQL DSN. The client accepts a SQLite file
// path, ":memory:" for a throwaway in-memory vault, or a path ending in
// ".json" for the single-file backend.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds where the client persists its login.
type Session struct {
	// Env: STORAGE_SESSION_PATH
	Path string `env:"PATH"`
}

// Server holds the inbound HTTP settings of envkeeper-server.
type Server struct {
	// HTTPAddress is the listen address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server. A missing scheme
	// defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Retries is the number of retries for failed requests.
	// Env: ADAPTER_RETRIES
	Retries int `env:"RETRIES"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the client's background sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Defaults shared by both binaries.
const (
	DefaultTokenIssuer    = "envkeeper"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultServerAddress  = "localhost:8080"
	DefaultLogLevel       = "info"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads the server configuration from defaults, the
// optional JSON file, the environment and args (usually os.Args[1:]), then
// validates the fields the server cannot start without.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(serverDefaults()).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
