package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/migrations"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer. Every field is backed by the
// same backend, chosen once by [NewClientStorages].
type ClientStorages struct {
	ProjectRepository      LocalProjectRepository
	EnvironmentRepository  LocalEnvironmentRepository
	RecordRepository       LocalRecordRepository
	SyncMetadataRepository SyncMetadataRepository
	VaultKeyRepository     VaultKeyRepository
	SessionStore           SessionStore

	closer func() error
}

// NewClientStorages initialises the client storage layer:
//   - a DSN of ":memory:" or a path ending in ".json" selects the JSON
//     document backend;
//   - anything else is opened as an SQLite database (created on demand)
//     and migrated.
//
// The session store is always a JSON file at cfg.SessionPath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("dsn", cfg.DB.DSN).Msg("creating client storages...")

	if IsFileBackendDSN(cfg.DB.DSN) {
		vault, err := newFileVault(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &ClientStorages{
			ProjectRepository:      vault,
			EnvironmentRepository:  vault,
			RecordRepository:       vault,
			SyncMetadataRepository: vault,
			VaultKeyRepository:     vault,
			SessionStore:           NewFileSessionStore(cfg.SessionPath),
			closer:                 func() error { return nil },
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(migrations.SQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ProjectRepository:      NewLocalProjectRepository(db, logger),
		EnvironmentRepository:  NewLocalEnvironmentRepository(db, logger),
		RecordRepository:       NewLocalRecordRepository(db, logger),
		SyncMetadataRepository: NewSyncMetadataRepository(db, logger),
		VaultKeyRepository:     NewVaultKeyRepository(db, logger),
		SessionStore:           NewFileSessionStore(cfg.SessionPath),
		closer:                 db.Close,
	}, nil
}

// Close releases the database handle, if any.
func (c *ClientStorages) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
