package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalProjectRepository stores projects on the client device.
type LocalProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) error
	GetProject(ctx context.Context, projectID string) (models.Project, error)
	FindProjectByName(ctx context.Context, name string) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	TouchProject(ctx context.Context, projectID string, at time.Time) error

	// DeleteProject removes the project together with its environments and
	// records. Sync metadata is left untouched so the deletion can be
	// replicated.
	DeleteProject(ctx context.Context, projectID string) error

	// LoadProject returns the whole project subtree.
	LoadProject(ctx context.Context, projectID string) (models.StoredProject, error)

	// ReplaceProject atomically overwrites the project subtree with the
	// given one. Environments missing from it are removed.
	ReplaceProject(ctx context.Context, project models.StoredProject) error
}

// LocalEnvironmentRepository stores environments on the client device.
type LocalEnvironmentRepository interface {
	CreateEnvironment(ctx context.Context, env models.Environment) error
	GetEnvironment(ctx context.Context, environmentID string) (models.Environment, error)
	FindEnvironmentByName(ctx context.Context, projectID, name string) (models.Environment, error)
	ListEnvironments(ctx context.Context, projectID string) ([]models.Environment, error)
	DeleteEnvironment(ctx context.Context, environmentID string) error
}

// LocalRecordRepository stores encrypted records. Keys are unique within an
// environment.
type LocalRecordRepository interface {
	CreateRecord(ctx context.Context, record models.StoredRecord) error
	UpdateRecord(ctx context.Context, record models.StoredRecord) error
	DeleteRecord(ctx context.Context, environmentID, recordID string) error
	GetRecord(ctx context.Context, environmentID, recordID string) (models.StoredRecord, error)
	FindRecordByKey(ctx context.Context, environmentID, key string) (models.StoredRecord, error)
	ListRecords(ctx context.Context, environmentID string) ([]models.StoredRecord, error)
}

// SyncMetadataRepository tracks the replication state of local projects.
type SyncMetadataRepository interface {
	GetSyncMetadata(ctx context.Context, projectID string) (models.SyncMetadata, error)
	ListSyncMetadata(ctx context.Context) ([]models.SyncMetadata, error)
	SaveSyncMetadata(ctx context.Context, meta models.SyncMetadata) error

	// MarkDirty bumps the local version of the project and flags it for
	// the next push, creating the metadata row when needed.
	MarkDirty(ctx context.Context, projectID string, at time.Time) error
	DeleteSyncMetadata(ctx context.Context, projectID string) error
}

// VaultKeyRepository holds the single wrapped data key of the local vault.
type VaultKeyRepository interface {
	// GetVaultKey returns [ErrVaultNotInitialized] before the first unlock.
	GetVaultKey(ctx context.Context) (models.VaultKey, error)
	SaveVaultKey(ctx context.Context, key models.VaultKey) error
}

// SessionStore persists the authenticated session between runs.
type SessionStore interface {
	// Load returns [ErrSessionNotFound] when nothing was saved.
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}
