package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// RecordReader lists the plaintext records of an environment.
type RecordReader interface {
	ListRecords(ctx context.Context, environmentID string) ([]models.Record, error)
}

// RecordWriter persists already encrypted values. Every call is one write.
type RecordWriter interface {
	CreateRecord(ctx context.Context, environmentID, key string, value models.EncryptedValue, secret bool) (models.StoredRecord, error)
	UpdateRecord(ctx context.Context, environmentID, recordID, key string, value models.EncryptedValue, secret bool) (models.StoredRecord, error)
	DeleteRecord(ctx context.Context, environmentID, recordID string) error
}

// Encryptor seals values for one environment. A value encrypted for one
// environment cannot be decrypted with another environment's context.
type Encryptor interface {
	Encrypt(environmentID, plaintext string) (models.EncryptedValue, error)
	// Decrypt returns an error wrapping ErrDecryption when value was not
	// produced for environmentID.
	Decrypt(environmentID string, value models.EncryptedValue) (string, error)
}

// ClientCryptoService is the [Encryptor] of the local vault plus the sealing
// of sync snapshots. The DEK must be set via SetEncryptionKey before use.
type ClientCryptoService interface {
	Encryptor

	// SetEncryptionKey stores a copy of the DEK. It is called once after a
	// successful unlock.
	SetEncryptionKey(key []byte)
	// ClearEncryptionKey wipes the DEK from memory.
	ClearEncryptionKey()
	HasEncryptionKey() bool

	SealSnapshot(blobKey string, snapshot models.ProjectSnapshot) (models.EncryptedValue, error)
	OpenSnapshot(blobKey string, value models.EncryptedValue) (models.ProjectSnapshot, error)
}

// PromotionService copies a single diff entry from one environment to the
// other.
type PromotionService interface {
	// Promote performs exactly one write for Added, Removed and Modified
	// entries, re-encrypting the value for the destination environment.
	// It does not re-run the diff. Write failures are returned as
	// *PromotionError.
	Promote(ctx context.Context, entry models.DiffEntry, direction models.Direction, leftEnvironmentID, rightEnvironmentID string) error
}

// ClientVaultService manages the local vault: key unlock, projects,
// environments and variables, diffing and .env files.
type ClientVaultService interface {
	RecordReader
	RecordWriter
	SnapshotVault

	// Unlock derives the KEK from masterPassword and unwraps the DEK. The
	// first call on an empty vault initialises it. A wrong password yields
	// ErrWrongPassword.
	Unlock(ctx context.Context, masterPassword string) error
	Lock()
	IsUnlocked() bool

	CreateProject(ctx context.Context, name, description string) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID string) (models.Project, error)
	// FindProject resolves a project by ID or by name.
	FindProject(ctx context.Context, idOrName string) (models.Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	CreateEnvironment(ctx context.Context, projectID, name, envType string) (models.Environment, error)
	ListEnvironments(ctx context.Context, projectID string) ([]models.Environment, error)
	GetEnvironment(ctx context.Context, environmentID string) (models.Environment, error)
	// FindEnvironment resolves an environment by project and environment
	// name, both matched case-insensitively.
	FindEnvironment(ctx context.Context, projectName, environmentName string) (models.Environment, error)
	DeleteEnvironment(ctx context.Context, environmentID string) error

	// SetVariable creates key or overwrites its value.
	SetVariable(ctx context.Context, environmentID, key, value string, secret bool) (models.Record, error)
	DeleteVariable(ctx context.Context, environmentID, key string) error

	Compare(ctx context.Context, leftEnvironmentID, rightEnvironmentID string) (models.DiffResult, error)
	// PromoteEntry promotes entry and returns the fresh comparison.
	PromoteEntry(ctx context.Context, entry models.DiffEntry, direction models.Direction, leftEnvironmentID, rightEnvironmentID string) (models.DiffResult, error)

	ImportDotenv(ctx context.Context, environmentID string, r io.Reader, secret bool) (int, error)
	ExportDotenv(ctx context.Context, environmentID string, w io.Writer) error

	// AdoptVaultKey switches the vault to another wrapped DEK, re-encrypting
	// every local record. masterPassword must open key.
	AdoptVaultKey(ctx context.Context, key models.VaultKey, masterPassword string) error
}

// SnapshotVault converts between the local vault and the replication unit.
type SnapshotVault interface {
	ExportSnapshot(ctx context.Context, projectID string) (models.ProjectSnapshot, error)
	// ImportSnapshot replaces the local project with the snapshot content
	// without marking it dirty.
	ImportSnapshot(ctx context.Context, snapshot models.ProjectSnapshot) error
	SealSnapshot(blobKey string, snapshot models.ProjectSnapshot) (models.EncryptedValue, error)
	OpenSnapshot(blobKey string, value models.EncryptedValue) (models.ProjectSnapshot, error)
	// VaultKey returns the wrapped DEK shared with other devices.
	VaultKey(ctx context.Context) (models.VaultKey, error)
}

// RemoteSync is the remote accessor driven by [SyncManager].
type RemoteSync interface {
	Signup(ctx context.Context, email, password, name string) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	// RestoreSession reinstates a saved session without contacting the
	// server.
	RestoreSession(ctx context.Context, session models.Session) error
	Logout(ctx context.Context)

	Status(ctx context.Context) (models.SyncStatus, error)
	Conflicts(ctx context.Context) ([]models.ConflictRecord, error)
	// History returns at most limit events, newest first.
	History(ctx context.Context, limit int) ([]models.SyncEvent, error)

	// SyncNow pushes dirty projects and pulls remote changes. Errors of
	// either phase are reported in the outcome; the returned error is set
	// only when the sync could not start.
	SyncNow(ctx context.Context) (models.SyncOutcome, error)
	ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution, resolvedData *string) error

	// RemoteVaultKey returns the vault key published by the account, or
	// store.ErrBlobNotFound when no device has synced yet.
	RemoteVaultKey(ctx context.Context) (models.VaultKey, error)
}

// ClientSyncJob periodically calls [SyncManager.Sync].
type ClientSyncJob interface {
	// Start launches the background goroutine. A zero or negative interval
	// defaults to 5 minutes. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop blocks until the goroutine has exited. It is a no-op when the
	// job is not running.
	Stop()
}
