package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
)

type syncMetadataRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncMetadataRepository(db *DB, logger *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func scanSyncMetadata(rows *sql.Rows) (models.SyncMetadata, error) {
	var (
		m             models.SyncMetadata
		remoteVersion sql.NullInt64
	)
	err := rows.Scan(&m.ProjectID, &m.RemoteID, &m.LocalVersion, &remoteVersion, &m.Dirty, &m.UpdatedAt)
	if remoteVersion.Valid {
		m.RemoteVersion = &remoteVersion.Int64
	}
	return m, err
}

func (s *syncMetadataRepository) GetSyncMetadata(ctx context.Context, projectID string) (models.SyncMetadata, error) {
	metas, err := queryBuilt(ctx, s.DB, func() (string, []any, error) {
		return buildSelectSyncMetadataQuery(sq.Eq{"project_id": projectID})
	}, scanSyncMetadata)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncMetadataRepository.GetSyncMetadata").Msg("failed to query sync metadata")
		return models.SyncMetadata{}, err
	}
	if len(metas) == 0 {
		return models.SyncMetadata{}, ErrSyncMetadataNotFound
	}
	return metas[0], nil
}

func (s *syncMetadataRepository) ListSyncMetadata(ctx context.Context) ([]models.SyncMetadata, error) {
	metas, err := queryBuilt(ctx, s.DB, func() (string, []any, error) { return buildSelectSyncMetadataQuery(nil) }, scanSyncMetadata)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncMetadataRepository.ListSyncMetadata").Msg("failed to list sync metadata")
		return nil, err
	}
	return metas, nil
}

func (s *syncMetadataRepository) SaveSyncMetadata(ctx context.Context, meta models.SyncMetadata) error {
	if _, err := execBuilt(ctx, s.DB, func() (string, []any, error) { return buildUpsertSyncMetadataQuery(meta) }); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncMetadataRepository.SaveSyncMetadata").
			Str("project_id", meta.ProjectID).
			Msg("failed to save sync metadata")
		return fmt.Errorf("failed to save sync metadata: %w", err)
	}
	return nil
}

func (s *syncMetadataRepository) MarkDirty(ctx context.Context, projectID string, at time.Time) error {
	if _, err := execBuilt(ctx, s.DB, func() (string, []any, error) { return buildMarkDirtyQuery(projectID, at) }); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncMetadataRepository.MarkDirty").
			Str("project_id", projectID).
			Msg("failed to mark project dirty")
		return fmt.Errorf("failed to mark project dirty: %w", err)
	}
	return nil
}

func (s *syncMetadataRepository) DeleteSyncMetadata(ctx context.Context, projectID string) error {
	if _, err := execBuilt(ctx, s.DB, func() (string, []any, error) { return buildDeleteSyncMetadataQuery(projectID) }); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncMetadataRepository.DeleteSyncMetadata").Msg("failed to delete sync metadata")
		return fmt.Errorf("failed to delete sync metadata: %w", err)
	}
	return nil
}

// ── vault key ────────────────────────────────────────────────────────────────

type vaultKeyRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultKeyRepository(db *DB, logger *logger.Logger) VaultKeyRepository {
	return &vaultKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultKeyRepository) GetVaultKey(ctx context.Context) (models.VaultKey, error) {
	query, args, err := buildSelectVaultKeyQuery()
	if err != nil {
		return models.VaultKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var key models.VaultKey
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&key.Salt, &key.EncryptedDEK, &key.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultKey{}, ErrVaultNotInitialized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultKeyRepository.GetVaultKey").Msg("failed to read vault key")
		return models.VaultKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

func (v *vaultKeyRepository) SaveVaultKey(ctx context.Context, key models.VaultKey) error {
	if _, err := execBuilt(ctx, v.DB, func() (string, []any, error) { return buildUpsertVaultKeyQuery(key) }); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultKeyRepository.SaveVaultKey").Msg("failed to save vault key")
		return fmt.Errorf("failed to save vault key: %w", err)
	}
	return nil
}
