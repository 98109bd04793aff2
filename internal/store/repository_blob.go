package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

// blobRepository is the PostgreSQL-backed implementation of [BlobRepository].
// Every query is scoped by user_id, so users never see each other's blobs.
type blobRepository struct {
	*DB
	logger *logger.Logger
	ids    utils.UUIDGenerator
}

// NewBlobRepository constructs a [BlobRepository] backed by the provided
// database connection and logger.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Msg("creating blob repository")
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBlobs returns metadata of the user's blobs whose key starts with
// prefix, ordered by key. An empty prefix lists everything.
func (b *blobRepository) ListBlobs(ctx context.Context, userID int64, prefix string) ([]models.BlobInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlobsQuery(userID, prefix)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.ListBlobs").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blobRepository.ListBlobs").
			Int64("user_id", userID).
			Str("prefix", prefix).
			Msg("failed to execute query for listing blobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blobs := make([]models.BlobInfo, 0)
	for rows.Next() {
		var info models.BlobInfo
		if err = rows.Scan(&info.Key, &info.Version, &info.Size, &info.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*blobRepository.ListBlobs").Msg("failed to scan blob row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blobs = append(blobs, info)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*blobRepository.ListBlobs").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blobs, nil
}

// GetBlob returns a single blob or [ErrBlobNotFound].
func (b *blobRepository) GetBlob(ctx context.Context, userID int64, key string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlobQuery(userID, key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.GetBlob").Msg("failed to create query")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob models.Blob
	err = b.DB.QueryRowContext(ctx, query, args...).
		Scan(&blob.ID, &blob.UserID, &blob.Key, &blob.Data, &blob.Nonce, &blob.Version, &blob.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blob{}, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*blobRepository.GetBlob").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to get blob")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blob, nil
}

// PutBlob creates or replaces a blob under optimistic locking. Transient
// Postgres failures (serialization, deadlock, lost connection) are retried.
func (b *blobRepository) PutBlob(ctx context.Context, userID int64, req models.BlobPutRequest) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPutBlobQuery(b.ids.Generate(), userID, req)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.PutBlob").Msg("failed to create query")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	blob := models.Blob{
		UserID: userID,
		Key:    req.Key,
		Data:   req.Data,
		Nonce:  req.Nonce,
	}

	err = b.withRetry(ctx, func() error {
		return b.DB.QueryRowContext(ctx, query, args...).Scan(&blob.ID, &blob.Version, &blob.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "*blobRepository.PutBlob").
			Int64("user_id", userID).
			Str("key", req.Key).
			Int64("base_version", req.BaseVersion).
			Msg("optimistic lock failed: version mismatch on put")
		return models.Blob{}, ErrVersionConflict
	}
	if err != nil {
		log.Err(err).
			Str("func", "*blobRepository.PutBlob").
			Int64("user_id", userID).
			Str("key", req.Key).
			Msg("failed to put blob")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "*blobRepository.PutBlob").
		Str("key", req.Key).
		Int64("version", blob.Version).
		Msg("blob stored")

	return blob, nil
}

// DeleteBlob removes a blob regardless of its version.
func (b *blobRepository) DeleteBlob(ctx context.Context, userID int64, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlobQuery(userID, key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.DeleteBlob").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blobRepository.DeleteBlob").
			Int64("user_id", userID).
			Str("key", key).
			Msg("failed to delete blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlobNotFound
	}

	return nil
}
