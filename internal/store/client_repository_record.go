package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func scanRecord(rows *sql.Rows) (models.StoredRecord, error) {
	var r models.StoredRecord
	err := rows.Scan(
		&r.ID,
		&r.EnvironmentID,
		&r.Key,
		&r.Value.Ciphertext,
		&r.Value.Nonce,
		&r.Secret,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (l *localRecordRepository) CreateRecord(ctx context.Context, record models.StoredRecord) error {
	log := logger.FromContext(ctx)

	_, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildInsertRecordQuery(record) })
	if err != nil {
		if sqliteUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		log.Err(err).
			Str("func", "*localRecordRepository.CreateRecord").
			Str("environment_id", record.EnvironmentID).
			Str("key", record.Key).
			Msg("failed to insert record")
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

func (l *localRecordRepository) UpdateRecord(ctx context.Context, record models.StoredRecord) error {
	log := logger.FromContext(ctx)

	affected, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildUpdateRecordQuery(record) })
	if err != nil {
		if sqliteUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		log.Err(err).
			Str("func", "*localRecordRepository.UpdateRecord").
			Str("record_id", record.ID).
			Msg("failed to update record")
		return fmt.Errorf("failed to update record: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (l *localRecordRepository) DeleteRecord(ctx context.Context, environmentID, recordID string) error {
	affected, err := execBuilt(ctx, l.DB, func() (string, []any, error) { return buildDeleteRecordQuery(environmentID, recordID) })
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localRecordRepository.DeleteRecord").
			Str("record_id", recordID).
			Msg("failed to delete record")
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (l *localRecordRepository) GetRecord(ctx context.Context, environmentID, recordID string) (models.StoredRecord, error) {
	return l.findOne(ctx, sq.Eq{"environment_id": environmentID, "id": recordID})
}

func (l *localRecordRepository) FindRecordByKey(ctx context.Context, environmentID, key string) (models.StoredRecord, error) {
	return l.findOne(ctx, sq.Eq{"environment_id": environmentID, "key": key})
}

func (l *localRecordRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.StoredRecord, error) {
	records, err := queryBuilt(ctx, l.DB, func() (string, []any, error) { return buildSelectRecordsQuery(where) }, scanRecord)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localRecordRepository.findOne").Msg("failed to query record")
		return models.StoredRecord{}, err
	}
	if len(records) == 0 {
		return models.StoredRecord{}, ErrRecordNotFound
	}
	return records[0], nil
}

func (l *localRecordRepository) ListRecords(ctx context.Context, environmentID string) ([]models.StoredRecord, error) {
	records, err := queryBuilt(ctx, l.DB, func() (string, []any, error) {
		return buildSelectRecordsQuery(sq.Eq{"environment_id": environmentID})
	}, scanRecord)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localRecordRepository.ListRecords").
			Str("environment_id", environmentID).
			Msg("failed to list records")
		return nil, err
	}
	return records, nil
}
