package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

// DB is a database handle shared by the repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the given dialect.
func (db *DB) Migrate(dialect migrations.Dialect) error {
	return migrations.Migrate(db.DB, dialect)
}

const (
	// maxRetries counts attempts, the first one included.
	maxRetries     = 3
	baseRetryDelay = 50 * time.Millisecond
)

// withRetry runs op again with exponential backoff while the classifier
// reports the failure as transient. Without a classifier op runs exactly
// once.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(maxRetries-1, retry.NewExponential(baseRetryDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")
		return retry.RetryableError(err)
	})
}
