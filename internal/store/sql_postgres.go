package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4

	// a freshly started Postgres answers 57P03 for a few seconds
	postgresPingAttempts = 5
	postgresPingDelay    = 200 * time.Millisecond
)

// NewConnectPostgres opens the sync server's blob database through the pgx
// stdlib driver. Pings that fail with a retryable error are repeated.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("failed to open postgres")
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	backoff := retry.WithMaxRetries(postgresPingAttempts-1, retry.NewConstant(postgresPingDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingErr := conn.PingContext(ctx)
		if pingErr != nil && db.errorClassificator.Classify(pingErr) == Retryable {
			log.Warn().Err(pingErr).Str("func", "NewConnectPostgres").Msg("postgres is not ready yet")
			return retry.RetryableError(pingErr)
		}
		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("failed to ping postgres")
		_ = conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")
	return db, nil
}

// postgresError returns the SQLSTATE of err, or "" for non-Postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
