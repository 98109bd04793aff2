package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock wrapped", fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"unknown code", &pgconn.PgError{Code: "XX999"}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_withRetry(t *testing.T) {
	db := newDBFromSQL(nil, NewPostgresErrorClassifier())

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := db.withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, pgerrcode.SerializationFailure, pgErr.Code)
		assert.Equal(t, maxRetries, calls)
	})

	t.Run("succeeds after a transient failure", func(t *testing.T) {
		calls := 0
		err := db.withRetry(testContext(), func() error {
			calls++
			if calls == 1 {
				return pgError(pgerrcode.ConnectionFailure)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		_ = db.withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(testContext())
		cancel()
		err := db.withRetry(ctx, func() error { return pgError(pgerrcode.DeadlockDetected) })
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no classifier runs once", func(t *testing.T) {
		plain := newDBFromSQL(nil, nil)
		calls := 0
		_ = plain.withRetry(testContext(), func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		assert.Equal(t, 1, calls)
	})
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("insert user: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("connection reset")))
	assert.Empty(t, postgresError(nil))
}
