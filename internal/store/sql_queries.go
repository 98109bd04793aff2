package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-env-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`
)

const (
	blobsTable        = "blobs"
	blobReturningCols = "RETURNING id, version, updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// escapeLike escapes LIKE wildcards so a prefix matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildListBlobsQuery(userID int64, prefix string) (string, []any, error) {
	query := psql.
		Select("key", "version", "octet_length(data)", "updated_at").
		From(blobsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("key")

	if prefix != "" {
		query = query.Where(sq.Like{"key": escapeLike(prefix) + "%"})
	}

	return query.ToSql()
}

func buildGetBlobQuery(userID int64, key string) (string, []any, error) {
	return psql.
		Select("id", "user_id", "key", "data", "nonce", "version", "updated_at").
		From(blobsTable).
		Where(sq.Eq{"user_id": userID, "key": key}).
		ToSql()
}

// buildPutBlobQuery builds one of three statements, all returning
// (id, version, updated_at):
//   - forced upsert that bumps the version unconditionally;
//   - insert that yields no row when the key already exists (base version 0);
//   - update guarded by the base version, yielding no row on mismatch.
func buildPutBlobQuery(id string, userID int64, req models.BlobPutRequest) (string, []any, error) {
	switch {
	case req.Force:
		return psql.
			Insert(blobsTable).
			Columns("id", "user_id", "key", "data", "nonce", "version").
			Values(id, userID, req.Key, req.Data, req.Nonce, 1).
			Suffix("ON CONFLICT (user_id, key) DO UPDATE SET data = EXCLUDED.data, nonce = EXCLUDED.nonce, version = blobs.version + 1, updated_at = NOW() " + blobReturningCols).
			ToSql()
	case req.BaseVersion == 0:
		return psql.
			Insert(blobsTable).
			Columns("id", "user_id", "key", "data", "nonce", "version").
			Values(id, userID, req.Key, req.Data, req.Nonce, 1).
			Suffix("ON CONFLICT (user_id, key) DO NOTHING " + blobReturningCols).
			ToSql()
	default:
		return psql.
			Update(blobsTable).
			Set("data", req.Data).
			Set("nonce", req.Nonce).
			Set("version", sq.Expr("version + 1")).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"user_id": userID, "key": req.Key, "version": req.BaseVersion}).
			Suffix(blobReturningCols).
			ToSql()
	}
}

func buildDeleteBlobQuery(userID int64, key string) (string, []any, error) {
	return psql.
		Delete(blobsTable).
		Where(sq.Eq{"user_id": userID, "key": key}).
		ToSql()
}
