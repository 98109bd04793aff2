// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-env-keeper/models"
)

const (
	projectsTable     = "projects"
	environmentsTable = "environments"
	recordsTable      = "records"
	syncMetadataTable = "sync_metadata"
	vaultKeysTable    = "vault_keys"
)

var (
	projectColumns      = []string{"id", "name", "description", "created_at", "updated_at"}
	environmentColumns  = []string{"id", "project_id", "name", "env_type", "created_at", "updated_at"}
	recordColumns       = []string{"id", "environment_id", "key", "ciphertext", "nonce", "is_secret", "created_at", "updated_at"}
	syncMetadataColumns = []string{"project_id", "remote_id", "local_version", "remote_version", "is_dirty", "updated_at"}
)

var lite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ── projects ─────────────────────────────────────────────────────────────────

func buildInsertProjectQuery(p models.Project) (string, []any, error) {
	return lite.
		Insert(projectsTable).
		Columns(projectColumns...).
		Values(p.ID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt).
		ToSql()
}

func buildUpsertProjectQuery(p models.Project) (string, []any, error) {
	return lite.
		Insert(projectsTable).
		Columns(projectColumns...).
		Values(p.ID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name, description = excluded.description, updated_at = excluded.updated_at").
		ToSql()
}

// buildSelectProjectsQuery selects projects matching where (nil selects all)
// ordered by name.
func buildSelectProjectsQuery(where sq.Sqlizer) (string, []any, error) {
	query := lite.Select(projectColumns...).From(projectsTable).OrderBy("name", "created_at")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

func buildTouchProjectQuery(projectID string, at any) (string, []any, error) {
	return lite.
		Update(projectsTable).
		Set("updated_at", at).
		Where(sq.Eq{"id": projectID}).
		ToSql()
}

func buildDeleteProjectRecordsQuery(projectID string) (string, []any, error) {
	return lite.
		Delete(recordsTable).
		Where(sq.Expr("environment_id IN (SELECT id FROM environments WHERE project_id = ?)", projectID)).
		ToSql()
}

func buildDeleteProjectEnvironmentsQuery(projectID string) (string, []any, error) {
	return lite.Delete(environmentsTable).Where(sq.Eq{"project_id": projectID}).ToSql()
}

func buildDeleteProjectQuery(projectID string) (string, []any, error) {
	return lite.Delete(projectsTable).Where(sq.Eq{"id": projectID}).ToSql()
}

// ── environments ─────────────────────────────────────────────────────────────

func buildInsertEnvironmentQuery(e models.Environment) (string, []any, error) {
	return lite.
		Insert(environmentsTable).
		Columns(environmentColumns...).
		Values(e.ID, e.ProjectID, e.Name, string(e.Type), e.CreatedAt, e.UpdatedAt).
		ToSql()
}

func buildSelectEnvironmentsQuery(where sq.Sqlizer) (string, []any, error) {
	return lite.
		Select(environmentColumns...).
		From(environmentsTable).
		Where(where).
		OrderBy("created_at", "name").
		ToSql()
}

func buildDeleteEnvironmentRecordsQuery(environmentID string) (string, []any, error) {
	return lite.Delete(recordsTable).Where(sq.Eq{"environment_id": environmentID}).ToSql()
}

func buildDeleteEnvironmentQuery(environmentID string) (string, []any, error) {
	return lite.Delete(environmentsTable).Where(sq.Eq{"id": environmentID}).ToSql()
}

// ── records ──────────────────────────────────────────────────────────────────

func buildInsertRecordQuery(r models.StoredRecord) (string, []any, error) {
	return lite.
		Insert(recordsTable).
		Columns(recordColumns...).
		Values(r.ID, r.EnvironmentID, r.Key, r.Value.Ciphertext, r.Value.Nonce, r.Secret, r.CreatedAt, r.UpdatedAt).
		ToSql()
}

func buildUpdateRecordQuery(r models.StoredRecord) (string, []any, error) {
	return lite.
		Update(recordsTable).
		Set("key", r.Key).
		Set("ciphertext", r.Value.Ciphertext).
		Set("nonce", r.Value.Nonce).
		Set("is_secret", r.Secret).
		Set("updated_at", r.UpdatedAt).
		Where(sq.Eq{"id": r.ID, "environment_id": r.EnvironmentID}).
		ToSql()
}

func buildDeleteRecordQuery(environmentID, recordID string) (string, []any, error) {
	return lite.
		Delete(recordsTable).
		Where(sq.Eq{"id": recordID, "environment_id": environmentID}).
		ToSql()
}

func buildSelectRecordsQuery(where sq.Sqlizer) (string, []any, error) {
	return lite.
		Select(recordColumns...).
		From(recordsTable).
		Where(where).
		OrderBy("key").
		ToSql()
}

// ── sync metadata ────────────────────────────────────────────────────────────

func buildSelectSyncMetadataQuery(where sq.Sqlizer) (string, []any, error) {
	query := lite.Select(syncMetadataColumns...).From(syncMetadataTable).OrderBy("project_id")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

func buildUpsertSyncMetadataQuery(m models.SyncMetadata) (string, []any, error) {
	return lite.
		Insert(syncMetadataTable).
		Columns(syncMetadataColumns...).
		Values(m.ProjectID, m.RemoteID, m.LocalVersion, m.RemoteVersion, m.Dirty, m.UpdatedAt).
		Suffix("ON CONFLICT (project_id) DO UPDATE SET remote_id = excluded.remote_id, local_version = excluded.local_version, " +
			"remote_version = excluded.remote_version, is_dirty = excluded.is_dirty, updated_at = excluded.updated_at").
		ToSql()
}

func buildMarkDirtyQuery(projectID string, at any) (string, []any, error) {
	return lite.
		Insert(syncMetadataTable).
		Columns("project_id", "local_version", "is_dirty", "updated_at").
		Values(projectID, 1, true, at).
		Suffix("ON CONFLICT (project_id) DO UPDATE SET local_version = sync_metadata.local_version + 1, is_dirty = 1, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSyncMetadataQuery(projectID string) (string, []any, error) {
	return lite.Delete(syncMetadataTable).Where(sq.Eq{"project_id": projectID}).ToSql()
}

// ── vault key ────────────────────────────────────────────────────────────────

func buildSelectVaultKeyQuery() (string, []any, error) {
	return lite.
		Select("salt", "encrypted_dek", "created_at").
		From(vaultKeysTable).
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildUpsertVaultKeyQuery(k models.VaultKey) (string, []any, error) {
	return lite.
		Insert(vaultKeysTable).
		Columns("id", "salt", "encrypted_dek", "created_at").
		Values(1, k.Salt, k.EncryptedDEK, k.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET salt = excluded.salt, encrypted_dek = excluded.encrypted_dek, created_at = excluded.created_at").
		ToSql()
}
