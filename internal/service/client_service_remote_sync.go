package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

const (
	// maxHistoryEvents caps the in-memory sync history.
	maxHistoryEvents = 1000

	// vaultKeyBlobKey holds the account's wrapped DEK: Data is the
	// wrapped key, Nonce the Argon2 salt, both base64.
	vaultKeyBlobKey = "envsync/vault/key"
)

// remoteSyncService replicates local projects to the sync server. Each
// project travels as one encrypted snapshot blob; versions on the server
// give optimistic concurrency.
type remoteSyncService struct {
	adapter  adapter.ServerAdapter
	vault    SnapshotVault
	projects store.LocalProjectRepository
	metadata store.SyncMetadataRepository

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger

	mu        sync.Mutex
	user      *models.User
	lastSync  *time.Time
	lastError string
	conflicts map[string]models.ConflictRecord // by project ID
	history   []models.SyncEvent               // oldest first
}

// NewRemoteSyncService builds the remote side of the sync manager.
func NewRemoteSyncService(
	serverAdapter adapter.ServerAdapter,
	vault SnapshotVault,
	storages *store.ClientStorages,
	logger *logger.Logger,
) RemoteSync {
	return &remoteSyncService{
		adapter:   serverAdapter,
		vault:     vault,
		projects:  storages.ProjectRepository,
		metadata:  storages.SyncMetadataRepository,
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
		conflicts: make(map[string]models.ConflictRecord),
	}
}

// ── authentication ──────────────────────────────────────────────────────────

func (s *remoteSyncService) Signup(ctx context.Context, email, password, name string) (models.Session, error) {
	resp, err := s.adapter.Signup(ctx, models.User{Email: email, Password: password, Name: name})
	if err != nil {
		return models.Session{}, fmt.Errorf("signup: %w", mapAdapterError(err))
	}
	return s.startSession(resp), nil
}

func (s *remoteSyncService) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}
	return s.startSession(resp), nil
}

func (s *remoteSyncService) startSession(resp models.AuthResponse) models.Session {
	user := resp.User

	s.mu.Lock()
	s.user = &user
	s.lastError = ""
	s.mu.Unlock()

	return models.Session{
		Tokens:    models.AuthTokens{AccessToken: s.adapter.Token(), ExpiresAt: resp.ExpiresAt},
		User:      user,
		ExpiresAt: resp.ExpiresAt,
	}
}

// RestoreSession implements [RemoteSync]. It makes no network calls.
func (s *remoteSyncService) RestoreSession(_ context.Context, session models.Session) error {
	if session.Tokens.AccessToken == "" {
		return ErrNotAuthenticated
	}
	if session.ExpiresAt.IsZero() {
		// Sessions saved without an expiry fall back to the token's claim.
		token, err := utils.ParseUnverifiedToken(session.Tokens.AccessToken)
		if err != nil || token.ExpiresAt == nil {
			return ErrNotAuthenticated
		}
		session.ExpiresAt = token.ExpiresAt.Time
	}
	if session.Expired(s.now()) {
		return ErrTokenIsExpired
	}

	s.adapter.SetToken(session.Tokens.AccessToken)

	user := session.User
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *remoteSyncService) Logout(_ context.Context) {
	s.adapter.SetToken("")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.lastSync = nil
	s.lastError = ""
	s.conflicts = make(map[string]models.ConflictRecord)
	s.history = nil
}

func (s *remoteSyncService) authenticated() bool {
	return s.adapter.Token() != ""
}

// ── status ──────────────────────────────────────────────────────────────────

func (s *remoteSyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	if !s.authenticated() {
		return models.SyncStatus{State: models.StateDisconnected()}, nil
	}

	metas, err := s.metadata.ListSyncMetadata(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("list sync metadata: %w", err)
	}
	pending := 0
	for _, m := range metas {
		if m.Dirty {
			pending++
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.SyncStatus{State: models.StateIdle(), PendingChanges: pending}
	switch {
	case len(s.conflicts) > 0:
		status.State = models.StateConflict()
	case s.lastError != "":
		status.State = models.StateError(s.lastError)
	}
	if s.lastSync != nil {
		t := *s.lastSync
		status.LastSync = &t
	}
	if s.user != nil {
		u := *s.user
		status.User = &u
	}
	return status, nil
}

// Conflicts returns the open conflicts ordered by project ID.
func (s *remoteSyncService) Conflicts(_ context.Context) ([]models.ConflictRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ConflictRecord, 0, len(s.conflicts))
	for _, c := range s.conflicts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProjectID < out[j].ProjectID })
	return out, nil
}

// History returns up to limit events, newest first. limit <= 0 returns all.
func (s *remoteSyncService) History(_ context.Context, limit int) ([]models.SyncEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.SyncEvent, 0, n)
	for i := len(s.history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.history[i])
	}
	return out, nil
}

func (s *remoteSyncService) record(eventType models.SyncEventType, projectID, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, models.SyncEvent{
		ID:        s.ids.Generate(),
		Type:      eventType,
		ProjectID: projectID,
		Message:   message,
		Timestamp: s.now(),
	})
	if extra := len(s.history) - maxHistoryEvents; extra > 0 {
		s.history = append(s.history[:0:0], s.history[extra:]...)
	}
}

// ── sync ────────────────────────────────────────────────────────────────────

// SyncNow implements [RemoteSync]. Per-project failures are collected in
// the outcome; only a failure to read either side aborts the run.
func (s *remoteSyncService) SyncNow(ctx context.Context) (models.SyncOutcome, error) {
	if !s.authenticated() {
		return models.SyncOutcome{}, ErrNotAuthenticated
	}

	traceID := s.ids.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	ctx = logger.FromContext(ctx).With().Str("trace_id", traceID).Logger().WithContext(ctx)

	outcome, err := s.syncNow(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
	}
	return outcome, err
}

func (s *remoteSyncService) syncNow(ctx context.Context) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	if err := s.exchangeVaultKey(ctx); err != nil {
		log.Err(err).Str("func", "*remoteSyncService.syncNow").Msg("vault key exchange failed")
		return models.SyncOutcome{}, err
	}

	remote, err := s.adapter.ListBlobs(ctx, projectBlobPrefix)
	if err != nil {
		log.Err(err).Str("func", "*remoteSyncService.syncNow").Msg("error listing remote blobs")
		return models.SyncOutcome{}, fmt.Errorf("list remote projects: %w", mapAdapterError(err))
	}
	metas, err := s.metadata.ListSyncMetadata(ctx)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("list sync metadata: %w", err)
	}
	localProjects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("list local projects: %w", err)
	}

	plan, err := buildSyncPlan(ctx, remote, metas, localProjects)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("build sync plan: %w", err)
	}

	outcome := models.SyncOutcome{Errors: []string{}}

	// push first: local edits must not be overwritten by the pull below
	for _, item := range plan.Push {
		if err = s.push(ctx, item.Meta, item.BaseVersion, false); err != nil {
			if errors.Is(err, adapter.ErrConflict) {
				if cerr := s.openConflict(ctx, item.Meta); cerr != nil {
					outcome.Errors = append(outcome.Errors, fmt.Sprintf("Push failed: %s: %v", item.Meta.ProjectID, cerr))
					continue
				}
				outcome.Conflicts++
				continue
			}
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Push failed: %s: %v", item.Meta.ProjectID, err))
			continue
		}
		outcome.Pushed++
	}
	for _, m := range plan.DeleteRemote {
		if err = s.deleteRemote(ctx, m); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Push failed: %s: %v", m.ProjectID, err))
			continue
		}
		outcome.Pushed++
	}

	for _, info := range plan.Pull {
		if _, err = s.pull(ctx, info.Key); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Pull failed: %s: %v", projectIDFromBlobKey(info.Key), err))
			continue
		}
		outcome.Pulled++
	}
	for _, m := range plan.DeleteLocal {
		if err = s.deleteLocal(ctx, m); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Pull failed: %s: %v", m.ProjectID, err))
			continue
		}
		outcome.Pulled++
	}
	for _, m := range plan.DropMetadata {
		if err = s.metadata.DeleteSyncMetadata(ctx, m.ProjectID); err != nil && !errors.Is(err, store.ErrSyncMetadataNotFound) {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Pull failed: %s: %v", m.ProjectID, err))
		}
	}

	for _, c := range plan.Conflicts {
		if err = s.openConflict(ctx, c.Meta); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Pull failed: %s: %v", c.Meta.ProjectID, err))
			continue
		}
		outcome.Conflicts++
	}

	now := s.now()
	s.mu.Lock()
	s.lastSync = &now
	s.lastError = outcome.ErrorMessage()
	s.mu.Unlock()

	log.Info().
		Int("pushed", outcome.Pushed).
		Int("pulled", outcome.Pulled).
		Int("conflicts", outcome.Conflicts).
		Int("errors", len(outcome.Errors)).
		Msg("sync finished")

	return outcome, nil
}

// push uploads the current local snapshot. On success the metadata records
// the new remote version; it stays dirty if the project changed meanwhile.
func (s *remoteSyncService) push(ctx context.Context, meta models.SyncMetadata, baseVersion int64, force bool) error {
	key := projectBlobKey(meta.ProjectID)

	snapshot, err := s.vault.ExportSnapshot(ctx, meta.ProjectID)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	sealed, err := s.vault.SealSnapshot(key, snapshot)
	if err != nil {
		return fmt.Errorf("seal snapshot: %w", err)
	}

	resp, err := s.adapter.PutBlob(ctx, models.BlobPutRequest{
		Key:         key,
		Data:        sealed.Ciphertext,
		Nonce:       sealed.Nonce,
		BaseVersion: baseVersion,
		Force:       force,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return err
		}
		return mapAdapterError(err)
	}

	current, err := s.metadata.GetSyncMetadata(ctx, meta.ProjectID)
	if err != nil {
		if !errors.Is(err, store.ErrSyncMetadataNotFound) {
			return fmt.Errorf("load sync metadata: %w", err)
		}
		current = meta
	}

	version := resp.Version
	current.ProjectID = meta.ProjectID
	current.RemoteID = resp.ID
	current.RemoteVersion = &version
	current.Dirty = current.LocalVersion != meta.LocalVersion
	current.UpdatedAt = s.now()
	if err = s.metadata.SaveSyncMetadata(ctx, current); err != nil {
		return fmt.Errorf("save sync metadata: %w", err)
	}

	s.dropConflict(meta.ProjectID)

	eventType := models.SyncEventPush
	if baseVersion == 0 {
		eventType = models.SyncEventCreated
	}
	s.record(eventType, meta.ProjectID, fmt.Sprintf("pushed %s v%d", snapshot.Project.Name, version))
	return nil
}

// fetch downloads and decrypts the remote snapshot of key.
func (s *remoteSyncService) fetch(ctx context.Context, key string) (models.ProjectSnapshot, models.Blob, error) {
	blob, err := s.adapter.GetBlob(ctx, key)
	if err != nil {
		return models.ProjectSnapshot{}, models.Blob{}, mapAdapterError(err)
	}
	snapshot, err := s.vault.OpenSnapshot(key, models.EncryptedValue{Ciphertext: blob.Data, Nonce: blob.Nonce})
	if err != nil {
		return models.ProjectSnapshot{}, models.Blob{}, fmt.Errorf("open snapshot: %w", err)
	}
	return snapshot, blob, nil
}

// pull replaces the local project with the remote snapshot and marks the
// metadata clean at the remote version.
func (s *remoteSyncService) pull(ctx context.Context, key string) (models.ProjectSnapshot, error) {
	projectID := projectIDFromBlobKey(key)

	snapshot, blob, err := s.fetch(ctx, key)
	if err != nil {
		return models.ProjectSnapshot{}, err
	}
	snapshot.Project.ID = projectID

	if err = s.vault.ImportSnapshot(ctx, snapshot); err != nil {
		return models.ProjectSnapshot{}, fmt.Errorf("import snapshot: %w", err)
	}

	current, err := s.metadata.GetSyncMetadata(ctx, projectID)
	if err != nil && !errors.Is(err, store.ErrSyncMetadataNotFound) {
		return models.ProjectSnapshot{}, fmt.Errorf("load sync metadata: %w", err)
	}
	version := blob.Version
	current.ProjectID = projectID
	current.RemoteID = blob.ID
	current.RemoteVersion = &version
	current.Dirty = false
	current.UpdatedAt = s.now()
	if err = s.metadata.SaveSyncMetadata(ctx, current); err != nil {
		return models.ProjectSnapshot{}, fmt.Errorf("save sync metadata: %w", err)
	}

	s.dropConflict(projectID)
	s.record(models.SyncEventPull, projectID, fmt.Sprintf("pulled %s v%d", snapshot.Project.Name, version))
	return snapshot, nil
}

func (s *remoteSyncService) deleteRemote(ctx context.Context, meta models.SyncMetadata) error {
	if err := s.adapter.DeleteBlob(ctx, projectBlobKey(meta.ProjectID)); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return mapAdapterError(err)
	}
	if err := s.metadata.DeleteSyncMetadata(ctx, meta.ProjectID); err != nil && !errors.Is(err, store.ErrSyncMetadataNotFound) {
		return fmt.Errorf("delete sync metadata: %w", err)
	}
	s.record(models.SyncEventUpdated, meta.ProjectID, "deleted on server")
	return nil
}

func (s *remoteSyncService) deleteLocal(ctx context.Context, meta models.SyncMetadata) error {
	if err := s.projects.DeleteProject(ctx, meta.ProjectID); err != nil && !errors.Is(err, store.ErrProjectNotFound) {
		return fmt.Errorf("delete project: %w", err)
	}
	if err := s.metadata.DeleteSyncMetadata(ctx, meta.ProjectID); err != nil && !errors.Is(err, store.ErrSyncMetadataNotFound) {
		return fmt.Errorf("delete sync metadata: %w", err)
	}
	s.record(models.SyncEventPull, meta.ProjectID, "deleted locally, removed on server")
	return nil
}

// ── conflicts ───────────────────────────────────────────────────────────────

// openConflict captures both sides of a diverged project. An existing
// conflict for the same project is replaced, keeping its ID.
func (s *remoteSyncService) openConflict(ctx context.Context, meta models.SyncMetadata) error {
	key := projectBlobKey(meta.ProjectID)

	local, err := s.vault.ExportSnapshot(ctx, meta.ProjectID)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	remote, blob, err := s.fetch(ctx, key)
	if err != nil {
		return err
	}

	localJSON, err := json.Marshal(local)
	if err != nil {
		return fmt.Errorf("marshal local snapshot: %w", err)
	}
	remoteJSON, err := json.Marshal(remote)
	if err != nil {
		return fmt.Errorf("marshal remote snapshot: %w", err)
	}

	s.mu.Lock()
	id := s.ids.Generate()
	if existing, ok := s.conflicts[meta.ProjectID]; ok {
		id = existing.ID
	}
	s.conflicts[meta.ProjectID] = models.ConflictRecord{
		ID:               id,
		ProjectID:        meta.ProjectID,
		LocalValue:       string(localJSON),
		RemoteValue:      string(remoteJSON),
		LocalModifiedAt:  meta.UpdatedAt,
		RemoteModifiedAt: blob.UpdatedAt,
	}
	s.mu.Unlock()

	s.record(models.SyncEventConflict, meta.ProjectID, fmt.Sprintf("%s changed on both sides", local.Project.Name))
	return nil
}

func (s *remoteSyncService) dropConflict(projectID string) {
	s.mu.Lock()
	delete(s.conflicts, projectID)
	s.mu.Unlock()
}

func (s *remoteSyncService) findConflict(conflictID string) (models.ConflictRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conflicts {
		if c.ID == conflictID {
			return c, true
		}
	}
	return models.ConflictRecord{}, false
}

// ResolveConflict implements [RemoteSync].
//
//	KeepLocal   force-push the local project
//	KeepRemote  import the remote snapshot
//	KeepBoth    import the local side as a new project, then the remote
//	Merge       import resolvedData and force-push it; KeepLocal without data
func (s *remoteSyncService) ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution, resolvedData *string) error {
	log := logger.FromContext(ctx)

	if !s.authenticated() {
		return ErrNotAuthenticated
	}

	conflict, ok := s.findConflict(conflictID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrConflictNotFound, conflictID)
	}

	var err error
	switch resolution {
	case models.KeepLocal:
		err = s.forcePush(ctx, conflict.ProjectID)

	case models.KeepRemote:
		_, err = s.pull(ctx, projectBlobKey(conflict.ProjectID))

	case models.KeepBoth:
		err = s.keepBoth(ctx, conflict)

	case models.Merge:
		if resolvedData == nil {
			err = s.forcePush(ctx, conflict.ProjectID)
			break
		}
		err = s.merge(ctx, conflict, *resolvedData)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownResolution, resolution)
	}
	if err != nil {
		log.Err(err).Str("func", "*remoteSyncService.ResolveConflict").Str("conflict_id", conflictID).Msg("error resolving conflict")
		return err
	}

	s.dropConflict(conflict.ProjectID)
	s.record(models.SyncEventResolved, conflict.ProjectID, string(resolution))
	return nil
}

func (s *remoteSyncService) forcePush(ctx context.Context, projectID string) error {
	meta, err := s.metadata.GetSyncMetadata(ctx, projectID)
	if err != nil && !errors.Is(err, store.ErrSyncMetadataNotFound) {
		return fmt.Errorf("load sync metadata: %w", err)
	}
	meta.ProjectID = projectID

	var base int64
	if meta.RemoteVersion != nil {
		base = *meta.RemoteVersion
	}
	return s.push(ctx, meta, base, true)
}

// keepBoth re-imports the local side under a fresh ID and name so that the
// remote copy can take over the original project.
func (s *remoteSyncService) keepBoth(ctx context.Context, conflict models.ConflictRecord) error {
	var local models.ProjectSnapshot
	if err := json.Unmarshal([]byte(conflict.LocalValue), &local); err != nil {
		return fmt.Errorf("%w: local snapshot: %w", ErrInvalidDataProvided, err)
	}

	copyID := s.ids.Generate()
	local.Project.ID = copyID
	local.Project.Name = fmt.Sprintf("%s (local copy %s)", local.Project.Name, s.now().Format("2006-01-02 15:04"))
	for i := range local.Environments {
		local.Environments[i].Environment.ID = s.ids.Generate()
		local.Environments[i].Environment.ProjectID = copyID
		for j := range local.Environments[i].Records {
			local.Environments[i].Records[j].ID = ""
		}
	}

	if err := s.vault.ImportSnapshot(ctx, local); err != nil {
		return fmt.Errorf("import local copy: %w", err)
	}
	if err := s.metadata.MarkDirty(ctx, copyID, s.now()); err != nil {
		return fmt.Errorf("mark local copy dirty: %w", err)
	}

	_, err := s.pull(ctx, projectBlobKey(conflict.ProjectID))
	return err
}

func (s *remoteSyncService) merge(ctx context.Context, conflict models.ConflictRecord, resolvedData string) error {
	var merged models.ProjectSnapshot
	if err := json.Unmarshal([]byte(resolvedData), &merged); err != nil {
		return fmt.Errorf("%w: resolved data: %w", ErrInvalidDataProvided, err)
	}
	merged.Project.ID = conflict.ProjectID

	if err := s.vault.ImportSnapshot(ctx, merged); err != nil {
		return fmt.Errorf("import merged snapshot: %w", err)
	}
	if err := s.metadata.MarkDirty(ctx, conflict.ProjectID, s.now()); err != nil {
		return fmt.Errorf("mark project dirty: %w", err)
	}
	return s.forcePush(ctx, conflict.ProjectID)
}

// ── vault key ───────────────────────────────────────────────────────────────

// RemoteVaultKey implements [RemoteSync].
func (s *remoteSyncService) RemoteVaultKey(ctx context.Context) (models.VaultKey, error) {
	blob, err := s.adapter.GetBlob(ctx, vaultKeyBlobKey)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.VaultKey{}, store.ErrBlobNotFound
		}
		return models.VaultKey{}, mapAdapterError(err)
	}

	encryptedDEK, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		return models.VaultKey{}, fmt.Errorf("%w: vault key: %w", ErrInvalidDataProvided, err)
	}
	salt, err := base64.StdEncoding.DecodeString(blob.Nonce)
	if err != nil {
		return models.VaultKey{}, fmt.Errorf("%w: vault salt: %w", ErrInvalidDataProvided, err)
	}
	return models.VaultKey{Salt: salt, EncryptedDEK: encryptedDEK, CreatedAt: blob.UpdatedAt}, nil
}

// exchangeVaultKey publishes the local vault key when the account has none
// and refuses to sync against a different one.
func (s *remoteSyncService) exchangeVaultKey(ctx context.Context) error {
	local, err := s.vault.VaultKey(ctx)
	if err != nil {
		return fmt.Errorf("load vault key: %w", err)
	}

	remote, err := s.RemoteVaultKey(ctx)
	switch {
	case err == nil:
		if !bytes.Equal(remote.EncryptedDEK, local.EncryptedDEK) || !bytes.Equal(remote.Salt, local.Salt) {
			return ErrVaultKeyMismatch
		}
		return nil

	case errors.Is(err, store.ErrBlobNotFound):
		_, err = s.adapter.PutBlob(ctx, models.BlobPutRequest{
			Key:   vaultKeyBlobKey,
			Data:  base64.StdEncoding.EncodeToString(local.EncryptedDEK),
			Nonce: base64.StdEncoding.EncodeToString(local.Salt),
		})
		if err != nil {
			return fmt.Errorf("publish vault key: %w", mapAdapterError(err))
		}
		return nil

	default:
		return fmt.Errorf("fetch vault key: %w", err)
	}
}
