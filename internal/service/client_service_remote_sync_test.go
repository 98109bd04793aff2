package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/crypto"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// fakeSyncServer: in-memory blob server shared by several devices
// ─────────────────────────────────────────────────────────────────────────────

type fakeSyncServer struct {
	mu    sync.Mutex
	users map[string]models.User
	blobs map[string]models.Blob
	seq   int

	putErr error
}

func newFakeSyncServer() *fakeSyncServer {
	return &fakeSyncServer{users: map[string]models.User{}, blobs: map[string]models.Blob{}}
}

func (s *fakeSyncServer) blob(key string) (models.Blob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	return b, ok
}

// fakeAdapter is one device's connection to a fakeSyncServer.
type fakeAdapter struct {
	server *fakeSyncServer
	token  string
}

var _ adapter.ServerAdapter = (*fakeAdapter)(nil)

func (a *fakeAdapter) SetToken(token string) { a.token = token }
func (a *fakeAdapter) Token() string         { return a.token }

func (a *fakeAdapter) Signup(_ context.Context, user models.User) (models.AuthResponse, error) {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	if _, ok := a.server.users[user.Email]; ok {
		return models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists)
	}
	user.UserID = int64(len(a.server.users) + 1)
	a.server.users[user.Email] = user
	a.token = "token-" + user.Email
	return models.AuthResponse{User: user.Public(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (a *fakeAdapter) Login(_ context.Context, user models.User) (models.AuthResponse, error) {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	stored, ok := a.server.users[user.Email]
	if !ok || stored.Password != user.Password {
		return models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword)
	}
	a.token = "token-" + user.Email
	return models.AuthResponse{User: stored.Public(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (a *fakeAdapter) Refresh(_ context.Context) (models.AuthResponse, error) {
	return models.AuthResponse{ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (a *fakeAdapter) Me(_ context.Context) (models.User, error) { return models.User{}, nil }

func (a *fakeAdapter) ListBlobs(_ context.Context, prefix string) ([]models.BlobInfo, error) {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	out := []models.BlobInfo{}
	for key, b := range a.server.blobs {
		if strings.HasPrefix(key, prefix) {
			out = append(out, models.BlobInfo{Key: key, Version: b.Version, Size: int64(len(b.Data)), UpdatedAt: b.UpdatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (a *fakeAdapter) GetBlob(_ context.Context, key string) (models.Blob, error) {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	b, ok := a.server.blobs[key]
	if !ok {
		return models.Blob{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgBlobNotFound)
	}
	return b, nil
}

func (a *fakeAdapter) PutBlob(_ context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error) {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	if a.server.putErr != nil {
		return models.BlobPutResponse{}, a.server.putErr
	}

	current := a.server.blobs[req.Key]
	if !req.Force && req.BaseVersion != current.Version {
		return models.BlobPutResponse{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVersionConflict)
	}

	a.server.seq++
	b := models.Blob{
		ID:        fmt.Sprintf("blob-%d", a.server.seq),
		Key:       req.Key,
		Data:      req.Data,
		Nonce:     req.Nonce,
		Version:   current.Version + 1,
		UpdatedAt: time.Now().UTC(),
	}
	a.server.blobs[req.Key] = b
	return models.BlobPutResponse{ID: b.ID, Key: b.Key, Version: b.Version, UpdatedAt: b.UpdatedAt}, nil
}

func (a *fakeAdapter) DeleteBlob(_ context.Context, key string) error {
	a.server.mu.Lock()
	defer a.server.mu.Unlock()

	if _, ok := a.server.blobs[key]; !ok {
		return fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgBlobNotFound)
	}
	delete(a.server.blobs, key)
	return nil
}

func (a *fakeAdapter) Version(_ context.Context) (models.VersionResponse, error) {
	return models.VersionResponse{}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// device: one client with its own vault, sharing the fake server
// ─────────────────────────────────────────────────────────────────────────────

type device struct {
	vault    service.ClientVaultService
	remote   service.RemoteSync
	storages *store.ClientStorages
}

func newDevice(t *testing.T, server *fakeSyncServer) device {
	t.Helper()
	storages := newTestStorages(t)
	keyChain := crypto.NewKeyChainService()
	vault := service.NewClientVaultService(storages, keyChain, service.NewClientCryptoService(keyChain), logger.Nop())
	require.NoError(t, vault.Unlock(context.Background(), testMasterPassword))

	remote := service.NewRemoteSyncService(&fakeAdapter{server: server}, vault, storages, logger.Nop())
	return device{vault: vault, remote: remote, storages: storages}
}

// newSyncedPair returns two logged-in devices sharing one vault key.
func newSyncedPair(t *testing.T) (*fakeSyncServer, device, device) {
	t.Helper()
	ctx := context.Background()
	server := newFakeSyncServer()

	a := newDevice(t, server)
	_, err := a.remote.Signup(ctx, "dev@example.com", "pw", "Dev")
	require.NoError(t, err)
	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)

	b := newDevice(t, server)
	_, err = b.remote.Login(ctx, "dev@example.com", "pw")
	require.NoError(t, err)
	key, err := b.remote.RemoteVaultKey(ctx)
	require.NoError(t, err)
	require.NoError(t, b.vault.AdoptVaultKey(ctx, key, testMasterPassword))

	return server, a, b
}

func varValue(t *testing.T, vault service.ClientVaultService, project, env, key string) string {
	t.Helper()
	ctx := context.Background()
	e, err := vault.FindEnvironment(ctx, project, env)
	require.NoError(t, err)
	records, err := vault.ListRecords(ctx, e.ID)
	require.NoError(t, err)
	for _, r := range records {
		if r.Key == key {
			return r.Value
		}
	}
	t.Fatalf("variable %s not found in %s/%s", key, project, env)
	return ""
}

// ── Authentication ──────────────────────────────────────────────────────────

func TestRemoteSync_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	d := newDevice(t, newFakeSyncServer())

	_, err := d.remote.SyncNow(ctx)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	status, err := d.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncDisconnected))

	err = d.remote.ResolveConflict(ctx, "x", models.KeepLocal, nil)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestRemoteSync_SignupLogin(t *testing.T) {
	ctx := context.Background()
	server := newFakeSyncServer()
	d := newDevice(t, server)

	session, err := d.remote.Signup(ctx, "dev@example.com", "pw", "Dev")
	require.NoError(t, err)
	assert.Equal(t, "token-dev@example.com", session.Tokens.AccessToken)
	assert.Equal(t, "dev@example.com", session.User.Email)
	assert.False(t, session.Expired(time.Now()))

	_, err = d.remote.Signup(ctx, "dev@example.com", "pw", "Dev")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)

	other := newDevice(t, server)
	_, err = other.remote.Login(ctx, "dev@example.com", "nope")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	status, err := d.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncIdle))
	require.NotNil(t, status.User)
	assert.Equal(t, "Dev", status.User.Name)
}

func TestRemoteSync_RestoreSession(t *testing.T) {
	ctx := context.Background()
	d := newDevice(t, newFakeSyncServer())

	assert.ErrorIs(t, d.remote.RestoreSession(ctx, models.Session{}), service.ErrNotAuthenticated)

	expired := models.Session{Tokens: models.AuthTokens{AccessToken: "t"}, ExpiresAt: time.Now().Add(-time.Minute)}
	assert.ErrorIs(t, d.remote.RestoreSession(ctx, expired), service.ErrTokenIsExpired)

	valid := models.Session{
		Tokens:    models.AuthTokens{AccessToken: "t"},
		User:      models.User{Email: "dev@example.com"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, d.remote.RestoreSession(ctx, valid))

	status, err := d.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncIdle))
	assert.Equal(t, "dev@example.com", status.User.Email)

	d.remote.Logout(ctx)
	status, err = d.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncDisconnected))
}

func TestRemoteSync_RestoreSessionWithoutExpiryUsesTokenClaim(t *testing.T) {
	ctx := context.Background()
	d := newDevice(t, newFakeSyncServer())

	valid, err := utils.GenerateJWTToken("envkeeper", 7, time.Hour, "sign-key")
	require.NoError(t, err)
	require.NoError(t, d.remote.RestoreSession(ctx, models.Session{Tokens: models.AuthTokens{AccessToken: valid.SignedString}}))

	expired, err := utils.GenerateJWTToken("envkeeper", 7, -time.Minute, "sign-key")
	require.NoError(t, err)
	err = d.remote.RestoreSession(ctx, models.Session{Tokens: models.AuthTokens{AccessToken: expired.SignedString}})
	assert.ErrorIs(t, err, service.ErrTokenIsExpired)

	err = d.remote.RestoreSession(ctx, models.Session{Tokens: models.AuthTokens{AccessToken: "not-a-jwt"}})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestSyncManager_RestoresSessionFromTokenExpiry(t *testing.T) {
	ctx := context.Background()
	d := newDevice(t, newFakeSyncServer())
	sessions := store.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))

	token, err := utils.GenerateJWTToken("envkeeper", 7, time.Hour, "sign-key")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, models.Session{
		Tokens: models.AuthTokens{AccessToken: token.SignedString},
		User:   models.User{UserID: 7, Email: "dev@example.com"},
	}))

	manager := service.NewSyncManager(d.remote, sessions, logger.Nop())
	manager.RestoreSession(ctx)

	assert.True(t, manager.Connected())
	assert.False(t, manager.State().Is(models.SyncDisconnected))
}

// ── Vault key ───────────────────────────────────────────────────────────────

func TestRemoteSync_VaultKeyExchange(t *testing.T) {
	ctx := context.Background()
	server := newFakeSyncServer()

	a := newDevice(t, server)
	_, err := a.remote.Signup(ctx, "dev@example.com", "pw", "Dev")
	require.NoError(t, err)

	_, err = a.remote.RemoteVaultKey(ctx)
	assert.ErrorIs(t, err, store.ErrBlobNotFound)

	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)
	_, published := server.blob("envsync/vault/key")
	assert.True(t, published)

	b := newDevice(t, server)
	_, err = b.remote.Login(ctx, "dev@example.com", "pw")
	require.NoError(t, err)

	_, err = b.remote.SyncNow(ctx)
	assert.ErrorIs(t, err, service.ErrVaultKeyMismatch)

	key, err := b.remote.RemoteVaultKey(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, b.vault.AdoptVaultKey(ctx, key, "wrong password"), service.ErrWrongPassword)
	require.NoError(t, b.vault.AdoptVaultKey(ctx, key, testMasterPassword))

	_, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
}

func TestClientVaultService_AdoptVaultKey_ReencryptsRecords(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestVault(t)
	b, _ := newTestVault(t)

	_, dev, _ := newTestEnvPair(t, b)
	_, err := b.SetVariable(ctx, dev.ID, "KEY", "kept", false)
	require.NoError(t, err)

	key, err := a.VaultKey(ctx)
	require.NoError(t, err)
	require.NoError(t, b.AdoptVaultKey(ctx, key, testMasterPassword))

	records, err := b.ListRecords(ctx, dev.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Value)

	// ключ сохранён: после Lock/Unlock данные читаются
	b.Lock()
	require.NoError(t, b.Unlock(ctx, testMasterPassword))
	_, err = b.ListRecords(ctx, dev.ID)
	require.NoError(t, err)
}

// ── Push / Pull ─────────────────────────────────────────────────────────────

func TestRemoteSync_PushThenPull(t *testing.T) {
	ctx := context.Background()
	server, a, b := newSyncedPair(t)

	_, dev, _ := newTestEnvPair(t, a.vault)
	_, err := a.vault.SetVariable(ctx, dev.ID, "DB_URL", "postgres://a", true)
	require.NoError(t, err)

	outcome, err := a.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pushed)
	assert.Equal(t, 0, outcome.Pulled)
	assert.Empty(t, outcome.Errors)

	// на сервере только шифротекст
	for key, blob := range server.blobs {
		assert.NotContains(t, blob.Data, "postgres://a", key)
	}

	status, err := a.remote.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, status.PendingChanges)
	assert.NotNil(t, status.LastSync)

	outcome, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pulled)
	assert.Equal(t, "postgres://a", varValue(t, b.vault, "app", "dev", "DB_URL"))

	// второй прогон ничего не делает
	outcome, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncOutcome{Errors: []string{}}, outcome)

	// правка на B уходит на A
	_, err = b.vault.SetVariable(ctx, dev.ID, "DB_URL", "postgres://b", true)
	require.NoError(t, err)
	status, err = b.remote.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.PendingChanges)

	outcome, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pushed)

	outcome, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pulled)
	assert.Equal(t, "postgres://b", varValue(t, a.vault, "app", "dev", "DB_URL"))
}

func TestRemoteSync_DeletionReplicates(t *testing.T) {
	ctx := context.Background()
	server, a, b := newSyncedPair(t)

	project, _, _ := newTestEnvPair(t, a.vault)
	_, err := a.remote.SyncNow(ctx)
	require.NoError(t, err)
	_, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)

	require.NoError(t, a.vault.DeleteProject(ctx, project.ID))
	outcome, err := a.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pushed)
	_, exists := server.blob("envsync/projects/" + project.ID)
	assert.False(t, exists)

	outcome, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Pulled)
	_, err = b.vault.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
	_, err = b.storages.SyncMetadataRepository.GetSyncMetadata(ctx, project.ID)
	assert.ErrorIs(t, err, store.ErrSyncMetadataNotFound)
}

func TestRemoteSync_PushFailure_ReportedInOutcome(t *testing.T) {
	ctx := context.Background()
	server, a, _ := newSyncedPair(t)

	newTestEnvPair(t, a.vault)
	server.putErr = fmt.Errorf("%w: boom", adapter.ErrInternalServerError)

	outcome, err := a.remote.SyncNow(ctx)
	require.NoError(t, err)
	require.Len(t, outcome.Errors, 1)
	assert.True(t, strings.HasPrefix(outcome.Errors[0], "Push failed: "), outcome.Errors[0])

	status, err := a.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncError))
	assert.Equal(t, outcome.ErrorMessage(), status.State.Message())
	assert.Equal(t, 1, status.PendingChanges)

	server.putErr = nil
	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)
	status, err = a.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncIdle))
}

// ── Conflicts ───────────────────────────────────────────────────────────────

// divergedPair makes both devices edit KEY of app/dev after a common sync
// and lets A push first, so that B ends up with one open conflict.
func divergedPair(t *testing.T) (*fakeSyncServer, device, device, models.ConflictRecord) {
	t.Helper()
	ctx := context.Background()
	server, a, b := newSyncedPair(t)

	_, dev, _ := newTestEnvPair(t, a.vault)
	_, err := a.vault.SetVariable(ctx, dev.ID, "KEY", "base", false)
	require.NoError(t, err)
	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)
	_, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)

	_, err = a.vault.SetVariable(ctx, dev.ID, "KEY", "from-a", false)
	require.NoError(t, err)
	_, err = b.vault.SetVariable(ctx, dev.ID, "KEY", "from-b", false)
	require.NoError(t, err)

	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)
	outcome, err := b.remote.SyncNow(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, outcome.Conflicts)

	conflicts, err := b.remote.Conflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	return server, a, b, conflicts[0]
}

func TestRemoteSync_Conflict_Detected(t *testing.T) {
	ctx := context.Background()
	_, _, b, conflict := divergedPair(t)

	assert.Contains(t, conflict.LocalValue, "from-b")
	assert.Contains(t, conflict.RemoteValue, "from-a")

	status, err := b.remote.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.State.Is(models.SyncConflict))

	// локальная правка не перезаписана
	assert.Equal(t, "from-b", varValue(t, b.vault, "app", "dev", "KEY"))

	// повторный sync сохраняет ID конфликта
	_, err = b.remote.SyncNow(ctx)
	require.NoError(t, err)
	conflicts, err := b.remote.Conflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, conflict.ID, conflicts[0].ID)

	assert.ErrorIs(t, b.remote.ResolveConflict(ctx, "missing", models.KeepLocal, nil), service.ErrConflictNotFound)
	assert.ErrorIs(t, b.remote.ResolveConflict(ctx, conflict.ID, "theirs", nil), service.ErrUnknownResolution)
}

func TestRemoteSync_ResolveConflict(t *testing.T) {
	tests := []struct {
		name       string
		resolution models.ConflictResolution
		merged     func(t *testing.T, c models.ConflictRecord) *string
		wantB      string
		wantA      string
		wantCopies int
	}{
		{name: "KeepLocal", resolution: models.KeepLocal, wantB: "from-b", wantA: "from-b"},
		{name: "KeepRemote", resolution: models.KeepRemote, wantB: "from-a", wantA: "from-a"},
		{name: "KeepBoth", resolution: models.KeepBoth, wantB: "from-a", wantA: "from-a", wantCopies: 1},
		{name: "Merge/NoData", resolution: models.Merge, wantB: "from-b", wantA: "from-b"},
		{
			name:       "Merge/Data",
			resolution: models.Merge,
			merged: func(t *testing.T, c models.ConflictRecord) *string {
				var snapshot models.ProjectSnapshot
				require.NoError(t, json.Unmarshal([]byte(c.RemoteValue), &snapshot))
				for i, env := range snapshot.Environments {
					for j, r := range env.Records {
						if r.Key == "KEY" {
							snapshot.Environments[i].Records[j].Value = "merged"
						}
					}
				}
				data, err := json.Marshal(snapshot)
				require.NoError(t, err)
				s := string(data)
				return &s
			},
			wantB: "merged",
			wantA: "merged",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			_, a, b, conflict := divergedPair(t)

			var data *string
			if tc.merged != nil {
				data = tc.merged(t, conflict)
			}
			require.NoError(t, b.remote.ResolveConflict(ctx, conflict.ID, tc.resolution, data))

			conflicts, err := b.remote.Conflicts(ctx)
			require.NoError(t, err)
			assert.Empty(t, conflicts)
			assert.Equal(t, tc.wantB, varValue(t, b.vault, "app", "dev", "KEY"))

			// копии и правки доезжают до A
			_, err = b.remote.SyncNow(ctx)
			require.NoError(t, err)
			_, err = a.remote.SyncNow(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantA, varValue(t, a.vault, "app", "dev", "KEY"))

			projects, err := a.vault.ListProjects(ctx)
			require.NoError(t, err)
			assert.Len(t, projects, 1+tc.wantCopies)

			history, err := b.remote.History(ctx, 1)
			require.NoError(t, err)
			require.Len(t, history, 1)
		})
	}
}

// ── History ─────────────────────────────────────────────────────────────────

func TestRemoteSync_History(t *testing.T) {
	ctx := context.Background()
	_, a, _ := newSyncedPair(t)

	newTestEnvPair(t, a.vault)
	_, err := a.remote.SyncNow(ctx)
	require.NoError(t, err)

	_, dev, _ := newTestEnvPairNamed(t, a.vault, "second")
	_, err = a.vault.SetVariable(ctx, dev.ID, "K", "v", false)
	require.NoError(t, err)
	_, err = a.remote.SyncNow(ctx)
	require.NoError(t, err)

	history, err := a.remote.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.SyncEventCreated, history[0].Type)
	assert.False(t, history[0].Timestamp.Before(history[1].Timestamp), "newest first")

	limited, err := a.remote.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, history[:1], limited)

	a.remote.Logout(ctx)
	history, err = a.remote.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRemoteSync_VaultKeyPublishFailure_AbortsRun(t *testing.T) {
	ctx := context.Background()
	server := newFakeSyncServer()
	d := newDevice(t, server)
	_, err := d.remote.Signup(ctx, "dev@example.com", "pw", "Dev")
	require.NoError(t, err)
	newTestEnvPair(t, d.vault)

	server.putErr = errors.New("network down")

	outcome, err := d.remote.SyncNow(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
	assert.Zero(t, outcome.Pushed)
}
