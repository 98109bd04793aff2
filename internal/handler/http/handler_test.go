package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockBlobService implements service.BlobService. Unset methods return
// zero values.
type mockBlobService struct {
	listFn   func(ctx context.Context, prefix string) ([]models.BlobInfo, error)
	getFn    func(ctx context.Context, key string) (models.Blob, error)
	putFn    func(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error)
	deleteFn func(ctx context.Context, key string) error
}

func (m *mockBlobService) ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, prefix)
	}
	return []models.BlobInfo{}, nil
}

func (m *mockBlobService) GetBlob(ctx context.Context, key string) (models.Blob, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return models.Blob{}, nil
}

func (m *mockBlobService) PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error) {
	if m.putFn != nil {
		return m.putFn(ctx, req)
	}
	return models.BlobPutResponse{}, nil
}

func (m *mockBlobService) DeleteBlob(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: m.version, Date: "N/A", Commit: "N/A"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler without an integrity check. Nil services
// are replaced by empty mocks.
func newTestHandler(t *testing.T, svcs service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.BlobService == nil {
		svcs.BlobService = &mockBlobService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(&svcs, config.App{}, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{}, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, config.App{}, log)

	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IntegrityCheckFollowsHashKey(t *testing.T) {
	assert.False(t, NewHandler(&service.Services{}, config.App{}, logger.Nop()).integrityCheck)
	assert.True(t, NewHandler(&service.Services{}, config.App{HashKey: "k"}, logger.Nop()).integrityCheck)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
