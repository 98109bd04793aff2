package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testPasswordHashKey = "password-hash-key"
	testTokenSignKey    = "token-sign-key"
	testTokenIssuer     = "envkeeper-test"
)

func newTestAuthService(t *testing.T) (service.AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		PasswordHashKey: testPasswordHashKey,
		TokenSignKey:    testTokenSignKey,
		TokenIssuer:     testTokenIssuer,
		TokenDuration:   time.Hour,
	}
	return service.NewAuthService(repo, cfg, logger.Nop()), repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	auth, repo := newTestAuthService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// пароль не должен уходить в хранилище в открытом виде
			assert.Empty(t, u.Password)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, utils.HashString("s3cret", testPasswordHashKey), u.PasswordHash)
			u.UserID = 7
			return u, nil
		})

	user, err := auth.RegisterUser(context.Background(), models.User{Email: "  Alice@Example.com ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.Password)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{"empty email", models.User{Password: "x"}},
		{"malformed email", models.User{Email: "not-an-email", Password: "x"}},
		{"empty password", models.User{Email: "bob@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _ := newTestAuthService(t)
			_, err := auth.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	auth, repo := newTestAuthService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := auth.RegisterUser(context.Background(), models.User{Email: "bob@example.com", Password: "x"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{
		UserID:       3,
		Email:        "carol@example.com",
		PasswordHash: utils.HashString("right", testPasswordHashKey),
	}

	t.Run("correct password", func(t *testing.T) {
		auth, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "carol@example.com").Return(stored, nil)

		user, err := auth.Login(context.Background(), models.User{Email: "Carol@example.com", Password: "right"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.UserID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "carol@example.com").Return(stored, nil)

		_, err := auth.Login(context.Background(), models.User{Email: "carol@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		auth, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "dave@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := auth.Login(context.Background(), models.User{Email: "dave@example.com", Password: "x"})
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("empty credentials", func(t *testing.T) {
		auth, _ := newTestAuthService(t)
		_, err := auth.Login(context.Background(), models.User{Email: "carol@example.com"})
		assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	})
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	auth, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).
		Return(models.User{UserID: 5, Email: "eve@example.com", PasswordHash: "abc"}, nil)

	user, err := auth.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "eve@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	auth, _ := newTestAuthService(t)

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	auth, _ := newTestAuthService(t)

	foreign, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, testTokenSignKey)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := auth.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
	}
}
