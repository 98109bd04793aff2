// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, service.Services{AuthService: auth})
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

var tokenExpiry = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{
		SignedString: signed,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(tokenExpiry),
		},
	}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Email:    "alice@example.com",
	Password: "s3cret",
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) models.AuthResponse {
	t.Helper()
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 10
			return u, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(10), u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	resp := decodeAuthResponse(t, rec)
	assert.Equal(t, int64(10), resp.User.UserID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Empty(t, resp.User.Password, "password must never be echoed")
	assert.True(t, tokenExpiry.Equal(resp.ExpiresAt))
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(context.Context, models.User) (models.User, error)
		tokenFn    func(context.Context, models.User) (models.Token, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       "{invalid json}",
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid data",
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "email taken",
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, errors.Join(errors.New("outer"), store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name: "unexpected error",
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, errors.New("db connection lost")
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   app.MsgRegistrationFailed,
		},
		{
			name: "token creation fails",
			registerFn: func(_ context.Context, u models.User) (models.User, error) {
				return u, nil
			},
			tokenFn: func(context.Context, models.User) (models.Token, error) {
				return models.Token{}, errors.New("signing key unavailable")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.registerFn != nil {
				body = userBody(t, validUser)
			}
			h := newHandlerWithAuth(t, &mockAuthService{registerUserFn: tt.registerFn, createTokenFn: tt.tokenFn})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 3, Email: u.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Equal(t, int64(3), decodeAuthResponse(t, rec).User.UserID)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
		wantBody   string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unknown user", store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"unexpected", errors.New("boom"), http.StatusBadGateway, app.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(context.Context, models.User) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// refresh / me
// ─────────────────────────────────────────────

func TestRefresh_IssuesNewToken(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{UserID: id, Email: "bob@example.com"}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(5), u.UserID)
			return stubToken("fresh"), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req = req.WithContext(utils.WithUserID(req.Context(), 5))
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer fresh", rec.Header().Get("Authorization"))
	assert.Equal(t, "bob@example.com", decodeAuthResponse(t, rec).User.Email)
}

func TestMe(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		withUser   bool
		getUserErr error
		wantStatus int
	}{
		{name: "found", userID: 5, withUser: true, wantStatus: http.StatusOK},
		{name: "no user in context", wantStatus: http.StatusBadRequest},
		{name: "account deleted", userID: 5, withUser: true, getUserErr: store.ErrNoUserWasFound, wantStatus: http.StatusUnauthorized},
		{name: "storage failure", userID: 5, withUser: true, getUserErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				getUserFn: func(_ context.Context, id int64) (models.User, error) {
					if tt.getUserErr != nil {
						return models.User{}, tt.getUserErr
					}
					return models.User{UserID: id, Email: "bob@example.com"}, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.withUser {
				req = req.WithContext(utils.WithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()

			h.me(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var user models.User
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
				assert.Equal(t, tt.userID, user.UserID)
			}
		})
	}
}
