// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the envkeeper sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. On success the bearer token returned
	// by the server is stored via SetToken.
	Signup(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the bearer
	// token returned by the server is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Refresh exchanges the current token for a fresh one.
	Refresh(ctx context.Context) (models.AuthResponse, error)

	// Me returns the account the current token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ListBlobs returns metadata of the caller's blobs under prefix.
	ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error)

	// GetBlob downloads one blob. A missing key yields [ErrNotFound].
	GetBlob(ctx context.Context, key string) (models.Blob, error)

	// PutBlob uploads a blob. The integrity hash is computed automatically.
	// A stale req.BaseVersion yields [ErrConflict] unless req.Force is set.
	PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error)

	// DeleteBlob removes a blob. A missing key yields [ErrNotFound].
	DeleteBlob(ctx context.Context, key string) error

	// Version returns the server build info.
	Version(ctx context.Context) (models.VersionResponse, error)
}
