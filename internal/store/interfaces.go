package store

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists sync server accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the server-assigned
	// ID and creation time. A duplicate email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when the email is unknown.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when the ID is unknown.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BlobRepository stores opaque encrypted blobs per user with optimistic
// versioning. The server never sees plaintext.
type BlobRepository interface {
	ListBlobs(ctx context.Context, userID int64, prefix string) ([]models.BlobInfo, error)
	GetBlob(ctx context.Context, userID int64, key string) (models.Blob, error)

	// PutBlob creates or replaces a blob. Unless req.Force is set, the stored
	// version must equal req.BaseVersion (zero meaning "must not exist"),
	// otherwise [ErrVersionConflict] is returned.
	PutBlob(ctx context.Context, userID int64, req models.BlobPutRequest) (models.Blob, error)

	// DeleteBlob returns [ErrBlobNotFound] when nothing was deleted.
	DeleteBlob(ctx context.Context, userID int64, key string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
