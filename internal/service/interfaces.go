package service

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BlobService stores the encrypted blobs of the authenticated user. The
// user is taken from the request context.
type BlobService interface {
	ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error)
	GetBlob(ctx context.Context, key string) (models.Blob, error)
	PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error)
	DeleteBlob(ctx context.Context, key string) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// BlobServiceWrapper defines middleware composition for BlobService.
// Implementations wrap an existing BlobService to add behavior such as
// logging or validating.
type BlobServiceWrapper interface {
	Wrap(BlobService) BlobService // returns a decorated BlobService applying additional behavior
}
