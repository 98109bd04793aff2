package service

import (
	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
)

// Services groups the sync server's business services.
type Services struct {
	AuthService    AuthService
	BlobService    BlobService
	AppInfoService AppInfoService
}

// NewServices builds the server services. Blob requests are validated
// before they reach storage.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	blobService := NewBlobValidationService().Wrap(NewBlobService(storages.BlobRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		BlobService:    blobService,
		AppInfoService: appInfoService,
	}, nil
}
