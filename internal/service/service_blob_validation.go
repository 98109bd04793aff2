package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/validators"
	"github.com/MKhiriev/go-env-keeper/models"
)

// BlobValidationService checks keys and uploads before they reach the
// inner BlobService. The upload integrity hash is verified by the HTTP
// layer.
type BlobValidationService struct {
	inner     BlobService
	validator validators.Validator
}

func NewBlobValidationService() BlobServiceWrapper {
	return &BlobValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *BlobValidationService) ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	return v.inner.ListBlobs(ctx, prefix)
}

func (v *BlobValidationService) GetBlob(ctx context.Context, key string) (models.Blob, error) {
	if err := validateBlobKey(key); err != nil {
		return models.Blob{}, err
	}
	return v.inner.GetBlob(ctx, key)
}

func (v *BlobValidationService) PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.BlobPutResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.PutBlob(ctx, req)
}

func (v *BlobValidationService) DeleteBlob(ctx context.Context, key string) error {
	if err := validateBlobKey(key); err != nil {
		return err
	}
	return v.inner.DeleteBlob(ctx, key)
}

func (v *BlobValidationService) Wrap(wrapper BlobService) BlobService {
	v.inner = wrapper
	return v
}

func validateBlobKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyBlobKey)
	}
	return nil
}
