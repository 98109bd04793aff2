package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

type blobService struct {
	blobRepository store.BlobRepository

	logger *logger.Logger
}

func NewBlobService(blobRepository store.BlobRepository, logger *logger.Logger) BlobService {
	return &blobService{
		blobRepository: blobRepository,
		logger:         logger,
	}
}

func (b *blobService) ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	blobs, err := b.blobRepository.ListBlobs(ctx, userID, prefix)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	if blobs == nil {
		blobs = []models.BlobInfo{}
	}
	return blobs, nil
}

func (b *blobService) GetBlob(ctx context.Context, key string) (models.Blob, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.Blob{}, err
	}
	return b.blobRepository.GetBlob(ctx, userID, key)
}

func (b *blobService) PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.BlobPutResponse{}, err
	}

	blob, err := b.blobRepository.PutBlob(ctx, userID, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*blobService.PutBlob").
			Int64("user_id", userID).
			Str("key", req.Key).
			Int64("base_version", req.BaseVersion).
			Bool("force", req.Force).
			Msg("blob was not stored")
		return models.BlobPutResponse{}, err
	}

	return models.BlobPutResponse{
		ID:        blob.ID,
		Key:       blob.Key,
		Version:   blob.Version,
		UpdatedAt: blob.UpdatedAt,
	}, nil
}

func (b *blobService) DeleteBlob(ctx context.Context, key string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return b.blobRepository.DeleteBlob(ctx, userID, key)
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	return userID, nil
}
