package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/repositories"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/filestorage"
)

const maxPhotosPerUpload = 5

// PhotoUpload is one file of an upload batch.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type PhotoServiceInterface interface {
	Upload(ctx context.Context, orgID, equipmentID string, uploads []PhotoUpload) ([]dto.PhotoDTO, error)
	Delete(ctx context.Context, orgID, equipmentID, photoID string) error
}

type PhotoService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	photoRepo     repositories.PhotoRepositoryInterface
	fileStorage   filestorage.FileStorage
	logger        *zap.Logger
}

func NewPhotoService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	fileStorage filestorage.FileStorage,
	logger *zap.Logger,
) PhotoServiceInterface {
	return &PhotoService{
		equipmentRepo: equipmentRepo,
		photoRepo:     photoRepo,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// Upload stores the batch in the blob store concurrently, then inserts
// all records in one transaction. The batch is all-or-nothing: any
// failure deletes the blobs that did get stored and reports the error.
func (s *PhotoService) Upload(ctx context.Context, orgID, equipmentID string, uploads []PhotoUpload) ([]dto.PhotoDTO, error) {
	if len(uploads) == 0 {
		return nil, apperrors.NewInvalidInputError("at least one photo is required")
	}
	if len(uploads) > maxPhotosPerUpload {
		return nil, apperrors.NewInvalidInputError("at most %d photos per upload", maxPhotosPerUpload)
	}

	if _, err := s.equipmentRepo.FindByID(ctx, orgID, equipmentID); err != nil {
		return nil, err
	}

	stored := make([]repositories.NewPhoto, len(uploads))
	var g errgroup.Group
	for i, upload := range uploads {
		i, upload := i, upload
		g.Go(func() error {
			key := filestorage.PhotoKey(upload.FileName)
			url, err := s.fileStorage.Save(ctx, key, upload.ContentType, upload.Content)
			if err != nil {
				return fmt.Errorf("storing %s: %w", upload.FileName, err)
			}
			stored[i] = repositories.NewPhoto{PhotoURL: url, StorageKey: key}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cleanupBlobs(ctx, stored)
		return nil, err
	}

	created, err := s.photoRepo.CreateBatch(ctx, equipmentID, stored)
	if err != nil {
		s.cleanupBlobs(ctx, stored)
		return nil, err
	}

	photos := make([]dto.PhotoDTO, len(created))
	for i, p := range created {
		photos[i] = toPhotoDTO(p)
	}
	return photos, nil
}

func (s *PhotoService) cleanupBlobs(ctx context.Context, stored []repositories.NewPhoto) {
	for _, photo := range stored {
		if photo.StorageKey == "" {
			continue
		}
		if err := s.fileStorage.Delete(ctx, photo.StorageKey); err != nil {
			s.logger.Warn("orphaned blob left behind", zap.String("key", photo.StorageKey), zap.Error(err))
		}
	}
}

// Delete removes the blob, then the record, then promotes the oldest
// remaining photo when the deleted one was primary.
func (s *PhotoService) Delete(ctx context.Context, orgID, equipmentID, photoID string) error {
	if _, err := s.equipmentRepo.FindByID(ctx, orgID, equipmentID); err != nil {
		return err
	}

	photo, err := s.photoRepo.FindByID(ctx, equipmentID, photoID)
	if err != nil {
		return err
	}

	if err := s.fileStorage.Delete(ctx, photo.StorageKey); err != nil {
		return fmt.Errorf("deleting blob %s: %w", photo.StorageKey, err)
	}

	if err := s.photoRepo.Delete(ctx, photo.ID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if photo.IsPrimary {
		return s.photoRepo.PromoteOldest(ctx, equipmentID)
	}
	return nil
}
