package services

import (
	"context"

	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/repositories"
	apperrors "gear-tracker/pkg/errors"
)

type CategoryServiceInterface interface {
	List(ctx context.Context, orgID string) ([]dto.CategoryDTO, error)
	Create(ctx context.Context, orgID string, in dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) List(ctx context.Context, orgID string) ([]dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryDTO, len(categories))
	for i, c := range categories {
		out[i] = toCategoryDTO(c)
	}
	return out, nil
}

// Create rejects a duplicate name within the organization. The same
// name in another organization is fine.
func (s *CategoryService) Create(ctx context.Context, orgID string, in dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, orgID, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	created, err := s.categoryRepo.Create(ctx, orgID, in)
	if err != nil {
		return nil, err
	}

	out := toCategoryDTO(*created)
	return &out, nil
}
