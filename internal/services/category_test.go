package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/entities"
	apperrors "gear-tracker/pkg/errors"
)

type fakeCategoryRepo struct {
	categories []entities.EquipmentCategory
}

func (f *fakeCategoryRepo) List(_ context.Context, orgID string) ([]entities.EquipmentCategory, error) {
	out := []entities.EquipmentCategory{}
	for _, c := range f.categories {
		if c.OrganizationID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, orgID, name string) (bool, error) {
	for _, c := range f.categories {
		if c.OrganizationID == orgID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, orgID string, in dto.CreateCategoryDTO) (*entities.EquipmentCategory, error) {
	c := entities.EquipmentCategory{
		ID:               fmt.Sprintf("cat-%d", len(f.categories)+1),
		OrganizationID:   orgID,
		Name:             in.Name,
		ParentCategoryID: in.ParentCategoryID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.categories = append(f.categories, c)
	return &c, nil
}

func TestCreateCategoryDuplicateNameConflicts(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), "org-1", dto.CreateCategoryDTO{Name: "Strings"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "org-1", dto.CreateCategoryDTO{Name: "Strings"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateCategorySameNameInOtherOrganization(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), "org-1", dto.CreateCategoryDTO{Name: "Strings"})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), "org-2", dto.CreateCategoryDTO{Name: "Strings"})
	require.NoError(t, err)
	assert.Equal(t, "Strings", created.Name)
}

func TestListCategoriesScopedToOrganization(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), "org-1", dto.CreateCategoryDTO{Name: "Mics"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "org-2", dto.CreateCategoryDTO{Name: "Cables"})
	require.NoError(t, err)

	categories, err := svc.List(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Mics", categories[0].Name)
}
