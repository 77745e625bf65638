package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/entities"
	apperrors "gear-tracker/pkg/errors"
)

type CategoryRepositoryInterface interface {
	List(ctx context.Context, orgID string) ([]entities.EquipmentCategory, error)
	ExistsByName(ctx context.Context, orgID, name string) (bool, error)
	Create(ctx context.Context, orgID string, in dto.CreateCategoryDTO) (*entities.EquipmentCategory, error)
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

const categoryColumns = "id, organization_id, name, parent_category_id, created_at, updated_at"

func (r *CategoryRepository) List(ctx context.Context, orgID string) ([]entities.EquipmentCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM equipment_categories
		WHERE organization_id = $1
		ORDER BY name ASC
	`, categoryColumns)

	rows, err := r.storage.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []entities.EquipmentCategory{}
	for rows.Next() {
		var c entities.EquipmentCategory
		if err := scanCategory(rows, &c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, orgID, name string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM equipment_categories WHERE organization_id = $1 AND name = $2)",
		orgID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking category name: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) Create(ctx context.Context, orgID string, in dto.CreateCategoryDTO) (*entities.EquipmentCategory, error) {
	query := fmt.Sprintf(`
		INSERT INTO equipment_categories (organization_id, name, parent_category_id)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, categoryColumns)

	var c entities.EquipmentCategory
	err := scanCategory(r.storage.QueryRow(ctx, query, orgID, in.Name, in.ParentCategoryID), &c)
	if err != nil {
		// the unique index backs up the pre-check under concurrency
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	return &c, nil
}

func scanCategory(row pgx.Row, c *entities.EquipmentCategory) error {
	return row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.ParentCategoryID, &c.CreatedAt, &c.UpdatedAt)
}
