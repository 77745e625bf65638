package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gear-tracker/internal/entities"
	apperrors "gear-tracker/pkg/errors"
)

type NewPhoto struct {
	PhotoURL   string
	StorageKey string
}

type PhotoRepositoryInterface interface {
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentPhoto, error)
	FindByID(ctx context.Context, equipmentID, photoID string) (*entities.EquipmentPhoto, error)
	CreateBatch(ctx context.Context, equipmentID string, photos []NewPhoto) ([]entities.EquipmentPhoto, error)
	Delete(ctx context.Context, photoID string) error
	PromoteOldest(ctx context.Context, equipmentID string) error
	PrimaryByEquipmentIDs(ctx context.Context, equipmentIDs []string) (map[string]entities.EquipmentPhoto, error)
}

type PhotoRepository struct {
	storage *pgxpool.Pool
}

func NewPhotoRepository(storage *pgxpool.Pool) PhotoRepositoryInterface {
	return &PhotoRepository{storage: storage}
}

const photoColumns = "id, equipment_id, photo_url, storage_key, is_primary, created_at"

// ListByEquipment returns the photos newest-first, the order the
// detail view presents them in.
func (r *PhotoRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentPhoto, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM equipment_photos
		WHERE equipment_id = $1
		ORDER BY created_at DESC, id DESC
	`, photoColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	defer rows.Close()

	photos := []entities.EquipmentPhoto{}
	for rows.Next() {
		var p entities.EquipmentPhoto
		if err := scanPhoto(rows, &p); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) FindByID(ctx context.Context, equipmentID, photoID string) (*entities.EquipmentPhoto, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM equipment_photos
		WHERE equipment_id = $1 AND id = $2
	`, photoColumns)

	var p entities.EquipmentPhoto
	err := scanPhoto(r.storage.QueryRow(ctx, query, equipmentID, photoID), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CreateBatch inserts the records of one upload batch in a single
// transaction. The first photo becomes primary only when the equipment
// has no primary photo yet.
func (r *PhotoRepository) CreateBatch(ctx context.Context, equipmentID string, photos []NewPhoto) ([]entities.EquipmentPhoto, error) {
	created := make([]entities.EquipmentPhoto, 0, len(photos))

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		hasPrimary, err := hasPrimaryPhoto(ctx, tx, equipmentID)
		if err != nil {
			return err
		}

		for i, photo := range photos {
			p, err := insertPhoto(ctx, tx, equipmentID, photo, !hasPrimary && i == 0)
			if err != nil {
				return err
			}
			created = append(created, *p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, photoID string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment_photos WHERE id = $1", photoID)
	if err != nil {
		return fmt.Errorf("deleting photo record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PromoteOldest marks the oldest remaining photo primary, as one
// conditional UPDATE. When a primary already exists or no photos
// remain it does nothing, which keeps concurrent promotions benign.
func (r *PhotoRepository) PromoteOldest(ctx context.Context, equipmentID string) error {
	_, err := r.storage.Exec(ctx, `
		UPDATE equipment_photos SET is_primary = TRUE
		WHERE id = (
			SELECT id FROM equipment_photos
			WHERE equipment_id = $1
			ORDER BY created_at ASC, id ASC
			LIMIT 1
		)
		AND NOT EXISTS (
			SELECT 1 FROM equipment_photos WHERE equipment_id = $1 AND is_primary
		)
	`, equipmentID)
	if err != nil {
		return fmt.Errorf("promoting oldest photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) PrimaryByEquipmentIDs(ctx context.Context, equipmentIDs []string) (map[string]entities.EquipmentPhoto, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM equipment_photos
		WHERE equipment_id = ANY($1) AND is_primary
	`, photoColumns)

	rows, err := r.storage.Query(ctx, query, equipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("loading primary photos: %w", err)
	}
	defer rows.Close()

	result := make(map[string]entities.EquipmentPhoto, len(equipmentIDs))
	for rows.Next() {
		var p entities.EquipmentPhoto
		if err := scanPhoto(rows, &p); err != nil {
			return nil, err
		}
		result[p.EquipmentID] = p
	}
	return result, rows.Err()
}

func hasPrimaryPhoto(ctx context.Context, q Querier, equipmentID string) (bool, error) {
	var hasPrimary bool
	err := q.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM equipment_photos WHERE equipment_id = $1 AND is_primary)",
		equipmentID,
	).Scan(&hasPrimary)
	if err != nil {
		return false, fmt.Errorf("checking primary photo: %w", err)
	}
	return hasPrimary, nil
}

func insertPhoto(ctx context.Context, q Querier, equipmentID string, photo NewPhoto, isPrimary bool) (*entities.EquipmentPhoto, error) {
	query := fmt.Sprintf(`
		INSERT INTO equipment_photos (equipment_id, photo_url, storage_key, is_primary)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, photoColumns)

	var p entities.EquipmentPhoto
	err := scanPhoto(q.QueryRow(ctx, query, equipmentID, photo.PhotoURL, photo.StorageKey, isPrimary), &p)
	if err != nil {
		return nil, fmt.Errorf("inserting photo record: %w", err)
	}
	return &p, nil
}

func scanPhoto(row pgx.Row, p *entities.EquipmentPhoto) error {
	return row.Scan(&p.ID, &p.EquipmentID, &p.PhotoURL, &p.StorageKey, &p.IsPrimary, &p.CreatedAt)
}
