package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/entities"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/utils"
)

// equipmentSortFields is the allow-list mapping query sort keys onto
// columns. An unknown key falls back to the name sort, never an error.
var equipmentSortFields = map[string]string{
	"name":          "e.name",
	"type":          "e.type",
	"condition":     "e.condition",
	"location":      "e.location",
	"purchaseDate":  "e.purchase_date",
	"purchasePrice": "e.purchase_price",
	"currentValue":  "e.current_value",
	"createdAt":     "e.created_at",
}

const equipmentColumns = `e.id, e.organization_id, e.name, e.type, e.category_id,
	e.brand, e.model, e.serial_number, e.purchase_date, e.purchase_price,
	e.current_value, e.condition, e.notes, e.location, e.assigned_to_id,
	e.created_at, e.updated_at, c.name, u.name, u.email`

// EquipmentRow is the equipment record joined with its category name
// and assignee identity.
type EquipmentRow struct {
	entities.Equipment
	CategoryName  null.String
	AssigneeName  null.String
	AssigneeEmail null.String
}

type EquipmentRepositoryInterface interface {
	List(ctx context.Context, orgID string, params utils.ListParams) ([]EquipmentRow, uint64, error)
	ListAll(ctx context.Context, orgID string, params utils.ListParams) ([]EquipmentRow, error)
	FindByID(ctx context.Context, orgID, id string) (*EquipmentRow, error)
	Create(ctx context.Context, orgID string, in dto.CreateEquipmentDTO) (*EquipmentRow, error)
	Update(ctx context.Context, orgID, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, orgID, id string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *EquipmentRepository) baseSelect(orgID string, params utils.ListParams) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("equipment e").
		LeftJoin("equipment_categories c ON e.category_id = c.id").
		LeftJoin("users u ON e.assigned_to_id = u.id").
		Where(sq.Eq{"e.organization_id": orgID})

	if params.CategoryID != "" {
		base = base.Where(sq.Eq{"e.category_id": params.CategoryID})
	}
	if params.Condition != "" {
		base = base.Where(sq.Eq{"e.condition": params.Condition})
	}
	if params.Location != "" {
		base = base.Where(sq.Eq{"e.location": params.Location})
	}
	if params.Search != "" {
		pattern := "%" + escapeLike(params.Search) + "%"
		base = base.Where(sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.brand": pattern},
			sq.ILike{"e.model": pattern},
			sq.ILike{"e.serial_number": pattern},
		})
	}

	return base
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so free-text search
// matches them literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func orderClause(params utils.ListParams) string {
	col, ok := equipmentSortFields[params.SortBy]
	if !ok {
		col = "e.name"
	}
	dir := "ASC"
	if params.SortOrder == "desc" {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, e.id ASC", col, dir)
}

func (r *EquipmentRepository) List(ctx context.Context, orgID string, params utils.ListParams) ([]EquipmentRow, uint64, error) {
	base := r.baseSelect(orgID, params)

	countQuery, countArgs, err := base.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building count query: %w", err)
	}
	var total uint64
	if err = r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting equipment: %w", err)
	}
	if total == 0 {
		return []EquipmentRow{}, 0, nil
	}

	mainQuery, mainArgs, err := base.Columns(equipmentColumns).
		OrderBy(orderClause(params)).
		Limit(params.Limit).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	items, err := scanEquipmentRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll returns the full filtered set without paging, for exports.
func (r *EquipmentRepository) ListAll(ctx context.Context, orgID string, params utils.ListParams) ([]EquipmentRow, error) {
	mainQuery, mainArgs, err := r.baseSelect(orgID, params).
		Columns(equipmentColumns).
		OrderBy(orderClause(params)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building export query: %w", err)
	}

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, fmt.Errorf("listing equipment for export: %w", err)
	}
	defer rows.Close()

	return scanEquipmentRows(rows)
}

func (r *EquipmentRepository) FindByID(ctx context.Context, orgID, id string) (*EquipmentRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipment e
			LEFT JOIN equipment_categories c ON e.category_id = c.id
			LEFT JOIN users u ON e.assigned_to_id = u.id
		WHERE e.organization_id = $1 AND e.id = $2
	`, equipmentColumns)

	row := r.storage.QueryRow(ctx, query, orgID, id)
	item, err := scanEquipmentRow(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, orgID string, in dto.CreateEquipmentDTO) (*EquipmentRow, error) {
	query := `
		INSERT INTO equipment (
			organization_id, name, type, category_id, brand, model,
			serial_number, purchase_date, purchase_price, current_value,
			condition, notes, location, assigned_to_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var id string
	err := r.storage.QueryRow(ctx, query,
		orgID,
		in.Name,
		in.Type,
		in.CategoryID,
		in.Brand,
		in.Model,
		in.SerialNumber,
		in.PurchaseDate,
		in.PurchasePrice,
		in.CurrentValue,
		in.Condition,
		in.Notes,
		in.Location,
		in.AssignedToID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting equipment: %w", err)
	}

	return r.FindByID(ctx, orgID, id)
}

func (r *EquipmentRepository) Update(ctx context.Context, orgID, id string, patch map[string]interface{}) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := psql.Update("equipment").
		SetMap(patch).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating equipment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, orgID, id string) error {
	result, err := r.storage.Exec(ctx,
		"DELETE FROM equipment WHERE organization_id = $1 AND id = $2", orgID, id)
	if err != nil {
		return fmt.Errorf("deleting equipment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanEquipmentRow(row pgx.Row) (*EquipmentRow, error) {
	var item EquipmentRow
	err := row.Scan(
		&item.ID,
		&item.OrganizationID,
		&item.Name,
		&item.Type,
		&item.CategoryID,
		&item.Brand,
		&item.Model,
		&item.SerialNumber,
		&item.PurchaseDate,
		&item.PurchasePrice,
		&item.CurrentValue,
		&item.Condition,
		&item.Notes,
		&item.Location,
		&item.AssignedToID,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.CategoryName,
		&item.AssigneeName,
		&item.AssigneeEmail,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func scanEquipmentRows(rows pgx.Rows) ([]EquipmentRow, error) {
	items := []EquipmentRow{}
	for rows.Next() {
		item, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning equipment row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
