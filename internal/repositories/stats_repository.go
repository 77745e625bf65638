package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StatsTotals struct {
	TotalEquipment     uint64
	TotalValue         float64
	TotalPurchasePrice float64
}

type GroupCount struct {
	Label string `db:"label"`
	Count uint64 `db:"count"`
}

type StatsRepositoryInterface interface {
	GetTotals(ctx context.Context, orgID string) (*StatsTotals, error)
	CountByCondition(ctx context.Context, orgID string) ([]GroupCount, error)
	CountByCategory(ctx context.Context, orgID string) ([]GroupCount, error)
}

type StatsRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewStatsRepository(storage *pgxpool.Pool, logger *zap.Logger) StatsRepositoryInterface {
	return &StatsRepository{storage: storage, logger: logger}
}

func (r *StatsRepository) GetTotals(ctx context.Context, orgID string) (*StatsTotals, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(current_value), 0),
			COALESCE(SUM(purchase_price), 0)
		FROM equipment
		WHERE organization_id = $1
	`

	totals := &StatsTotals{}
	err := r.storage.QueryRow(ctx, query, orgID).
		Scan(&totals.TotalEquipment, &totals.TotalValue, &totals.TotalPurchasePrice)
	if err != nil {
		return nil, fmt.Errorf("loading totals: %w", err)
	}
	return totals, nil
}

func (r *StatsRepository) CountByCondition(ctx context.Context, orgID string) ([]GroupCount, error) {
	query := `
		SELECT COALESCE(condition, 'UNKNOWN') AS label, COUNT(*) AS count
		FROM equipment
		WHERE organization_id = $1
		GROUP BY 1
		ORDER BY count DESC, label ASC
	`
	return r.groupCounts(ctx, query, orgID)
}

func (r *StatsRepository) CountByCategory(ctx context.Context, orgID string) ([]GroupCount, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized') AS label, COUNT(*) AS count
		FROM equipment e
			LEFT JOIN equipment_categories c ON e.category_id = c.id
		WHERE e.organization_id = $1
		GROUP BY 1
		ORDER BY count DESC, label ASC
	`
	return r.groupCounts(ctx, query, orgID)
}

func (r *StatsRepository) groupCounts(ctx context.Context, query, orgID string) ([]GroupCount, error) {
	rows, err := r.storage.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("loading grouped counts: %w", err)
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[GroupCount])
	if err != nil {
		return nil, fmt.Errorf("collecting grouped counts: %w", err)
	}
	return counts, nil
}
