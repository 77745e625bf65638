package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Runner struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRunner(db *pgxpool.Pool, logger *zap.Logger) *Runner {
	return &Runner{db: db, logger: logger}
}

// Run seeds a demo organization with users, categories and equipment.
// Every insert is idempotent, so reruns are safe.
func (r *Runner) Run(ctx context.Context) error {
	var orgID string
	err := r.db.QueryRow(ctx, `
		INSERT INTO organizations (name)
		VALUES ($1)
		ON CONFLICT DO NOTHING
		RETURNING id
	`, demoOrganization).Scan(&orgID)
	if err != nil {
		// no row back means the organization already exists
		err = r.db.QueryRow(ctx, "SELECT id FROM organizations WHERE name = $1", demoOrganization).Scan(&orgID)
		if err != nil {
			return fmt.Errorf("seeding organization: %w", err)
		}
	}

	userIDs := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		var id string
		err := r.db.QueryRow(ctx, `
			INSERT INTO users (organization_id, name, email)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, orgID, u.Name, u.Email).Scan(&id)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
		userIDs = append(userIDs, id)
	}

	categoryIDs := map[string]string{}
	for _, name := range demoCategories {
		var id string
		err := r.db.QueryRow(ctx, `
			INSERT INTO equipment_categories (organization_id, name)
			VALUES ($1, $2)
			ON CONFLICT (organization_id, name) DO UPDATE SET updated_at = NOW()
			RETURNING id
		`, orgID, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	for i, e := range demoEquipment {
		assignee := userIDs[i%len(userIDs)]
		_, err := r.db.Exec(ctx, `
			INSERT INTO equipment (
				organization_id, name, type, category_id, brand, model,
				serial_number, condition, location, purchase_price,
				current_value, assigned_to_id
			)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
			WHERE NOT EXISTS (
				SELECT 1 FROM equipment WHERE organization_id = $1 AND name = $2
			)
		`, orgID, e.Name, e.Type, categoryIDs[e.Category], e.Brand, e.Model,
			e.SerialNumber, e.Condition, e.Location, e.PurchasePrice,
			e.CurrentValue, assignee)
		if err != nil {
			return fmt.Errorf("seeding equipment %s: %w", e.Name, err)
		}
	}

	r.logger.Info("seed completed",
		zap.String("organization", demoOrganization),
		zap.Int("users", len(demoUsers)),
		zap.Int("categories", len(demoCategories)),
		zap.Int("equipment", len(demoEquipment)),
	)
	return nil
}
