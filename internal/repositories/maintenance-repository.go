package repositories

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"gear-tracker/internal/entities"
)

// MaintenanceLogRow is a log entry joined with the performer identity.
type MaintenanceLogRow struct {
	entities.MaintenanceLog
	PerformerName  null.String
	PerformerEmail null.String
}

type MaintenanceRepositoryInterface interface {
	SchedulesByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceSchedule, error)
	LogsByEquipment(ctx context.Context, equipmentID string) ([]MaintenanceLogRow, error)
	NextScheduleByEquipmentIDs(ctx context.Context, equipmentIDs []string) (map[string]entities.MaintenanceSchedule, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

const scheduleColumns = "id, equipment_id, maintenance_type, frequency, next_due, notes, created_at"

func (r *MaintenanceRepository) SchedulesByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM maintenance_schedules
		WHERE equipment_id = $1
		ORDER BY created_at DESC, id ASC
	`, scheduleColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance schedules: %w", err)
	}
	defer rows.Close()

	schedules := []entities.MaintenanceSchedule{}
	for rows.Next() {
		var s entities.MaintenanceSchedule
		if err := rows.Scan(&s.ID, &s.EquipmentID, &s.MaintenanceType, &s.Frequency, &s.NextDue, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *MaintenanceRepository) LogsByEquipment(ctx context.Context, equipmentID string) ([]MaintenanceLogRow, error) {
	query := `
		SELECT l.id, l.equipment_id, l.performed_by_id, l.performed_date,
			l.description, l.cost, l.created_at, u.name, u.email
		FROM maintenance_logs l
			LEFT JOIN users u ON l.performed_by_id = u.id
		WHERE l.equipment_id = $1
		ORDER BY l.performed_date DESC, l.id ASC
	`

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance logs: %w", err)
	}
	defer rows.Close()

	logs := []MaintenanceLogRow{}
	for rows.Next() {
		var l MaintenanceLogRow
		err := rows.Scan(&l.ID, &l.EquipmentID, &l.PerformedByID, &l.PerformedDate,
			&l.Description, &l.Cost, &l.CreatedAt, &l.PerformerName, &l.PerformerEmail)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// NextScheduleByEquipmentIDs returns the soonest-due schedule per
// equipment, for the listing projection.
func (r *MaintenanceRepository) NextScheduleByEquipmentIDs(ctx context.Context, equipmentIDs []string) (map[string]entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (equipment_id) %s
		FROM maintenance_schedules
		WHERE equipment_id = ANY($1)
		ORDER BY equipment_id, next_due ASC NULLS LAST, id ASC
	`, scheduleColumns)

	rows, err := r.storage.Query(ctx, query, equipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("loading next schedules: %w", err)
	}
	defer rows.Close()

	result := make(map[string]entities.MaintenanceSchedule, len(equipmentIDs))
	for rows.Next() {
		var s entities.MaintenanceSchedule
		if err := rows.Scan(&s.ID, &s.EquipmentID, &s.MaintenanceType, &s.Frequency, &s.NextDue, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		result[s.EquipmentID] = s
	}
	return result, rows.Err()
}
