package repositories

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"gear-tracker/internal/entities"
)

// EventUsageRow is an event-equipment link joined with the event and
// the check-out/check-in user identities.
type EventUsageRow struct {
	entities.EventUsage
	Event             entities.Event
	CheckedOutByName  null.String
	CheckedOutByEmail null.String
	CheckedInByName   null.String
	CheckedInByEmail  null.String
}

type EventUsageRepositoryInterface interface {
	RecentByEquipment(ctx context.Context, equipmentID string, limit uint64) ([]EventUsageRow, error)
}

type EventUsageRepository struct {
	storage *pgxpool.Pool
}

func NewEventUsageRepository(storage *pgxpool.Pool) EventUsageRepositoryInterface {
	return &EventUsageRepository{storage: storage}
}

func (r *EventUsageRepository) RecentByEquipment(ctx context.Context, equipmentID string, limit uint64) ([]EventUsageRow, error) {
	query := `
		SELECT ee.id, ee.equipment_id, ee.event_id, ee.checked_out, ee.checked_in,
			ee.checked_out_by_id, ee.checked_in_by_id, ee.created_at,
			ev.id, ev.name, ev.start_date, ev.end_date, ev.location,
			uo.name, uo.email, ui.name, ui.email
		FROM event_equipment ee
			JOIN events ev ON ee.event_id = ev.id
			LEFT JOIN users uo ON ee.checked_out_by_id = uo.id
			LEFT JOIN users ui ON ee.checked_in_by_id = ui.id
		WHERE ee.equipment_id = $1
		ORDER BY ee.checked_out DESC NULLS LAST, ee.id ASC
		LIMIT $2
	`

	rows, err := r.storage.Query(ctx, query, equipmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing event usages: %w", err)
	}
	defer rows.Close()

	usages := []EventUsageRow{}
	for rows.Next() {
		var u EventUsageRow
		err := rows.Scan(
			&u.ID, &u.EquipmentID, &u.EventID, &u.CheckedOut, &u.CheckedIn,
			&u.CheckedOutByID, &u.CheckedInByID, &u.CreatedAt,
			&u.Event.ID, &u.Event.Name, &u.Event.StartDate, &u.Event.EndDate, &u.Event.Location,
			&u.CheckedOutByName, &u.CheckedOutByEmail, &u.CheckedInByName, &u.CheckedInByEmail,
		)
		if err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}
