package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Event struct {
	ID        string
	Name      string
	StartDate null.Time
	EndDate   null.Time
	Location  null.String
}

// EventUsage links equipment to an event with its check-out history.
type EventUsage struct {
	ID             string
	EquipmentID    string
	EventID        string
	CheckedOut     null.Time
	CheckedIn      null.Time
	CheckedOutByID null.String
	CheckedInByID  null.String
	CreatedAt      time.Time
}
