package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceSchedule struct {
	ID              string
	EquipmentID     string
	MaintenanceType string
	Frequency       null.String
	NextDue         null.Time
	Notes           null.String
	CreatedAt       time.Time
}

type MaintenanceLog struct {
	ID            string
	EquipmentID   string
	PerformedByID null.String
	PerformedDate time.Time
	Description   null.String
	Cost          null.Float64
	CreatedAt     time.Time
}
