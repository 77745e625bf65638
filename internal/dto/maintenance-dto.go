package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceScheduleDTO struct {
	ID              string      `json:"id"`
	MaintenanceType string      `json:"maintenanceType"`
	Frequency       null.String `json:"frequency"`
	NextDue         null.Time   `json:"nextDue"`
	Notes           null.String `json:"notes"`
}

type MaintenanceLogDTO struct {
	ID            string        `json:"id"`
	PerformedBy   *ShortUserDTO `json:"performedBy"`
	PerformedDate time.Time     `json:"performedDate"`
	Description   null.String   `json:"description"`
	Cost          null.Float64  `json:"cost"`
}
