package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name          string       `json:"name" validate:"required"`
	Type          string       `json:"type" validate:"required"`
	CategoryID    null.String  `json:"categoryId" validate:"omitempty,uuid4"`
	Brand         null.String  `json:"brand"`
	Model         null.String  `json:"model"`
	SerialNumber  null.String  `json:"serialNumber"`
	PurchaseDate  null.Time    `json:"purchaseDate"`
	PurchasePrice null.Float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	CurrentValue  null.Float64 `json:"currentValue" validate:"omitempty,gte=0"`
	Condition     null.String  `json:"condition" validate:"omitempty,equipment_condition"`
	Notes         null.String  `json:"notes"`
	Location      null.String  `json:"location"`
	AssignedToID  null.String  `json:"assignedToId" validate:"omitempty,uuid4"`
}

// UpdateEquipmentDTO applies only the fields present in the body.
// The organization reference is never client-writable.
type UpdateEquipmentDTO struct {
	Name          null.String  `json:"name" validate:"omitempty,min=1"`
	Type          null.String  `json:"type" validate:"omitempty,min=1"`
	CategoryID    null.String  `json:"categoryId" validate:"omitempty,uuid4"`
	Brand         null.String  `json:"brand"`
	Model         null.String  `json:"model"`
	SerialNumber  null.String  `json:"serialNumber"`
	PurchaseDate  null.Time    `json:"purchaseDate"`
	PurchasePrice null.Float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	CurrentValue  null.Float64 `json:"currentValue" validate:"omitempty,gte=0"`
	Condition     null.String  `json:"condition" validate:"omitempty,equipment_condition"`
	Notes         null.String  `json:"notes"`
	Location      null.String  `json:"location"`
	AssignedToID  null.String  `json:"assignedToId" validate:"omitempty,uuid4"`
}

type EquipmentDTO struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Type                 string                   `json:"type"`
	Category             *ShortCategoryDTO        `json:"category"`
	Brand                null.String              `json:"brand"`
	Model                null.String              `json:"model"`
	SerialNumber         null.String              `json:"serialNumber"`
	PurchaseDate         null.Time                `json:"purchaseDate"`
	PurchasePrice        null.Float64             `json:"purchasePrice"`
	CurrentValue         null.Float64             `json:"currentValue"`
	Condition            null.String              `json:"condition"`
	Notes                null.String              `json:"notes"`
	Location             null.String              `json:"location"`
	AssignedTo           *ShortUserDTO            `json:"assignedTo"`
	Photos               []PhotoDTO               `json:"photos"`
	MaintenanceSchedules []MaintenanceScheduleDTO `json:"maintenanceSchedules"`
	MaintenanceLogs      []MaintenanceLogDTO      `json:"maintenanceLogs"`
	EventUsages          []EventUsageDTO          `json:"eventEquipment"`
	CreatedAt            time.Time                `json:"createdAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
}

// EquipmentListItemDTO is the listing projection: the record plus its
// category, primary photo, next maintenance schedule and assignee.
type EquipmentListItemDTO struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Type          string                   `json:"type"`
	Category      *ShortCategoryDTO        `json:"category"`
	Brand         null.String              `json:"brand"`
	Model         null.String              `json:"model"`
	SerialNumber  null.String              `json:"serialNumber"`
	PurchaseDate  null.Time                `json:"purchaseDate"`
	PurchasePrice null.Float64             `json:"purchasePrice"`
	CurrentValue  null.Float64             `json:"currentValue"`
	Condition     null.String              `json:"condition"`
	Location      null.String              `json:"location"`
	AssignedTo    *ShortUserDTO            `json:"assignedTo"`
	PrimaryPhoto  *PhotoDTO                `json:"primaryPhoto"`
	NextSchedule  *MaintenanceScheduleDTO  `json:"nextMaintenance"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}
