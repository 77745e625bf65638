package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type EquipmentCategory struct {
	ID               string
	OrganizationID   string
	Name             string
	ParentCategoryID null.String
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
