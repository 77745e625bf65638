package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID             string
	OrganizationID string
	Name           string
	Type           string
	CategoryID     null.String
	Brand          null.String
	Model          null.String
	SerialNumber   null.String
	PurchaseDate   null.Time
	PurchasePrice  null.Float64
	CurrentValue   null.Float64
	Condition      null.String
	Notes          null.String
	Location       null.String
	AssignedToID   null.String
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
