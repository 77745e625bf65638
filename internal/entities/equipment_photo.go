package entities

import "time"

type EquipmentPhoto struct {
	ID          string
	EquipmentID string
	PhotoURL    string
	StorageKey  string
	IsPrimary   bool
	CreatedAt   time.Time
}
