package dto

import "time"

type PhotoDTO struct {
	ID        string    `json:"id"`
	PhotoURL  string    `json:"photoUrl"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}
