package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateCategoryDTO struct {
	Name             string      `json:"name" validate:"required"`
	ParentCategoryID null.String `json:"parentCategoryId" validate:"omitempty,uuid4"`
}

type CategoryDTO struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	ParentCategoryID null.String `json:"parentCategoryId"`
	CreatedAt        time.Time   `json:"createdAt"`
}

type ShortCategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
