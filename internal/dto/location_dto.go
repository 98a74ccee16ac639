package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSavedLocationRequest struct {
	Label     string  `json:"label" validate:"required,max=50"`
	Lat       float64 `json:"lat" validate:"required"`
	Lng       float64 `json:"lng" validate:"required"`
	IsDefault bool    `json:"is_default"`
}

type SavedLocationResponse struct {
	Id        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
