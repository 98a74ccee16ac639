package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedLocation is a user-pinned base point ("home", "campus"). The
// assistant falls back to it when no live location is attached to a turn.
type SavedLocation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_saved_locations_user" json:"user_id"`
	Label     string    `gorm:"type:varchar(50);not null" json:"label"`
	Lat       float64   `gorm:"not null" json:"lat"`
	Lng       float64   `gorm:"not null" json:"lng"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SavedLocation) TableName() string {
	return "saved_locations"
}
