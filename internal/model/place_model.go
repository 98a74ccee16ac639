package model

import (
	"time"

	"gorm.io/datatypes"
)

// Place is the persisted catalog row. The engine works on the lighter
// pkg/store representation; the mapper converts between the two.
type Place struct {
	ID            string                      `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string                      `gorm:"type:varchar(200);not null" json:"name"`
	Category      string                      `gorm:"type:varchar(50);not null;index:idx_places_category" json:"category"`
	Subcategory   string                      `gorm:"type:varchar(50)" json:"subcategory,omitempty"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Features      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`
	Price         int                         `gorm:"not null;default:1" json:"price"`
	Rating        float64                     `gorm:"not null;default:0" json:"rating"`
	Lat           float64                     `gorm:"not null" json:"lat"`
	Lng           float64                     `gorm:"not null" json:"lng"`
	DistanceLabel string                      `gorm:"type:varchar(50)" json:"distance_label,omitempty"`
	DurationLabel string                      `gorm:"type:varchar(50)" json:"duration_label,omitempty"`
	Description   string                      `gorm:"type:text" json:"description,omitempty"`
	IsActive      bool                        `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Place) TableName() string {
	return "places"
}
