package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreference holds the training signals collected on the onboarding
// screen. One row per user; prompts are stored by their stable slugs.
type UserPreference struct {
	UserID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"user_id"`
	LikedPrompts    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"liked_prompts"`
	DislikedPrompts datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"disliked_prompts"`
	UpdatedAt       time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
