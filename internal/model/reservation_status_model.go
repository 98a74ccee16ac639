package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the latest observation for one call job. Each poll
// overwrites the row, so the table always shows current state per job.
type ReservationStatus struct {
	JobID           string    `gorm:"type:varchar(64);primaryKey" json:"job_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_reservation_status_user" json:"user_id"`
	SessionID       uuid.UUID `gorm:"type:uuid;not null" json:"session_id"`
	RestaurantName  string    `gorm:"type:varchar(200);not null" json:"restaurant_name"`
	ReservationTime string    `gorm:"type:varchar(50)" json:"reservation_time"`
	PartySize       int       `json:"party_size"`
	Status          string    `gorm:"type:varchar(30)" json:"status"`
	Decision        string    `gorm:"type:varchar(30)" json:"decision,omitempty"`
	LastError       string    `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ReservationStatus) TableName() string {
	return "reservation_status_log"
}
