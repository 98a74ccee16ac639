package dto

import "time"

type ReservationStatusResponse struct {
	JobId           string    `json:"job_id"`
	RestaurantName  string    `json:"restaurant_name"`
	ReservationTime string    `json:"reservation_time,omitempty"`
	PartySize       int       `json:"party_size,omitempty"`
	Status          string    `json:"status"`
	Decision        string    `json:"decision,omitempty"`
	LastError       string    `json:"last_error,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}
