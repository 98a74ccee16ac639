package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type LatLngDTO struct {
	Lat float64 `json:"lat" validate:"required"`
	Lng float64 `json:"lng" validate:"required"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID  `json:"chat_session_id" validate:"required"`
	Message       string     `json:"message" validate:"required,max=2000"`
	Location      *LatLngDTO `json:"location,omitempty"` // live geolocation, if the client has one
}

type NavigationDTO struct {
	TargetView string `json:"target_view"`
	Label      string `json:"label"`
}

type ActionDTO struct {
	Kind  string            `json:"kind"`
	Label string            `json:"label"`
	Data  map[string]string `json:"data,omitempty"`
}

type SendChatResponseChat struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId    uuid.UUID             `json:"chat_session_id"`
	Sent             *SendChatResponseChat `json:"sent"`
	Reply            *SendChatResponseChat `json:"reply"`
	Navigation       *NavigationDTO        `json:"navigation,omitempty"`
	Actions          []ActionDTO           `json:"actions,omitempty"`
	ReservationJobId string                `json:"reservation_job_id,omitempty"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
}
