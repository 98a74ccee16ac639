package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatSession is a persisted conversation thread. The live dialog state
// (clarification, draft, memory) lives in the in-memory session store and
// is snapshotted here so a session survives a restart.
type ChatSession struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_chat_sessions_user" json:"user_id"`
	Title     string         `gorm:"type:varchar(200);not null" json:"title"`
	State     datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is a single transcript entry, user or assistant.
type ChatMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID uuid.UUID      `gorm:"type:uuid;not null;index:idx_chat_messages_session" json:"session_id"`
	Role      string         `gorm:"type:varchar(20);not null" json:"role"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
