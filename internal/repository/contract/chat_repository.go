package contract

import (
	"context"

	"townmate-be/internal/model"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *model.ChatSession) error
	Update(ctx context.Context, session *model.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ChatSession, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*model.ChatSession, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*model.ChatMessage, error)
	DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error
}
