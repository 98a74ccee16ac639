package implementation

import (
	"context"
	"errors"
	"time"

	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{db: db}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *model.ChatSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *model.ChatSession) error {
	now := time.Now()
	session.UpdatedAt = &now
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ChatSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("chat session not found")
	}
	return nil
}

func (r *ChatSessionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatSessionRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

type ChatMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: db}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ChatMessageRepositoryImpl) FindBySessionID(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*model.ChatMessage, error) {
	var msgs []*model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatMessageRepositoryImpl) DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.ChatMessage{}).Error
}
