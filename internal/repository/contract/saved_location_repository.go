package contract

import (
	"context"

	"townmate-be/internal/model"

	"github.com/google/uuid"
)

type SavedLocationRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*model.SavedLocation, error)
	FindDefault(ctx context.Context, userID uuid.UUID) (*model.SavedLocation, error)
	Create(ctx context.Context, loc *model.SavedLocation) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
