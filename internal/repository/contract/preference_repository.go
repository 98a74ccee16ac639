package contract

import (
	"context"

	"townmate-be/internal/model"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPreference, error)
	Upsert(ctx context.Context, pref *model.UserPreference) error
}
