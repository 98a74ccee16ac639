package contract

import (
	"context"

	"townmate-be/internal/model"

	"github.com/google/uuid"
)

type ReservationStatusRepository interface {
	Upsert(ctx context.Context, rec *model.ReservationStatus) error
	GetByJobID(ctx context.Context, jobID string) (*model.ReservationStatus, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ReservationStatus, error)
}
