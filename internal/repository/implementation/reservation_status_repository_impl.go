package implementation

import (
	"context"
	"errors"

	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationStatusRepositoryImpl struct {
	db *gorm.DB
}

func NewReservationStatusRepository(db *gorm.DB) contract.ReservationStatusRepository {
	return &ReservationStatusRepositoryImpl{db: db}
}

func (r *ReservationStatusRepositoryImpl) Upsert(ctx context.Context, rec *model.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

func (r *ReservationStatusRepositoryImpl) GetByJobID(ctx context.Context, jobID string) (*model.ReservationStatus, error) {
	var rec model.ReservationStatus
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReservationStatusRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ReservationStatus, error) {
	var recs []*model.ReservationStatus
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
