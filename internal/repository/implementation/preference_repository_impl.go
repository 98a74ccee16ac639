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

type PreferenceRepositoryImpl struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{db: db}
}

func (r *PreferenceRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No training yet is a normal state, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, pref *model.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(pref).Error
}
