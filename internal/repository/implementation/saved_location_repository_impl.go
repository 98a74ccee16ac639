package implementation

import (
	"context"
	"errors"

	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedLocationRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedLocationRepository(db *gorm.DB) contract.SavedLocationRepository {
	return &SavedLocationRepositoryImpl{db: db}
}

func (r *SavedLocationRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*model.SavedLocation, error) {
	var locs []*model.SavedLocation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&locs).Error
	return locs, err
}

func (r *SavedLocationRepositoryImpl) FindDefault(ctx context.Context, userID uuid.UUID) (*model.SavedLocation, error) {
	var loc model.SavedLocation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *SavedLocationRepositoryImpl) Create(ctx context.Context, loc *model.SavedLocation) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *SavedLocationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavedLocation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("saved location not found")
	}
	return nil
}
