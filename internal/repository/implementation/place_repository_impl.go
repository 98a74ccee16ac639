package implementation

import (
	"context"
	"errors"

	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceRepositoryImpl struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) contract.PlaceRepository {
	return &PlaceRepositoryImpl{db: db}
}

func (r *PlaceRepositoryImpl) FindAllActive(ctx context.Context) ([]*model.Place, error) {
	var places []*model.Place
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&places).Error
	return places, err
}

func (r *PlaceRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]*model.Place, error) {
	var places []*model.Place
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("rating DESC").
		Find(&places).Error
	return places, err
}

func (r *PlaceRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Place, error) {
	var place model.Place
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepositoryImpl) UpsertBulk(ctx context.Context, places []*model.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&places).Error
}
