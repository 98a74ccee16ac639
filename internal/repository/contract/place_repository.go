package contract

import (
	"context"

	"townmate-be/internal/model"
)

type PlaceRepository interface {
	FindAllActive(ctx context.Context) ([]*model.Place, error)
	FindByCategory(ctx context.Context, category string) ([]*model.Place, error)
	FindByID(ctx context.Context, id string) (*model.Place, error)
	UpsertBulk(ctx context.Context, places []*model.Place) error
}
