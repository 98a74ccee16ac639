package service

import (
	"context"

	"townmate-be/internal/dto"
	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"
	"townmate-be/pkg/store"
)

type IPlaceService interface {
	ListPlaces(ctx context.Context, category string) (*dto.ListPlacesResponse, error)
	GetPlace(ctx context.Context, id string) (*dto.PlaceResponse, error)
}

type placeService struct {
	repo contract.PlaceRepository
}

func NewPlaceService(repo contract.PlaceRepository) IPlaceService {
	return &placeService{repo: repo}
}

func (s *placeService) ListPlaces(ctx context.Context, category string) (*dto.ListPlacesResponse, error) {
	var rows []*model.Place
	var err error
	if category != "" {
		rows, err = s.repo.FindByCategory(ctx, category)
	} else {
		rows, err = s.repo.FindAllActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	places := make([]dto.PlaceResponse, 0, len(rows))
	for _, row := range rows {
		places = append(places, toPlaceDTO(row))
	}
	return &dto.ListPlacesResponse{Places: places, Total: len(places)}, nil
}

func (s *placeService) GetPlace(ctx context.Context, id string) (*dto.PlaceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	res := toPlaceDTO(row)
	return &res, nil
}

func toPlaceDTO(row *model.Place) dto.PlaceResponse {
	return dto.PlaceResponse{
		Id:            row.ID,
		Name:          row.Name,
		Category:      row.Category,
		Subcategory:   row.Subcategory,
		Tags:          []string(row.Tags),
		Features:      []string(row.Features),
		Price:         row.Price,
		PriceLabel:    store.PriceLabel(row.Price),
		Rating:        row.Rating,
		Lat:           row.Lat,
		Lng:           row.Lng,
		DistanceLabel: row.DistanceLabel,
		DurationLabel: row.DurationLabel,
		Description:   row.Description,
	}
}
