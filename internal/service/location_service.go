package service

import (
	"context"
	"time"

	"townmate-be/internal/dto"
	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ILocationService interface {
	GetSavedLocations(ctx context.Context, userID uuid.UUID) ([]dto.SavedLocationResponse, error)
	CreateSavedLocation(ctx context.Context, userID uuid.UUID, req *dto.CreateSavedLocationRequest) (*dto.SavedLocationResponse, error)
	DeleteSavedLocation(ctx context.Context, userID, id uuid.UUID) error
}

type locationService struct {
	repo contract.SavedLocationRepository
}

func NewLocationService(repo contract.SavedLocationRepository) ILocationService {
	return &locationService{repo: repo}
}

func (s *locationService) GetSavedLocations(ctx context.Context, userID uuid.UUID) ([]dto.SavedLocationResponse, error) {
	rows, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SavedLocationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SavedLocationResponse{
			Id:        row.ID,
			Label:     row.Label,
			Lat:       row.Lat,
			Lng:       row.Lng,
			IsDefault: row.IsDefault,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (s *locationService) CreateSavedLocation(ctx context.Context, userID uuid.UUID, req *dto.CreateSavedLocationRequest) (*dto.SavedLocationResponse, error) {
	row := &model.SavedLocation{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     req.Label,
		Lat:       req.Lat,
		Lng:       req.Lng,
		IsDefault: req.IsDefault,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	return &dto.SavedLocationResponse{
		Id:        row.ID,
		Label:     row.Label,
		Lat:       row.Lat,
		Lng:       row.Lng,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (s *locationService) DeleteSavedLocation(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
