package service

import (
	"context"
	"fmt"
	"time"

	"townmate-be/internal/dto"
	"townmate-be/internal/model"
	"townmate-be/internal/repository/contract"
	"townmate-be/pkg/engine/prefs"

	"github.com/google/uuid"
)

type IPreferenceService interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*dto.PreferencesResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)
}

type preferenceService struct {
	repo contract.PreferenceRepository
}

func NewPreferenceService(repo contract.PreferenceRepository) IPreferenceService {
	return &preferenceService{repo: repo}
}

func (s *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*dto.PreferencesResponse, error) {
	row, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &dto.PreferencesResponse{
			LikedPrompts:    []string{},
			DislikedPrompts: []string{},
		}, nil
	}
	profile := prefs.NewProfile(row.LikedPrompts, row.DislikedPrompts)
	return &dto.PreferencesResponse{
		LikedPrompts:    row.LikedPrompts,
		DislikedPrompts: row.DislikedPrompts,
		Completeness:    profile.Completeness(),
	}, nil
}

func (s *preferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	for _, p := range append(append([]string{}, req.LikedPrompts...), req.DislikedPrompts...) {
		if !prefs.KnownPrompt(p) {
			return nil, fmt.Errorf("unknown training prompt: %s", p)
		}
	}

	row := &model.UserPreference{
		UserID:          userID,
		LikedPrompts:    req.LikedPrompts,
		DislikedPrompts: req.DislikedPrompts,
		UpdatedAt:       time.Now(),
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return nil, err
	}

	profile := prefs.NewProfile(req.LikedPrompts, req.DislikedPrompts)
	return &dto.PreferencesResponse{
		LikedPrompts:    req.LikedPrompts,
		DislikedPrompts: req.DislikedPrompts,
		Completeness:    profile.Completeness(),
	}, nil
}
