package service

import (
	"context"
	"testing"

	"townmate-be/internal/dto"
	"townmate-be/internal/model"
	"townmate-be/pkg/engine/prefs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferenceRepo struct {
	rows     map[uuid.UUID]*model.UserPreference
	upserted *model.UserPreference
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{rows: make(map[uuid.UUID]*model.UserPreference)}
}

func (f *fakePreferenceRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPreference, error) {
	return f.rows[userID], nil
}

func (f *fakePreferenceRepo) Upsert(ctx context.Context, pref *model.UserPreference) error {
	f.upserted = pref
	f.rows[pref.UserID] = pref
	return nil
}

func TestGetPreferencesEmpty(t *testing.T) {
	svc := NewPreferenceService(newFakePreferenceRepo())

	resp, err := svc.GetPreferences(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, resp.LikedPrompts)
	assert.Empty(t, resp.DislikedPrompts)
	assert.Zero(t, resp.Completeness)
}

func TestUpdatePreferences(t *testing.T) {
	repo := newFakePreferenceRepo()
	svc := NewPreferenceService(repo)
	userID := uuid.New()

	req := &dto.UpdatePreferencesRequest{
		LikedPrompts:    []string{prefs.PromptBeachDay, prefs.PromptCoffeeCrawl},
		DislikedPrompts: []string{prefs.PromptLongHikes},
	}
	resp, err := svc.UpdatePreferences(context.Background(), userID, req)
	require.NoError(t, err)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, userID, repo.upserted.UserID)
	assert.InDelta(t, 3.0/float64(prefs.TotalTrainingPrompts), resp.Completeness, 1e-9)

	got, err := svc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, req.LikedPrompts, got.LikedPrompts)
	assert.ElementsMatch(t, req.DislikedPrompts, got.DislikedPrompts)
}

func TestUpdatePreferencesRejectsUnknownPrompt(t *testing.T) {
	repo := newFakePreferenceRepo()
	svc := NewPreferenceService(repo)

	req := &dto.UpdatePreferencesRequest{
		LikedPrompts: []string{"jet-skiing"},
	}
	_, err := svc.UpdatePreferences(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown training prompt")
	assert.Nil(t, repo.upserted, "nothing may be written on validation failure")
}
