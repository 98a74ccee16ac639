package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"townmate-be/internal/dto"
	"townmate-be/internal/model"
	"townmate-be/internal/pkg/logger"
	"townmate-be/internal/repository/contract"
	"townmate-be/pkg/calling"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	statusKeyPrefix = "reservation_status:"
	statusTTL       = 30 * time.Minute
)

// ReservationStatusService persists every poll observation and mirrors the
// latest one into Redis so the status endpoint stays cheap while clients
// poll it. It is the poller's RecordSink.
type ReservationStatusService struct {
	repo   contract.ReservationStatusRepository
	rdb    *redis.Client
	logger logger.ILogger
}

func NewReservationStatusService(repo contract.ReservationStatusRepository, rdb *redis.Client, log logger.ILogger) *ReservationStatusService {
	return &ReservationStatusService{repo: repo, rdb: rdb, logger: log}
}

var _ calling.RecordSink = (*ReservationStatusService)(nil)

func (s *ReservationStatusService) UpsertStatus(ctx context.Context, rec calling.StatusRecord) error {
	row, err := s.toModel(rec)
	if err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return err
	}

	if s.rdb != nil {
		data, err := json.Marshal(rec)
		if err == nil {
			if err := s.rdb.Set(ctx, statusKeyPrefix+rec.JobID, data, statusTTL).Err(); err != nil {
				// Redis is a read-through accelerator; the DB row is the
				// source of truth.
				s.logger.Warn("ReservationStatusService", "Redis mirror write failed", map[string]interface{}{
					"job_id": rec.JobID,
					"error":  err.Error(),
				})
			}
		}
	}
	return nil
}

// GetStatus serves the status endpoint, Redis first, then the database.
func (s *ReservationStatusService) GetStatus(ctx context.Context, userID uuid.UUID, jobID string) (*dto.ReservationStatusResponse, error) {
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, statusKeyPrefix+jobID).Bytes(); err == nil {
			var rec calling.StatusRecord
			if json.Unmarshal(data, &rec) == nil && rec.UserID == userID.String() {
				return &dto.ReservationStatusResponse{
					JobId:           rec.JobID,
					RestaurantName:  rec.RestaurantName,
					ReservationTime: rec.ReservationTime,
					PartySize:       rec.PartySize,
					Status:          rec.Status,
					Decision:        rec.Decision,
					LastError:       rec.LastError,
					UpdatedAt:       rec.UpdatedAt,
				}, nil
			}
		}
	}

	row, err := s.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, errors.New("reservation job not found")
	}
	return &dto.ReservationStatusResponse{
		JobId:           row.JobID,
		RestaurantName:  row.RestaurantName,
		ReservationTime: row.ReservationTime,
		PartySize:       row.PartySize,
		Status:          row.Status,
		Decision:        row.Decision,
		LastError:       row.LastError,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

// GetRecent lists the user's recent call jobs, newest first.
func (s *ReservationStatusService) GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ReservationStatusResponse, error) {
	rows, err := s.repo.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationStatusResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ReservationStatusResponse{
			JobId:           row.JobID,
			RestaurantName:  row.RestaurantName,
			ReservationTime: row.ReservationTime,
			PartySize:       row.PartySize,
			Status:          row.Status,
			Decision:        row.Decision,
			LastError:       row.LastError,
			UpdatedAt:       row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *ReservationStatusService) toModel(rec calling.StatusRecord) (*model.ReservationStatus, error) {
	userID, err := uuid.Parse(rec.UserID)
	if err != nil {
		return nil, err
	}
	sessionID, err := uuid.Parse(rec.SessionID)
	if err != nil {
		return nil, err
	}
	return &model.ReservationStatus{
		JobID:           rec.JobID,
		UserID:          userID,
		SessionID:       sessionID,
		RestaurantName:  rec.RestaurantName,
		ReservationTime: rec.ReservationTime,
		PartySize:       rec.PartySize,
		Status:          rec.Status,
		Decision:        rec.Decision,
		LastError:       rec.LastError,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}
