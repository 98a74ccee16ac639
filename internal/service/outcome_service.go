package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"townmate-be/internal/constant"
	"townmate-be/internal/model"
	"townmate-be/internal/pkg/logger"
	"townmate-be/internal/repository/contract"
	"townmate-be/internal/websocket"
	"townmate-be/pkg/calling"
	"townmate-be/pkg/events"
	pktNats "townmate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IOutcomeService consumes terminal reservation decisions off the in-process
// bus and turns each into a chat message, a websocket push and a NATS event.
type IOutcomeService interface {
	Consume(ctx context.Context) error
}

type outcomeService struct {
	pubSub      *gochannel.GoChannel
	messageRepo contract.ChatMessageRepository
	hub         *websocket.Hub
	natsPub     *pktNats.Publisher
	logger      logger.ILogger
}

func NewOutcomeService(
	pubSub *gochannel.GoChannel,
	messageRepo contract.ChatMessageRepository,
	hub *websocket.Hub,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IOutcomeService {
	return &outcomeService{
		pubSub:      pubSub,
		messageRepo: messageRepo,
		hub:         hub,
		natsPub:     natsPub,
		logger:      log,
	}
}

func (s *outcomeService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, calling.OutcomeTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *outcomeService) processMessage(ctx context.Context, msg *message.Message) {
	var rec calling.StatusRecord
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		s.logger.Error("OutcomeService", "Failed to unmarshal outcome", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become deliverable; drop them
		return
	}

	s.logger.Info("OutcomeService", "Processing reservation outcome", map[string]interface{}{
		"job_id":   rec.JobID,
		"decision": rec.Decision,
	})

	sessionID, err := uuid.Parse(rec.SessionID)
	if err != nil {
		s.logger.Error("OutcomeService", "Outcome carries invalid session id", map[string]interface{}{"session_id": rec.SessionID})
		msg.Ack()
		return
	}
	userID, err := uuid.Parse(rec.UserID)
	if err != nil {
		s.logger.Error("OutcomeService", "Outcome carries invalid user id", map[string]interface{}{"user_id": rec.UserID})
		msg.Ack()
		return
	}

	text := outcomeText(rec)

	chatMsg := &model.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   text,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, chatMsg); err != nil {
		s.logger.Error("OutcomeService", "Failed to persist outcome message", map[string]interface{}{"error": err.Error()})
		msg.Nack() // retriable
		return
	}

	if s.hub != nil {
		s.hub.Send(userID, "reservation_outcome", map[string]interface{}{
			"job_id":          rec.JobID,
			"session_id":      rec.SessionID,
			"restaurant_name": rec.RestaurantName,
			"decision":        rec.Decision,
			"message":         text,
		})
	}

	if s.natsPub != nil {
		evt := events.ReservationOutcomeEvent{
			JobID:          rec.JobID,
			UserID:         rec.UserID,
			RestaurantName: rec.RestaurantName,
			Decision:       rec.Decision,
			OccurredAt:     time.Now(),
		}
		if err := s.natsPub.Publish(ctx, evt); err != nil {
			s.logger.Warn("OutcomeService", "Failed to publish outcome to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}

func outcomeText(rec calling.StatusRecord) string {
	switch rec.Decision {
	case calling.DecisionConfirmed:
		text := fmt.Sprintf("Good news — %s confirmed your reservation", rec.RestaurantName)
		if rec.ReservationTime != "" {
			text += " for " + rec.ReservationTime
		}
		if rec.PartySize > 0 {
			text += fmt.Sprintf(", party of %d", rec.PartySize)
		}
		return text + ". Enjoy!"
	case calling.DecisionDeclined:
		return fmt.Sprintf("Bad luck — %s couldn't take the reservation. Want me to try another spot?", rec.RestaurantName)
	case calling.DecisionDeclinedTimeout:
		return fmt.Sprintf("I couldn't get a hold of %s in time, so nothing is booked. Want me to try again later?", rec.RestaurantName)
	default:
		if rec.LastError != "" {
			return fmt.Sprintf("The call to %s didn't go through (%s). Nothing was booked.", rec.RestaurantName, rec.LastError)
		}
		return fmt.Sprintf("The call to %s didn't go through. Nothing was booked.", rec.RestaurantName)
	}
}
