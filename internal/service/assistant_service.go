package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"townmate-be/internal/constant"
	"townmate-be/internal/dto"
	"townmate-be/internal/mapper"
	"townmate-be/internal/model"
	"townmate-be/internal/pkg/logger"
	"townmate-be/internal/repository/contract"
	"townmate-be/internal/repository/memory"
	"townmate-be/pkg/calling"
	"townmate-be/pkg/engine"
	"townmate-be/pkg/geo"
	"townmate-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/datatypes"
)

const catalogCacheKey = "catalog:active"

// ReservationCaller is the slice of the calling client the service needs;
// tests substitute it.
type ReservationCaller interface {
	Start(ctx context.Context, draft store.ReservationDraft) (*calling.StartResponse, error)
}

// JobWatcher follows a submitted call job until a decision lands.
type JobWatcher interface {
	Watch(ctx context.Context, rec calling.StatusRecord)
}

type IAssistantService interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateSessionResponse, error)
	GetSessions(ctx context.Context, userID uuid.UUID) ([]dto.GetAllSessionsResponse, error)
	GetHistory(ctx context.Context, userID, sessionID uuid.UUID, limit, offset int) ([]dto.GetChatHistoryResponse, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
	SendChat(ctx context.Context, userID uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type assistantService struct {
	sessionRepo  contract.ChatSessionRepository
	messageRepo  contract.ChatMessageRepository
	prefRepo     contract.PreferenceRepository
	locationRepo contract.SavedLocationRepository
	placeRepo    contract.PlaceRepository
	liveSessions *memory.SessionRepository
	placeMapper  *mapper.PlaceMapper
	engine       *engine.Engine
	caller       ReservationCaller
	watcher      JobWatcher
	catalogCache *cache.Cache
	logger       logger.ILogger
}

func NewAssistantService(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	prefRepo contract.PreferenceRepository,
	locationRepo contract.SavedLocationRepository,
	placeRepo contract.PlaceRepository,
	liveSessions *memory.SessionRepository,
	eng *engine.Engine,
	caller ReservationCaller,
	watcher JobWatcher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		prefRepo:     prefRepo,
		locationRepo: locationRepo,
		placeRepo:    placeRepo,
		liveSessions: liveSessions,
		placeMapper:  mapper.NewPlaceMapper(),
		engine:       eng,
		caller:       caller,
		watcher:      watcher,
		catalogCache: cache.New(5*time.Minute, 10*time.Minute),
		logger:       log,
	}
}

func (s *assistantService) CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateSessionResponse, error) {
	session := &model.ChatSession{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     constant.DefaultSessionTitle,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	greeting := &model.ChatMessage{
		ID:        uuid.New(),
		SessionID: session.ID,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   constant.AssistantGreeting,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, greeting); err != nil {
		return nil, err
	}

	live, err := s.hydrateSession(ctx, session.ID, userID)
	if err != nil {
		return nil, err
	}
	s.liveSessions.Save(live)

	return &dto.CreateSessionResponse{Id: session.ID, Greeting: constant.AssistantGreeting}, nil
}

func (s *assistantService) GetSessions(ctx context.Context, userID uuid.UUID) ([]dto.GetAllSessionsResponse, error) {
	sessions, err := s.sessionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GetAllSessionsResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.GetAllSessionsResponse{
			Id:        sess.ID,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		})
	}
	return out, nil
}

func (s *assistantService) GetHistory(ctx context.Context, userID, sessionID uuid.UUID, limit, offset int) ([]dto.GetChatHistoryResponse, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.FindBySessionID(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GetChatHistoryResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.GetChatHistoryResponse{
			Id:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.messageRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, sessionID, userID); err != nil {
		return err
	}
	s.liveSessions.Delete(sessionID.String())
	return nil
}

// SendChat runs one turn: hydrate dialog state, hand the utterance to the
// engine, execute any directive, persist the transcript, snapshot state.
func (s *assistantService) SendChat(ctx context.Context, userID uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	dbSession, err := s.ownedSession(ctx, userID, req.ChatSessionId)
	if err != nil {
		return nil, err
	}

	live, found := s.liveSessions.Get(req.ChatSessionId.String())
	if !found {
		live, err = s.hydrateSession(ctx, req.ChatSessionId, userID)
		if err != nil {
			return nil, err
		}
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	in := engine.TurnInput{
		Utterance: req.Message,
		Catalog:   catalog,
		Now:       time.Now(),
	}
	if req.Location != nil {
		in.Live = &geo.Point{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	if saved, err := s.locationRepo.FindDefault(ctx, userID); err == nil && saved != nil {
		in.Saved = &geo.Point{Lat: saved.Lat, Lng: saved.Lng}
	}

	resp := s.engine.HandleTurn(live, in)

	out := &dto.SendChatResponse{ChatSessionId: req.ChatSessionId}

	if resp.Directive == engine.DirectiveSubmitReservation {
		jobID, submitErr := s.submitReservation(ctx, resp.Draft, userID, req.ChatSessionId)
		if submitErr != nil {
			// The engine already consumed the draft; the user retries with
			// a fresh request. The raw error goes into the reply so the
			// failure is never silent.
			resp.Text = fmt.Sprintf("I couldn't reach the booking line: %s. Nothing was sent — ask me again and I'll retry.", submitErr.Error())
		} else {
			out.ReservationJobId = jobID
			resp.Text += " I'll let you know the moment I hear back."
		}
	}

	sent, reply, err := s.persistTurn(ctx, req.ChatSessionId, req.Message, resp.Text)
	if err != nil {
		return nil, err
	}
	out.Sent = sent
	out.Reply = reply

	if resp.Nav != nil {
		out.Navigation = &dto.NavigationDTO{TargetView: resp.Nav.TargetView, Label: resp.Nav.Label}
	}
	for _, a := range resp.Actions {
		out.Actions = append(out.Actions, dto.ActionDTO{Kind: a.Kind, Label: a.Label, Data: a.Data})
	}

	s.liveSessions.Save(live)
	s.snapshotSession(ctx, dbSession, live, req.Message)

	return out, nil
}

func (s *assistantService) submitReservation(ctx context.Context, draft *store.ReservationDraft, userID, sessionID uuid.UUID) (string, error) {
	if draft == nil {
		return "", errors.New("no reservation draft to submit")
	}
	started, err := s.caller.Start(ctx, *draft)
	if err != nil {
		return "", err
	}

	rec := calling.StatusRecord{
		JobID:           started.JobID,
		UserID:          userID.String(),
		SessionID:       sessionID.String(),
		RestaurantName:  draft.RestaurantName,
		ReservationTime: draft.ReservationTime,
		PartySize:       draft.PartySize,
		Status:          started.Status,
		UpdatedAt:       time.Now(),
	}
	// Watch outlives the request; the outcome arrives through the event bus.
	go s.watcher.Watch(context.Background(), rec)

	s.logger.Info("AssistantService", "Reservation submitted", map[string]interface{}{
		"job_id":     started.JobID,
		"restaurant": draft.RestaurantName,
	})
	return started.JobID, nil
}

func (s *assistantService) persistTurn(ctx context.Context, sessionID uuid.UUID, userText, replyText string) (*dto.SendChatResponseChat, *dto.SendChatResponseChat, error) {
	sent := &model.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      constant.ChatMessageRoleUser,
		Content:   userText,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, sent); err != nil {
		return nil, nil, err
	}
	reply := &model.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   replyText,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, reply); err != nil {
		return nil, nil, err
	}
	toDTO := func(m *model.ChatMessage) *dto.SendChatResponseChat {
		return &dto.SendChatResponseChat{
			Id:        m.ID,
			Content:   m.Content,
			Role:      m.Role,
			CreatedAt: m.CreatedAt,
		}
	}
	return toDTO(sent), toDTO(reply), nil
}

// snapshotSession writes the live dialog state back to the session row so a
// restart can rehydrate it. Snapshot failures are logged, not fatal.
func (s *assistantService) snapshotSession(ctx context.Context, dbSession *model.ChatSession, live *store.Session, lastUserText string) {
	if dbSession.Title == constant.DefaultSessionTitle && lastUserText != "" {
		dbSession.Title = truncateTitle(lastUserText, 60)
	}
	state, err := json.Marshal(live)
	if err == nil {
		dbSession.State = datatypes.JSON(state)
	}
	if err := s.sessionRepo.Update(ctx, dbSession); err != nil {
		s.logger.Warn("AssistantService", "Failed to snapshot session state", map[string]interface{}{
			"session_id": dbSession.ID,
			"error":      err.Error(),
		})
	}
}

func (s *assistantService) ownedSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.ChatSession, error) {
	sess, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.UserID != userID {
		return nil, errors.New("chat session not found")
	}
	return sess, nil
}

// hydrateSession rebuilds live dialog state from the persisted snapshot and
// the user's training signals.
func (s *assistantService) hydrateSession(ctx context.Context, sessionID, userID uuid.UUID) (*store.Session, error) {
	live := &store.Session{
		ID:     sessionID.String(),
		UserID: userID.String(),
	}

	dbSession, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if dbSession != nil && len(dbSession.State) > 0 {
		if err := json.Unmarshal(dbSession.State, live); err != nil {
			s.logger.Warn("AssistantService", "Discarding unreadable session snapshot", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			live = &store.Session{ID: sessionID.String(), UserID: userID.String()}
		}
	}

	pref, err := s.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		live.LikedPrompts = []string(pref.LikedPrompts)
		live.DislikedPrompts = []string(pref.DislikedPrompts)
	}
	return live, nil
}

func (s *assistantService) loadCatalog(ctx context.Context) ([]store.Place, error) {
	if x, found := s.catalogCache.Get(catalogCacheKey); found {
		return x.([]store.Place), nil
	}
	rows, err := s.placeRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	catalog := s.placeMapper.ToStoreSlice(rows)
	s.catalogCache.Set(catalogCacheKey, catalog, cache.DefaultExpiration)
	return catalog, nil
}

func truncateTitle(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
