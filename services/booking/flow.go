package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wavecrest/models"
)

// StartFlow creates a fresh draft at the service-selection step, assigns
// it a session id and stores it with the session TTL.
func (s *DefaultFlowService) StartFlow(ctx context.Context) (*models.BookingDraft, error) {
	draft := &models.BookingDraft{
		SessionID: uuid.New().String(),
		Step:      models.StepServiceSelect,
		CreatedAt: time.Now(),
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	s.Logger.Debug("booking flow started", zap.String("sessionID", draft.SessionID))
	return draft, nil
}

// GetDraft returns the current draft for a session.
func (s *DefaultFlowService) GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.loadDraft(ctx, sessionID)
}

// CancelFlow deletes the draft. Abandoning before checkout leaves no
// server-side trace beyond this session entry.
func (s *DefaultFlowService) CancelFlow(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking flow: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "flow:" + sessionID
}

func (s *DefaultFlowService) loadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *DefaultFlowService) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(draft.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// mutate runs a transition against the stored draft. The draft is saved
// only when the transition applies; rejections leave the stored state
// untouched.
func (s *DefaultFlowService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingDraft) models.TransitionResult) (*models.BookingDraft, models.TransitionResult, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, models.TransitionResult{}, err
	}
	res := fn(draft)
	if !res.Applied {
		return draft, res, nil
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, models.TransitionResult{}, err
	}
	return draft, res, nil
}
