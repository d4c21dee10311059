package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	blockedRepo "wavecrest/database/repository/blocked"
	"wavecrest/models"
)

// FlowService manages the stateful multi-step booking flow. Every
// transition loads the draft from the session store, applies the change,
// and saves it back. Rejected transitions leave the draft untouched and
// report a reason.
type FlowService interface {
	StartFlow(ctx context.Context) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	CancelFlow(ctx context.Context, sessionID string) error

	SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingDraft, models.TransitionResult, error)
	SelectOption(ctx context.Context, sessionID, optionName string) (*models.BookingDraft, models.TransitionResult, error)
	SelectPackage(ctx context.Context, sessionID, packageName string) (*models.BookingDraft, models.TransitionResult, error)
	SetAddOn(ctx context.Context, sessionID, key string, value int) (*models.BookingDraft, models.TransitionResult, error)
	SetPet(ctx context.Context, sessionID string, pet bool) (*models.BookingDraft, models.TransitionResult, error)
	EnableCombinedOffer(ctx context.Context, sessionID, complementaryOptionName string) (*models.BookingDraft, models.TransitionResult, error)
	DisableCombinedOffer(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error)
	UpdatePersonalInfo(ctx context.Context, sessionID, field, value string) (*models.BookingDraft, models.TransitionResult, error)
	SelectDate(ctx context.Context, sessionID string, date time.Time) (*models.BookingDraft, models.TransitionResult, error)
	Next(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error)
	Back(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error)
	CompletePayment(ctx context.Context, sessionID, bookingID string) (*models.BookingDraft, models.TransitionResult, error)

	Summary(ctx context.Context, sessionID string) (*models.BookingSummary, error)
}

// DefaultFlowService implements FlowService over a Redis session store
// and the mongo blocked-dates repository.
type DefaultFlowService struct {
	Cache       *redis.Client
	BlockedRepo blockedRepo.BlockedDateRepository
	SessionTTL  time.Duration
	Logger      *zap.Logger
}

// NewFlowService constructs a DefaultFlowService.
func NewFlowService(cache *redis.Client, blocked blockedRepo.BlockedDateRepository, sessionTTL time.Duration, logger *zap.Logger) *DefaultFlowService {
	return &DefaultFlowService{
		Cache:       cache,
		BlockedRepo: blocked,
		SessionTTL:  sessionTTL,
		Logger:      logger,
	}
}
