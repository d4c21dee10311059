// File: wavecrest/handlers/webhook_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	bookingRepo "wavecrest/database/repository/booking"
	"wavecrest/models"
)

const testWebhookSecret = "whsec_test_secret"

// fakeBookingRepo tracks bookings by payment intent id in memory.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking // keyed by intent id
	updates  []models.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.bookings[booking.StripePaymentIntentID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Booking, error) {
	if b, ok := r.bookings[intentID]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) UpdateStatusByPaymentIntent(ctx context.Context, intentID string, status models.BookingStatus, reason string) (*models.Booking, error) {
	b, ok := r.bookings[intentID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.FailureReason = reason
	r.updates = append(r.updates, status)
	return b, nil
}

func (r *fakeBookingRepo) MarkStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return nil, nil
}

// fakeBlockedRepo serves a fixed date set and records writes.
type fakeBlockedRepo struct {
	dates   []string
	created []models.BlockedDate
}

func (r *fakeBlockedRepo) ListDates(ctx context.Context) ([]string, error) { return r.dates, nil }
func (r *fakeBlockedRepo) List(ctx context.Context) ([]models.BlockedDate, error) {
	return nil, nil
}
func (r *fakeBlockedRepo) Create(ctx context.Context, block *models.BlockedDate) error {
	r.created = append(r.created, *block)
	return nil
}
func (r *fakeBlockedRepo) Delete(ctx context.Context, blockID string) error { return nil }

// signedRequest builds a webhook request carrying a valid Stripe-Signature
// for the payload.
func signedRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", header)
	return req
}

func newWebhookRouter(bookings *fakeBookingRepo, blocked *fakeBlockedRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStripeWebhookHandler(testWebhookSecret, bookings, blocked, zap.NewNop())
	r := gin.New()
	r.POST("/api/webhooks/stripe", h.Handle)
	return r
}

func eventPayload(eventType, intentJSON string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_test_1","api_version":"2023-10-16","type":%q,"data":{"object":%s}}`, eventType, intentJSON))
}

func TestWebhookSucceededConfirmsAndBlocksDate(t *testing.T) {
	bookings := newFakeBookingRepo()
	blocked := &fakeBlockedRepo{}
	require.NoError(t, bookings.Create(context.Background(), &models.Booking{
		ID:                    "bk-1",
		StripePaymentIntentID: "pi_123",
		ServiceID:             "bounce",
		BookingDate:           "2026-06-15",
		Status:                models.BookingPending,
	}))
	router := newWebhookRouter(bookings, blocked)

	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_123"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingConfirmed, bookings.bookings["pi_123"].Status)
	require.Len(t, blocked.created, 1)
	assert.Equal(t, "2026-06-15", blocked.created[0].Date)
	assert.Equal(t, "bounce", blocked.created[0].ServiceID)
	assert.Equal(t, "booked", blocked.created[0].Reason)
}

func TestWebhookFailedRecordsReason(t *testing.T) {
	bookings := newFakeBookingRepo()
	blocked := &fakeBlockedRepo{}
	require.NoError(t, bookings.Create(context.Background(), &models.Booking{
		ID:                    "bk-2",
		StripePaymentIntentID: "pi_456",
		Status:                models.BookingPending,
	}))
	router := newWebhookRouter(bookings, blocked)

	payload := eventPayload("payment_intent.payment_failed",
		`{"id":"pi_456","last_payment_error":{"message":"Your card was declined."}}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingFailed, bookings.bookings["pi_456"].Status)
	assert.Equal(t, "Your card was declined.", bookings.bookings["pi_456"].FailureReason)
	assert.Empty(t, blocked.created)
}

func TestWebhookInvalidSignatureRejected(t *testing.T) {
	bookings := newFakeBookingRepo()
	router := newWebhookRouter(bookings, &fakeBlockedRepo{})

	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, bookings.updates)
}

func TestWebhookTamperedPayloadRejected(t *testing.T) {
	bookings := newFakeBookingRepo()
	router := newWebhookRouter(bookings, &fakeBlockedRepo{})

	// Sign one payload, send another.
	req := signedRequest(t, eventPayload("payment_intent.succeeded", `{"id":"pi_123"}`))
	tampered := eventPayload("payment_intent.succeeded", `{"id":"pi_999"}`)
	req.Body = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tampered)).Body

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, bookings.updates)
}

func TestWebhookToleratesPinnedAPIVersion(t *testing.T) {
	bookings := newFakeBookingRepo()
	blocked := &fakeBlockedRepo{}
	require.NoError(t, bookings.Create(context.Background(), &models.Booking{
		ID:                    "bk-3",
		StripePaymentIntentID: "pi_789",
		ServiceID:             "foam",
		BookingDate:           "2026-07-04",
		Status:                models.BookingPending,
	}))
	router := newWebhookRouter(bookings, blocked)

	// An endpoint pinned to an older Stripe API version still delivers a
	// validly signed event; it must be applied, not rejected.
	payload := []byte(`{"id":"evt_test_2","api_version":"2022-11-15","type":"payment_intent.succeeded","data":{"object":{"id":"pi_789"}}}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingConfirmed, bookings.bookings["pi_789"].Status)
}

func TestWebhookUnknownEventAcknowledged(t *testing.T) {
	bookings := newFakeBookingRepo()
	router := newWebhookRouter(bookings, &fakeBlockedRepo{})

	payload := eventPayload("charge.refunded", `{"id":"ch_1"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, bookings.updates)
}

func TestWebhookUnknownIntentFails(t *testing.T) {
	bookings := newFakeBookingRepo()
	router := newWebhookRouter(bookings, &fakeBlockedRepo{})

	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_missing"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, payload))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
