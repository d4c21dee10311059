package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	blockedRepo "wavecrest/database/repository/blocked"
	bookingRepo "wavecrest/database/repository/booking"
	"wavecrest/models"
)

// StripeWebhookHandler applies asynchronous payment events to booking
// rows. Signature verification is mandatory; unsigned or tampered
// payloads are rejected before any state is touched.
type StripeWebhookHandler struct {
	WebhookSecret string
	Bookings      bookingRepo.BookingRepository
	Blocked       blockedRepo.BlockedDateRepository
	Logger        *zap.Logger
}

// NewStripeWebhookHandler constructs a StripeWebhookHandler.
func NewStripeWebhookHandler(secret string, bookings bookingRepo.BookingRepository, blocked blockedRepo.BlockedDateRepository, logger *zap.Logger) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		WebhookSecret: secret,
		Bookings:      bookings,
		Blocked:       blocked,
		Logger:        logger,
	}
}

// Handle processes a signed Stripe event.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// The endpoint may be pinned to a different Stripe API version than
	// the SDK; a version mismatch is not a signature failure.
	event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader("Stripe-Signature"), h.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		h.Logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		h.applySucceeded(c, event)
	case "payment_intent.payment_failed":
		h.applyFailed(c, event)
	default:
		// Not ours; acknowledge so Stripe stops retrying.
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *StripeWebhookHandler) applySucceeded(c *gin.Context, event stripe.Event) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	ctx := c.Request.Context()
	booked, err := h.Bookings.UpdateStatusByPaymentIntent(ctx, intent.ID, models.BookingConfirmed, "")
	if err != nil {
		h.Logger.Error("failed to confirm booking",
			zap.String("intentID", intent.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply event"})
		return
	}

	// A confirmed booking takes its date out of the calendar.
	block := &models.BlockedDate{
		Date:      booked.BookingDate,
		ServiceID: booked.ServiceID,
		Reason:    "booked",
	}
	if err := h.Blocked.Create(ctx, block); err != nil {
		h.Logger.Warn("failed to block booked date",
			zap.String("date", booked.BookingDate), zap.Error(err))
	}

	h.Logger.Info("booking confirmed",
		zap.String("bookingID", booked.ID),
		zap.String("intentID", intent.ID))
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *StripeWebhookHandler) applyFailed(c *gin.Context, event stripe.Event) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	reason := "payment failed"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		reason = intent.LastPaymentError.Msg
	}

	booked, err := h.Bookings.UpdateStatusByPaymentIntent(c.Request.Context(), intent.ID, models.BookingFailed, reason)
	if err != nil {
		h.Logger.Error("failed to mark booking failed",
			zap.String("intentID", intent.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply event"})
		return
	}

	h.Logger.Info("booking payment failed",
		zap.String("bookingID", booked.ID),
		zap.String("reason", reason),
		zap.Time("at", time.Now()))
	c.JSON(http.StatusOK, gin.H{"received": true})
}
