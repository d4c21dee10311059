package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wavecrest/services/booking"
	"wavecrest/services/payment"
)

// CheckoutHandler turns an assembled booking summary into a payment
// intent and a provisional booking row.
type CheckoutHandler struct {
	Flow    booking.FlowService
	Gateway payment.Gateway
	Logger  *zap.Logger
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(flow booking.FlowService, gateway payment.Gateway, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Flow: flow, Gateway: gateway, Logger: logger}
}

// Checkout creates the payment intent for a flow session's summary.
// 400 carries a ValidationError; 502 an upstream processor failure. Both
// are terminal for the attempt — the draft survives for resubmission.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	draft, err := h.Flow.GetDraft(ctx, input.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	summary, err := h.Flow.Summary(ctx, input.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble summary", "details": err.Error()})
		return
	}

	result, err := h.Gateway.CreatePaymentIntent(ctx, summary, draft.PersonalInfo)
	if err != nil {
		var vErr *payment.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required booking fields", "details": vErr.Error()})
			return
		}
		var upErr *payment.UpstreamError
		if errors.As(err, &upErr) {
			h.Logger.Error("payment processor failure", zap.Error(upErr))
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment processor unavailable", "details": upErr.Error()})
			return
		}
		h.Logger.Error("checkout failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": result.ClientSecret,
		"bookingId":    result.BookingID,
	})
}

// GenerateBookingID hands the client a fresh identifier. Convenience
// only; the authoritative id is assigned at checkout.
func (h *CheckoutHandler) GenerateBookingID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookingId": uuid.New().String()})
}
