package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wavecrest/models"
	"wavecrest/services/booking"
	"wavecrest/services/calendar"
	"wavecrest/services/catalog"
)

// BookingFlowHandler exposes the booking flow state machine over HTTP.
type BookingFlowHandler struct {
	Flow   booking.FlowService
	Logger *zap.Logger
}

// NewBookingFlowHandler constructs a BookingFlowHandler.
func NewBookingFlowHandler(flow booking.FlowService, logger *zap.Logger) *BookingFlowHandler {
	return &BookingFlowHandler{Flow: flow, Logger: logger}
}

// StartFlow creates a new booking flow session.
func (h *BookingFlowHandler) StartFlow(c *gin.Context) {
	draft, err := h.Flow.StartFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking flow", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": draft.SessionID,
		"draft":     draft,
		"services":  catalog.ListServices(),
	})
}

// GetDraft returns the current draft for a session.
func (h *BookingFlowHandler) GetDraft(c *gin.Context) {
	draft, err := h.Flow.GetDraft(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "canProceed": booking.CanProceed(draft)})
}

// CancelFlow abandons the draft.
func (h *BookingFlowHandler) CancelFlow(c *gin.Context) {
	if err := h.Flow.CancelFlow(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking flow", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// SelectService applies the service-selection transition.
func (h *BookingFlowHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID))
}

// SelectOption applies the option-selection transition.
func (h *BookingFlowHandler) SelectOption(c *gin.Context) {
	var input struct {
		OptionName string `json:"optionName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.SelectOption(c.Request.Context(), c.Param("sessionID"), input.OptionName))
}

// SelectPackage applies the package-selection transition.
func (h *BookingFlowHandler) SelectPackage(c *gin.Context) {
	var input struct {
		PackageName string `json:"packageName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.SelectPackage(c.Request.Context(), c.Param("sessionID"), input.PackageName))
}

// SetAddOn sets a counted add-on quantity or the pet flag.
func (h *BookingFlowHandler) SetAddOn(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value int    `json:"value"`
		Pet   *bool  `json:"pet"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Key == "pet" {
		pet := input.Pet != nil && *input.Pet
		h.respond(c)(h.Flow.SetPet(c.Request.Context(), c.Param("sessionID"), pet))
		return
	}
	h.respond(c)(h.Flow.SetAddOn(c.Request.Context(), c.Param("sessionID"), input.Key, input.Value))
}

// SetCombinedOffer enables or disables the foam/bounce bundle.
func (h *BookingFlowHandler) SetCombinedOffer(c *gin.Context) {
	var input struct {
		Enabled                 bool   `json:"enabled"`
		ComplementaryOptionName string `json:"complementaryOptionName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Enabled {
		h.respond(c)(h.Flow.EnableCombinedOffer(c.Request.Context(), c.Param("sessionID"), input.ComplementaryOptionName))
		return
	}
	h.respond(c)(h.Flow.DisableCombinedOffer(c.Request.Context(), c.Param("sessionID")))
}

// UpdatePersonalInfo sets one customer contact field.
func (h *BookingFlowHandler) UpdatePersonalInfo(c *gin.Context) {
	var input struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.UpdatePersonalInfo(c.Request.Context(), c.Param("sessionID"), input.Field, input.Value))
}

// SelectDate sets the booking date, rejecting blocked days.
func (h *BookingFlowHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"` // "YYYY-MM-DD"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.Parse(calendar.DateKey, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.SelectDate(c.Request.Context(), c.Param("sessionID"), date))
}

// Next advances the flow one step when the gate holds.
func (h *BookingFlowHandler) Next(c *gin.Context) {
	h.respond(c)(h.Flow.Next(c.Request.Context(), c.Param("sessionID")))
}

// Back rewinds the flow one step.
func (h *BookingFlowHandler) Back(c *gin.Context) {
	h.respond(c)(h.Flow.Back(c.Request.Context(), c.Param("sessionID")))
}

// CompletePayment marks the flow terminal after client-side payment
// confirmation.
func (h *BookingFlowHandler) CompletePayment(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.respond(c)(h.Flow.CompletePayment(c.Request.Context(), c.Param("sessionID"), input.BookingID))
}

// Summary returns the recomputed booking summary.
func (h *BookingFlowHandler) Summary(c *gin.Context) {
	summary, err := h.Flow.Summary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// respond renders a transition outcome: the updated draft plus the
// applied/rejected result. Rejection is a 200 — affordances are disabled
// client-side, the result just makes the branch observable.
func (h *BookingFlowHandler) respond(c *gin.Context) func(*models.BookingDraft, models.TransitionResult, error) {
	return func(draft *models.BookingDraft, result models.TransitionResult, err error) {
		if err != nil {
			h.sessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"draft":      draft,
			"result":     result,
			"canProceed": booking.CanProceed(draft),
		})
	}
}

func (h *BookingFlowHandler) sessionError(c *gin.Context, err error) {
	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) && flowErr.Code == "sessionNotFound" {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	h.Logger.Error("booking flow failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "booking flow failure", "details": err.Error()})
}
