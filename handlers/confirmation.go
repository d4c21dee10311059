package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "wavecrest/database/repository/booking"
)

// ConfirmationHandler serves the booking record behind the confirmation
// page.
type ConfirmationHandler struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewConfirmationHandler constructs a ConfirmationHandler.
func NewConfirmationHandler(bookings bookingRepo.BookingRepository, logger *zap.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{Bookings: bookings, Logger: logger}
}

// GetBooking returns a booking by id. A row still `pending` shortly
// after the client reported success is normal — the webhook may not have
// landed yet — so status is returned as-is, never treated as an error.
func (h *ConfirmationHandler) GetBooking(c *gin.Context) {
	booking, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("booking lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListRecentBookings returns the latest bookings (ops visibility).
func (h *ConfirmationHandler) ListRecentBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListRecent(c.Request.Context(), 50)
	if err != nil {
		h.Logger.Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
