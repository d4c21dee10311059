package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blockedRepo "wavecrest/database/repository/blocked"
	"wavecrest/services/calendar"
)

// CalendarHandler serves the availability calendar data.
type CalendarHandler struct {
	Blocked blockedRepo.BlockedDateRepository
	Logger  *zap.Logger
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(blocked blockedRepo.BlockedDateRepository, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Blocked: blocked, Logger: logger}
}

// ListBlockedDates returns the blocked "YYYY-MM-DD" strings.
func (h *CalendarHandler) ListBlockedDates(c *gin.Context) {
	dates, err := h.Blocked.ListDates(c.Request.Context())
	if err != nil {
		h.Logger.Error("blocked dates lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blocked dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
}

// MonthGrid renders the day-cell projection for a month. Defaults to
// the current month when year/month are absent.
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	dates, err := h.Blocked.ListDates(c.Request.Context())
	if err != nil {
		h.Logger.Error("blocked dates lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blocked dates"})
		return
	}

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  calendar.MonthGrid(ref, calendar.ToSet(dates), nil),
	})
}
