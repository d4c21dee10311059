// File: wavecrest/handlers/booking_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wavecrest/models"
	"wavecrest/services/booking"
)

type flowResponse struct {
	Draft      models.BookingDraft     `json:"draft"`
	Result     models.TransitionResult `json:"result"`
	CanProceed bool                    `json:"canProceed"`
}

func newFlowRouter(t *testing.T, blockedDates ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	svc := booking.NewFlowService(cache, &fakeBlockedRepo{dates: blockedDates}, 30*time.Minute, zap.NewNop())
	h := NewBookingFlowHandler(svc, zap.NewNop())

	r := gin.New()
	flow := r.Group("/api/booking/flow")
	{
		flow.POST("", h.StartFlow)
		flow.GET("/:sessionID", h.GetDraft)
		flow.POST("/:sessionID/service", h.SelectService)
		flow.POST("/:sessionID/option", h.SelectOption)
		flow.POST("/:sessionID/date", h.SelectDate)
		flow.POST("/:sessionID/next", h.Next)
		flow.GET("/:sessionID/summary", h.Summary)
	}
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/flow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"sessionID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestFlowEndpoints(t *testing.T) {
	router := newFlowRouter(t)
	sid := startSession(t, router)

	t.Run("select service", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/booking/flow/%s/service", sid), gin.H{"serviceId": "bounce"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp flowResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Result.Applied)
		assert.Equal(t, models.StepDetails, resp.Draft.Step)
		assert.False(t, resp.CanProceed)
	})

	t.Run("rejected transition is a 200 with reason", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/booking/flow/%s/next", sid), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp flowResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Result.Applied)
		assert.Equal(t, "step requirements not met", resp.Result.Reason)
	})

	t.Run("missing body field is a 400", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/booking/flow/%s/service", sid), gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date is a 400", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/booking/flow/%s/date", sid), gin.H{"date": "June 15"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("summary reflects the flat option price", func(t *testing.T) {
		w := postJSON(t, router, fmt.Sprintf("/api/booking/flow/%s/option", sid), gin.H{"optionName": "Ninja Bounce House, 8 hours"})
		require.Equal(t, http.StatusOK, w.Code)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/booking/flow/%s/summary", sid), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Summary models.BookingSummary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(20000), resp.Summary.TotalPrice)
	})
}

func TestFlowUnknownSessionIs404(t *testing.T) {
	router := newFlowRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/flow/no-such-session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(t, router, "/api/booking/flow/no-such-session/service", gin.H{"serviceId": "bounce"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
