package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wavecrest/models"
	"wavecrest/services/orders"
)

// OrderHandler proxies the apparel print-on-demand upstream.
type OrderHandler struct {
	Orders orders.OrderService
	Logger *zap.Logger
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc orders.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Orders: svc, Logger: logger}
}

// SubmitOrder forwards an apparel order upstream.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var sub models.OrderSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := h.Orders.Submit(c.Request.Context(), sub)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrder looks up an upstream order.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// upstreamError translates the typed order error taxonomy into HTTP.
func (h *OrderHandler) upstreamError(c *gin.Context, err error) {
	var apiErr *orders.APIError
	if !errors.As(err, &apiErr) {
		h.Logger.Error("order failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order failed", "details": err.Error()})
		return
	}

	switch apiErr.Kind {
	case orders.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "order rejected", "details": apiErr.Message})
	case orders.KindUnauthorized:
		h.Logger.Error("print api authorization failure", zap.Error(apiErr))
		c.JSON(http.StatusBadGateway, gin.H{"error": "print service unavailable"})
	case orders.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		h.Logger.Error("print api upstream failure", zap.Error(apiErr))
		c.JSON(http.StatusBadGateway, gin.H{"error": "print service unavailable", "details": apiErr.Message})
	}
}
