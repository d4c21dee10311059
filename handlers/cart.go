package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wavecrest/models"
	"wavecrest/services/cart"
)

// CartHandler exposes the per-session apparel cart.
type CartHandler struct {
	Cart   cart.Store
	Logger *zap.Logger
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(store cart.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{Cart: store, Logger: logger}
}

// AddItem appends a line to the session's cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	added, err := h.Cart.AddItem(c.Request.Context(), c.Param("sessionID"), item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to add cart item", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": added})
}

// ListItems returns the cart contents.
func (h *CartHandler) ListItems(c *gin.Context) {
	items, err := h.Cart.Items(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.Logger.Error("cart lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// RemoveItem deletes one line from the cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.Cart.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("cart clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
