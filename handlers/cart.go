package handlers

import (
	"errors"
	"net/http"

	"cleancare/services/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the single active cart per user.
type CartHandler struct {
	Svc    cart.Service
	Logger *zap.Logger
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	active, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("GetCart: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	if active == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active cart"})
		return
	}
	c.JSON(http.StatusOK, active)
}

// ConfigureCart handles PUT /api/cart.
func (h *CartHandler) ConfigureCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var in cart.ConfigureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	updated, err := h.Svc.Configure(c.Request.Context(), userID, in)
	if err != nil {
		var valErr *cart.ValidationError
		if errors.As(err, &valErr) {
			// A conflict needs explicit confirmation, everything else is a
			// correctable input problem.
			status := http.StatusBadRequest
			if valErr.Code == cart.CodeCartConflict {
				status = http.StatusConflict
			}
			c.JSON(status, valErr)
			return
		}
		h.Logger.Error("ConfigureCart: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Svc.Clear(c.Request.Context(), userID); err != nil {
		h.Logger.Error("ClearCart: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}
