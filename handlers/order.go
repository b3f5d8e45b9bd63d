package handlers

import (
	"errors"
	"net/http"

	"cleancare/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes order commit and history.
type OrderHandler struct {
	Svc    order.Service
	Logger *zap.Logger
}

// CommitOrder handles POST /api/orders.
func (h *OrderHandler) CommitOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	placed, err := h.Svc.Commit(c.Request.Context(), userID)
	if err != nil {
		var checkoutErr *order.CheckoutError
		if errors.As(err, &checkoutErr) {
			status := http.StatusBadRequest
			if checkoutErr.Code == order.CodeSlotUnavailable {
				status = http.StatusConflict
			}
			c.JSON(status, checkoutErr)
			return
		}
		h.Logger.Error("CommitOrder: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// ListOrders handles GET /api/orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("ListOrders: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
