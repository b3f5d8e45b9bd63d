package handlers

import (
	"errors"
	"net/http"

	addressRepo "cleancare/database/repository/address"
	"cleancare/models"
	"cleancare/services/address"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressHandler exposes the per-user address book.
type AddressHandler struct {
	Svc    address.Service
	Logger *zap.Logger
}

// AddAddress handles POST /api/addresses.
func (h *AddressHandler) AddAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	saved, err := h.Svc.Add(userID, addr)
	if err != nil {
		var valErr *address.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message, "field": valErr.Field})
			return
		}
		h.Logger.Error("AddAddress: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save address"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UpdateAddress handles PUT /api/addresses/:id.
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	addr.ID = c.Param("id")

	saved, err := h.Svc.Update(userID, addr)
	if err != nil {
		var valErr *address.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message, "field": valErr.Field})
			return
		}
		if errors.Is(err, addressRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		h.Logger.Error("UpdateAddress: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update address"})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// SelectAddress handles PUT /api/addresses/:id/select.
func (h *AddressHandler) SelectAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Svc.Select(userID, c.Param("id")); err != nil {
		h.Logger.Error("SelectAddress: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select address"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAddresses handles GET /api/addresses.
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	addrs, err := h.Svc.List(userID)
	if err != nil {
		h.Logger.Error("ListAddresses: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load addresses"})
		return
	}
	c.JSON(http.StatusOK, addrs)
}

// CurrentAddress handles GET /api/addresses/current.
func (h *AddressHandler) CurrentAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	addr, err := h.Svc.Current(userID)
	if err != nil {
		h.Logger.Error("CurrentAddress: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load current address"})
		return
	}
	if addr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current address"})
		return
	}
	c.JSON(http.StatusOK, addr)
}
