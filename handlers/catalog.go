package handlers

import (
	"net/http"

	"cleancare/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the fixed service catalog and slot availability.
type CatalogHandler struct {
	Ticker *catalog.AvailabilityTicker
}

// ListServices handles GET /api/catalog/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.List())
}

// GetService handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetSlots handles GET /api/catalog/slots.
func (h *CatalogHandler) GetSlots(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ticker.Snapshot())
}
