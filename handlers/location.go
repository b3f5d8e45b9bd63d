package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cleancare/models"
	"cleancare/services/location"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler exposes geocode lookups and the recent-locations list.
type LocationHandler struct {
	Resolver location.Resolver
	Recents  location.RecentStore
	Logger   *zap.Logger
}

// ReverseGeocode handles GET /api/location/reverse-geocode?lat=..&lng=..
// A failed lookup replies 200 with the default region and no address so
// the client can fall back instead of erroring.
func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	addr, err := h.Resolver.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		var lookupErr *location.LookupFailure
		if errors.As(err, &lookupErr) {
			h.Logger.Warn("ReverseGeocode: lookup failed", zap.String("reason", lookupErr.Reason))
			c.JSON(http.StatusOK, gin.H{
				"address":       nil,
				"defaultRegion": location.DefaultRegion,
			})
			return
		}
		h.Logger.Error("ReverseGeocode: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": addr})
}

// SearchPlaces handles GET /api/location/search?q=...
func (h *LocationHandler) SearchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	candidates, err := h.Resolver.SearchPlaces(c.Request.Context(), query)
	if err != nil {
		var lookupErr *location.LookupFailure
		if errors.As(err, &lookupErr) {
			c.JSON(http.StatusOK, gin.H{"results": []models.PlaceCandidate{}})
			return
		}
		h.Logger.Error("SearchPlaces: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search places"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": candidates})
}

// ListRecent handles GET /api/location/recent.
func (h *LocationHandler) ListRecent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	locs, err := h.Recents.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("ListRecent: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent locations"})
		return
	}
	if locs == nil {
		locs = []models.RecentLocation{}
	}
	c.JSON(http.StatusOK, locs)
}

// TouchRecent handles POST /api/location/recent.
func (h *LocationHandler) TouchRecent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var loc models.RecentLocation
	if err := c.ShouldBindJSON(&loc); err != nil || loc.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a place id is required"})
		return
	}

	if err := h.Recents.Touch(c.Request.Context(), userID, loc); err != nil {
		h.Logger.Error("TouchRecent: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record location"})
		return
	}
	c.Status(http.StatusNoContent)
}
