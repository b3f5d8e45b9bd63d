// File: cleancare/handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	RequestOTPHandler gin.HandlerFunc
	VerifyOTPHandler  gin.HandlerFunc
	RegisterHandler   gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc
	GetSlotsHandler     gin.HandlerFunc

	// Cart endpoints
	GetCartHandler       gin.HandlerFunc
	ConfigureCartHandler gin.HandlerFunc
	ClearCartHandler     gin.HandlerFunc

	// Order endpoints
	CommitOrderHandler gin.HandlerFunc
	ListOrdersHandler  gin.HandlerFunc

	// Address endpoints
	AddAddressHandler     gin.HandlerFunc
	UpdateAddressHandler  gin.HandlerFunc
	SelectAddressHandler  gin.HandlerFunc
	ListAddressesHandler  gin.HandlerFunc
	CurrentAddressHandler gin.HandlerFunc

	// Location endpoints
	ReverseGeocodeHandler gin.HandlerFunc
	SearchPlacesHandler   gin.HandlerFunc
	ListRecentHandler     gin.HandlerFunc
	TouchRecentHandler    gin.HandlerFunc
}

// currentUserID reads the authenticated user id set by the auth
// middleware; aborts with 401 when it is missing.
func currentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	return userID, true
}
