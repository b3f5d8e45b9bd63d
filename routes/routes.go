package routes

import (
	"net/http"
	"time"

	"cleancare/handlers"
	"cleancare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers the phone-verification endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp/request", hb.RequestOTPHandler)
		api.POST("/otp/verify", hb.VerifyOTPHandler)
		api.POST("/register", hb.RegisterHandler)
	}
}

// RegisterCatalogRoutes registers the service catalog and slot endpoints.
// The catalog is public; no token is required to browse.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/slots", hb.GetSlotsHandler)
	}
}

// RegisterCartRoutes registers the active-cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.GetCartHandler)
		api.PUT("", hb.ConfigureCartHandler)
		api.DELETE("", hb.ClearCartHandler)
	}
}

// RegisterOrderRoutes registers checkout and order history endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.CommitOrderHandler)
		api.GET("", hb.ListOrdersHandler)
	}
}

// RegisterAddressRoutes registers the address-book endpoints.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.AddAddressHandler)
		api.GET("", hb.ListAddressesHandler)
		api.GET("/current", hb.CurrentAddressHandler)
		api.PUT("/:id", hb.UpdateAddressHandler)
		api.PUT("/:id/select", hb.SelectAddressHandler)
	}
}

// RegisterLocationRoutes registers geocode and recent-location endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/location")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/reverse-geocode", hb.ReverseGeocodeHandler)
		api.GET("/search", hb.SearchPlacesHandler)
		api.GET("/recent", hb.ListRecentHandler)
		api.POST("/recent", hb.TouchRecentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CleanCare"})
	})
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
