// File: cleancare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleancare/config"
	"cleancare/cron"
	"cleancare/database"
	addressRepoPkg "cleancare/database/repository/address"
	orderRepoPkg "cleancare/database/repository/order"
	userRepoPkg "cleancare/database/repository/user"
	"cleancare/handlers"
	"cleancare/middleware"
	"cleancare/routes"
	"cleancare/services/address"
	"cleancare/services/cart"
	"cleancare/services/catalog"
	"cleancare/services/location"
	"cleancare/services/notification"
	"cleancare/services/order"
	"cleancare/services/tasks"
	"cleancare/services/user"
	"cleancare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	addressRepo := addressRepoPkg.NewMongoAddressRepo()

	// Reminder queue client for scheduled pickup reminders.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	smsSender := notification.LogSMSSender{}

	// services.
	authService := &user.DefaultAuthService{
		Users:    userRepo,
		SMS:      smsSender,
		OTP:      &user.RedisOTPStore{Client: utils.GetOTPCacheClient()},
		Sessions: &user.RedisSessionStore{Client: utils.GetAuthCacheClient()},
	}
	cartService := &cart.DefaultService{
		Store: cart.NewRedisStore(utils.GetCacheClient()),
	}
	addressService := &address.DefaultService{
		Repo:  addressRepo,
		Users: userRepo,
	}
	orderService := &order.DefaultService{
		Repo:      orderRepo,
		Cart:      cartService,
		Addresses: addressService,
		Users:     userRepo,
		Reminders: &tasks.AsynqScheduler{Client: asynqClient},
	}

	ticker := catalog.NewAvailabilityTicker(time.Minute)
	defer ticker.Stop()

	resolver := location.NewGoogleResolver()
	recentStore := &location.RedisRecentStore{Client: utils.GetCacheClient()}

	// handlers.
	authHandler := &handlers.AuthHandler{Svc: authService, Logger: logger}
	catalogHandler := &handlers.CatalogHandler{Ticker: ticker}
	cartHandler := &handlers.CartHandler{Svc: cartService, Logger: logger}
	orderHandler := &handlers.OrderHandler{Svc: orderService, Logger: logger}
	addressHandler := &handlers.AddressHandler{Svc: addressService, Logger: logger}
	locationHandler := &handlers.LocationHandler{Resolver: resolver, Recents: recentStore, Logger: logger}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RequestOTPHandler: authHandler.RequestOTP,
		VerifyOTPHandler:  authHandler.VerifyOTP,
		RegisterHandler:   authHandler.Register,

		ListServicesHandler: catalogHandler.ListServices,
		GetServiceHandler:   catalogHandler.GetService,
		GetSlotsHandler:     catalogHandler.GetSlots,

		GetCartHandler:       cartHandler.GetCart,
		ConfigureCartHandler: cartHandler.ConfigureCart,
		ClearCartHandler:     cartHandler.ClearCart,

		CommitOrderHandler: orderHandler.CommitOrder,
		ListOrdersHandler:  orderHandler.ListOrders,

		AddAddressHandler:     addressHandler.AddAddress,
		UpdateAddressHandler:  addressHandler.UpdateAddress,
		SelectAddressHandler:  addressHandler.SelectAddress,
		ListAddressesHandler:  addressHandler.ListAddresses,
		CurrentAddressHandler: addressHandler.CurrentAddress,

		ReverseGeocodeHandler: locationHandler.ReverseGeocode,
		SearchPlacesHandler:   locationHandler.SearchPlaces,
		ListRecentHandler:     locationHandler.ListRecent,
		TouchRecentHandler:    locationHandler.TouchRecent,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker in background.
	cron.InitReminderWorker(smsSender)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
