package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/666-PLAYER-666/hotel-banya/config"
	"github.com/666-PLAYER-666/hotel-banya/cron"
	"github.com/666-PLAYER-666/hotel-banya/database"
	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/database/repository/memory"
	"github.com/666-PLAYER-666/hotel-banya/database/repository/mongodb"
	"github.com/666-PLAYER-666/hotel-banya/handlers"
	"github.com/666-PLAYER-666/hotel-banya/middleware"
	"github.com/666-PLAYER-666/hotel-banya/routes"
	"github.com/666-PLAYER-666/hotel-banya/services"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Storage backend: in-memory by default, MongoDB when configured.
	var store repository.Store
	switch config.AppConfig.StorageBackend {
	case "mongo":
		database.InitDB()
		mongoStore, err := mongodb.NewStore()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mongo store: %v", err)
		}
		store = mongoStore
	default:
		store = memory.NewStore()
	}

	// OTP backend: in-memory by default, Redis when configured.
	var otpStore utils.OTPStore
	if config.AppConfig.OTPBackend == "redis" {
		otpStore = utils.NewRedisOTPStore(utils.GetOTPCacheClient())
	} else {
		otpStore = utils.NewMemoryOTPStore()
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.BodyLimitMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	middleware.InitMetrics()
	router.Use(middleware.PrometheusMiddleware())

	// services.
	availabilitySvc := &services.DefaultAvailabilityService{Store: store}
	pricingSvc := &services.DefaultPricingService{Store: store}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(store, otpStore),
		Bookings: handlers.NewBookingHandler(store, availabilitySvc, pricingSvc, logger),
		Orders:   handlers.NewOrderHandler(store, logger),
		Blocked:  handlers.NewBlockedHandler(store),
		Reviews:  handlers.NewReviewHandler(store),
		Services: handlers.NewServiceHandler(store),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)
	router.NoRoute(routes.SPAHandler(config.AppConfig.StaticDir))

	// Periodic refresh tick.
	scheduler := cron.InitRefreshWorker()
	defer scheduler.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
	}
	srv := &http.Server{
		Addr:        "0.0.0.0:" + port,
		Handler:     router,
		IdleTimeout: time.Duration(config.AppConfig.IdleTimeoutSec) * time.Second,
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
