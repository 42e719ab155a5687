// File: azura/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"azura/config"
	"azura/cron"
	"azura/database"
	activityRepoPkg "azura/database/repository/activity"
	bookingRepoPkg "azura/database/repository/booking"
	notificationRepoPkg "azura/database/repository/notification"
	"azura/handlers"
	"azura/middleware"
	"azura/routes"
	"azura/services/availability"
	"azura/services/booking"
	"azura/services/chat"
	"azura/services/intent"
	"azura/services/notification"
	"azura/services/voice"
	"azura/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatCtxCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// background voice pipeline.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisVoiceTaskDB,
	})
	defer asynqClient.Close()
	voiceDispatcher := voice.NewAsynqDispatcher(asynqClient)

	synth, err := voice.NewGoogleSynthesizer(context.Background(), config.AppConfig.GoogleServiceAccountFile)
	if err != nil {
		// Bookings still confirm in text; only the spoken layer is lost.
		logger.Sugar().Warnf("main: voice synthesis unavailable, confirmations stay textual: %v", err)
	} else {
		defer synth.Close()
		cron.InitVoiceWorker(synth)
	}

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
		FCM:  utils.FCMClient,
	}

	inventoryClient := availability.NewSimulatedInventoryClient(
		config.AppConfig.InventoryAvailabilityRate,
		time.Now().UnixNano(),
	)
	availabilityChecker := &availability.Checker{Inventory: inventoryClient}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ActivityRepo: activityRepo,
		Availability: availabilityChecker,
		Notifier:     notificationService,
		Voice:        voiceDispatcher,
		Intent:       intent.NewExtractor(config.AppConfig.HomeCity),
	}

	ctxStore := chat.NewRedisContextStore(utils.GetChatCtxCacheClient(), 30*time.Minute)

	var replies handlers.ReplyGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		replies = chat.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	}

	chatHandler := handlers.NewChatHandler(bookingService, replies, ctxStore, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, notificationRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatMessageHandler:       chatHandler.HandleChatMessage,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		ListBookingsHandler:      bookingHandler.ListBookingsHandler,
		ListNotificationsHandler: bookingHandler.ListNotificationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	voiceQueuePing := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisVoiceTaskDB,
	})
	utils.StartHealthMonitor(database.MongoClient,
		utils.GetChatCtxCacheClient(), utils.GetAuthCacheClient(), voiceQueuePing)

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
