// File: veritek/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veritek/config"
	"veritek/database"
	trainingRepo "veritek/database/repository/training"
	"veritek/handlers"
	"veritek/middleware"
	"veritek/routes"
	"veritek/services/chat"
	"veritek/services/training"
	"veritek/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	contentRepo := trainingRepo.NewMongoTrainingRepo()

	// services.
	sessionTTL := time.Duration(config.AppConfig.ChatSessionTTLMin) * time.Minute
	sessionStore := chat.NewRedisSessionStore(utils.GetChatStateClient(), sessionTTL)
	chatService := chat.NewDefaultChatService(sessionStore, logger)

	trainingService := &training.DefaultTrainingService{
		Repo:     contentRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.ContentCacheTTLMin) * time.Minute,
		Logger:   logger,
	}

	chatHandler := handlers.NewChatHandler(chatService, logger)
	trainingHandler := handlers.NewTrainingHandler(trainingService, logger)
	adminHandler := handlers.NewAdminHandler(trainingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Chat endpoints.
		StartChatSession: chatHandler.StartSessionHandler,
		ChatMessage:      chatHandler.MessageHandler,
		ResetChat:        chatHandler.ResetHandler,
		ChatHistory:      chatHandler.HistoryHandler,

		// Training endpoints.
		ListModules: trainingHandler.ListModulesHandler,
		GetModule:   trainingHandler.GetModuleHandler,
		GetChapter:  trainingHandler.GetChapterHandler,
		GradeAnswer: trainingHandler.GradeHandler,

		// Admin endpoints.
		ReloadContent: adminHandler.ReloadContentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health snapshot for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatStateClient()},
		database.MongoClient,
	)

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
