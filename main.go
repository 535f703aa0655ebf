package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"statutesync/config"
	"statutesync/database"
	"statutesync/database/repository"
	"statutesync/database/repository/snapshot"
	"statutesync/handlers"
	"statutesync/middleware"
	"statutesync/routes"
	"statutesync/services/admin"
	"statutesync/services/assistant"
	ai "statutesync/services/intelligence"
	"statutesync/services/library"
	"statutesync/services/marketplace"
	"statutesync/services/user"
	"statutesync/services/verification"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// storage.
	eng, err := database.OpenEngine(ctx, cfg)
	if err != nil {
		logger.Fatal("main: failed to open storage engine", zap.String("engine", cfg.StorageEngine), zap.Error(err))
	}
	store := repository.NewStore(eng, repository.Options{
		Policy: snapshot.ParsePolicy(cfg.StorageCorruptPolicy),
		Logger: logger,
	}, utils.SessionTokenIssuer())
	if err := store.Seed(ctx); err != nil {
		logger.Fatal("main: failed to seed record store", zap.Error(err))
	}

	// AI collaborator and chat transcripts.
	var aiSvc ai.AIService
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiVerifyModel, cfg.GeminiAdviceModel, logger)
		if err != nil {
			logger.Fatal("main: failed to create Gemini client", zap.Error(err))
		}
		defer gemini.Close()
		aiSvc = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, using the local AI client")
		aiSvc = ai.NewLocalClient()
	}

	var ctxStore ai.ContextStore
	if cfg.StorageEngine == "redis" {
		chatClient, err := utils.NewRedisClient(cfg.RedisChatDB)
		if err != nil {
			logger.Fatal("main: failed to connect chat context store", zap.Error(err))
		}
		defer chatClient.Close()
		ctxStore = ai.NewRedisContextStore(chatClient, cfg.ChatTTL)
	} else {
		ctxStore = ai.NewMemoryContextStore(cfg.ChatTTL)
	}

	// services.
	sessionService := &user.DefaultSessionService{Repo: store.Session, Verifier: utils.ExtractSubject}
	libraryService := &library.DefaultLibraryService{Repo: store.Documents}
	marketplaceService := &marketplace.DefaultMarketplaceService{
		Professionals: store.Professionals,
		Bookings:      store.Bookings,
	}
	verificationService := &verification.DefaultVerificationService{
		Repo:     store.Verifications,
		Verifier: aiSvc,
		Timeout:  cfg.AITimeout,
		Logger:   logger,
	}
	assistantService := &assistant.DefaultAssistantService{
		Advisor: aiSvc,
		Store:   ctxStore,
		Timeout: cfg.AITimeout,
		Logger:  logger,
	}
	adminService := &admin.DefaultAdminService{Store: store}

	health := utils.NewHealthMonitor(eng, aiSvc.Name(), 60*time.Second)
	health.Start(ctx)

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Sessions:       sessionService,
		Library:        libraryService,
		Marketplace:    marketplaceService,
		Verification:   verificationService,
		Assistant:      assistantService,
		Admin:          adminService,
		Health:         health,
		MaxUploadBytes: cfg.MaxUploadMB << 20,
	})

	// Create the Gin router.
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (storage=%s, ai=%s)...", srv.Addr, eng.Name(), aiSvc.Name())
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := eng.Close(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: failed to close storage engine: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
