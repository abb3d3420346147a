package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	mongoOptions "go.mongodb.org/mongo-driver/mongo/options"

	"library-assistant/config"
	_ "library-assistant/docs" // Swagger docs
	authHTTP "library-assistant/internal/auth/delivery/http"
	userRepo "library-assistant/internal/auth/repository/mongo"
	authUC "library-assistant/internal/auth/usecase"
	chatHTTP "library-assistant/internal/chat/delivery/http"
	retentionRepo "library-assistant/internal/chat/repository/mongo"
	chatUC "library-assistant/internal/chat/usecase"
	"library-assistant/internal/httpserver"
	"library-assistant/internal/middleware"
	"library-assistant/internal/router"
	"library-assistant/internal/session"
	"library-assistant/pkg/gemini"
	"library-assistant/pkg/koha"
	"library-assistant/pkg/log"
	"library-assistant/pkg/qdrant"
	"library-assistant/pkg/scope"
	"library-assistant/pkg/voyage"
)

const mongoConnectTimeout = 10 * time.Second

// @title       Library Assistant API
// @description Conversational library assistant with intent routing, Koha catalog search and semantic recommendations.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Library Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB (fail fast: sessions and logins need it)
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	mongoClient, err := mongo.Connect(connectCtx, mongoOptions.Client().ApplyURI(cfg.Mongo.URI))
	cancel()
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	err = mongoClient.Ping(pingCtx, nil)
	cancel()
	if err != nil {
		logger.Fatalf(ctx, "Failed to ping MongoDB: %v", err)
	}
	defer func() {
		if derr := mongoClient.Disconnect(context.Background()); derr != nil {
			logger.Warnf(ctx, "Mongo disconnect: %v", derr)
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)
	logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

	// 4. Upstream clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey).WithModel(cfg.Gemini.Model)
	kohaClient := koha.NewClient(cfg.Koha.BaseURL, cfg.Koha.Username, cfg.Koha.Password)
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create embedding client: %v", err)
	}

	for _, collection := range []string{cfg.Qdrant.BooksCollection, cfg.Qdrant.WebCollection} {
		exists, cerr := qdrantClient.CollectionExists(ctx, collection)
		if cerr != nil {
			logger.Warnf(ctx, "Could not check Qdrant collection %q: %v", collection, cerr)
			continue
		}
		if !exists {
			logger.Warnf(ctx, "Qdrant collection %q does not exist, semantic search will degrade", collection)
		}
	}

	// 5. Auth domain
	jwtManager := scope.NewManager(cfg.JWT.Secret)
	authUseCase := authUC.New(logger, userRepo.New(db, logger), jwtManager)
	authHandler := authHTTP.New(logger, authUseCase)

	// 6. Chat domain
	sessions := session.New()
	retention := retentionRepo.New(db, logger)
	intentRouter := router.New(geminiClient, logger)

	chatUseCase := chatUC.New(
		logger,
		geminiClient,
		embedder,
		kohaClient,
		qdrantClient,
		sessions,
		retention,
		intentRouter,
		cfg.Qdrant.BooksCollection,
		cfg.Qdrant.WebCollection,
	)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 7. HTTP Server
	mw := middleware.New(logger, jwtManager, cfg.RateLimit.RequestsPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		AuthHandler: authHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
