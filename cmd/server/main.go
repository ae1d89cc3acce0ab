package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"contentcraft/internal/auth"
	"contentcraft/internal/config"
	"contentcraft/internal/handler"
	"contentcraft/internal/llm"
	"contentcraft/internal/middleware"
	"contentcraft/internal/repository/postgres"
	"contentcraft/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	// Create tables for this environment's prefix
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.InitSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	logger.Info("database connected", "table_prefix", cfg.TablePrefix)

	// Create repositories
	repoConfig := postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
	}
	txManager := postgres.NewTransactionManager(pool)
	identityRepo := postgres.NewIdentityRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig, txManager)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	revisionRepo := postgres.NewRevisionRepository(repoConfig)
	feedbackRepo := postgres.NewFeedbackRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	locker := postgres.NewProjectLocker(pool)

	// Setup LLM generator
	generator, err := llm.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to setup LLM generator: %v", err)
	}
	logger.Info("llm generator initialized", "provider", generator.Name(), "model", cfg.LLMModel)

	// Create services
	identityService := service.NewIdentityService(identityRepo, tokens, logger)
	projectService := service.NewProjectService(projectRepo, sectionRepo, txManager, logger)
	generationService := service.NewGenerationService(
		projectRepo, sectionRepo, revisionRepo, locker, txManager, generator, cfg.LLMTimeout, logger)
	feedbackService := service.NewFeedbackService(sectionRepo, feedbackRepo, commentRepo, logger)
	exportService := service.NewExportService(projectRepo, sectionRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(identityService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/auth/validate", authHandler.Validate)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)
	mux.HandleFunc("GET /api/projects/{id}/sections", projectHandler.ListSections)

	// Generation routes
	mux.HandleFunc("POST /api/generate-content", generationHandler.GenerateContent)
	mux.HandleFunc("POST /api/refine-content", generationHandler.RefineContent)
	mux.HandleFunc("GET /api/sections/{id}/revisions", generationHandler.ListRevisions)
	mux.HandleFunc("POST /api/ai-template", generationHandler.SuggestTemplate)

	// Feedback routes
	mux.HandleFunc("POST /api/feedback", feedbackHandler.SubmitFeedback)
	mux.HandleFunc("GET /api/sections/{id}/feedback", feedbackHandler.GetFeedback)
	mux.HandleFunc("POST /api/sections/{id}/comments", feedbackHandler.AddComment)
	mux.HandleFunc("GET /api/sections/{id}/comments", feedbackHandler.ListComments)

	// Export route
	mux.HandleFunc("GET /api/export/{project_id}", exportHandler.Export)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.Auth(tokens)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     httpHandler,
		ReadTimeout: 15 * time.Second,
		// Write timeout disabled: generation requests call the LLM once per
		// section and can legitimately run for minutes.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
