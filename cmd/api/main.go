package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ats-backend/config"
	_ "go-ats-backend/docs" // Important for Swagger
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"
	rediscache "go-ats-backend/pkg/redis"
	"go-ats-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Applicant Tracking API
// @version         1.0
// @description     Candidate CRUD, pipeline status transitions and hiring analytics.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting applicant tracking backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.InitSchema(context.Background(), dbPool); err != nil {
		logger.Log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional - cache and rate limiting degrade without it)
	if err := rediscache.Initialize(rediscache.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
	}
	defer rediscache.Close()

	// 5. Setup Validators
	// The custom candidate tags must exist on gin's binding engine and on the
	// usecase validator.
	validate := validator.New()
	if err := validation.RegisterCandidateValidators(validate); err != nil {
		logger.Log.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCandidateValidators(engine); err != nil {
			logger.Log.Error("Failed to register binding validators", "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Repository and Usecase
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, time.Duration(cfg.AnalyticsCacheTTLSeconds)*time.Second)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		DB:          dbPool,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
