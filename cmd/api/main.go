package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-finder-backend/config"
	_ "job-finder-backend/docs" // Important for Swagger
	v1 "job-finder-backend/internal/delivery/http/v1"
	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/extractor"
	"job-finder-backend/internal/repository/memory"
	"job-finder-backend/internal/repository/postgres"
	"job-finder-backend/internal/scraper"
	"job-finder-backend/internal/usecase"
	"job-finder-backend/pkg/database"
	"job-finder-backend/pkg/logger"
	"job-finder-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Finder Backend API
// @version         1.0
// @description     Resume parsing, job search and saved-job tracking for candidates.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job finder backend", "port", cfg.Port)

	// 3. Setup Repositories (Postgres when configured, in-memory otherwise)
	var (
		profileRepo    domain.ProfileRepository
		experienceRepo domain.ExperienceRepository
		savedJobRepo   domain.SavedJobRepository
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		profileRepo = postgres.NewProfileRepository(dbPool)
		experienceRepo = postgres.NewExperienceRepository(dbPool)
		savedJobRepo = postgres.NewSavedJobRepository(dbPool)
	} else {
		profileRepo = memory.NewProfileRepository()
		experienceRepo = memory.NewExperienceRepository()
		savedJobRepo = memory.NewSavedJobRepository()
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
		}
	}
	defer redis.Close()

	// 5. Setup Scraper
	linkedin := scraper.NewLinkedIn(scraper.Config{
		BaseURL: cfg.ScraperBaseURL,
		Timeout: time.Duration(cfg.ScraperTimeoutSeconds) * time.Second,
		MaxJobs: cfg.ScraperMaxJobs,
	})

	// 6. Setup UseCases
	validate := validator.New()
	resumeUC := usecase.NewResumeUsecase(profileRepo, extractor.New())
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, validate)
	searchUC := usecase.NewSearchUsecase(linkedin, validate)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:     resumeUC,
		ExperienceUC: experienceUC,
		SearchUC:     searchUC,
		SavedJobUC:   savedJobUC,
		Config:       cfg,
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
