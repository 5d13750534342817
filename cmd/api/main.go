package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"recruitment-portal-backend/config"
	v1 "recruitment-portal-backend/internal/delivery/http/v1"
	"recruitment-portal-backend/internal/repository/postgres"
	"recruitment-portal-backend/internal/usecase"
	"recruitment-portal-backend/pkg/database"
	"recruitment-portal-backend/pkg/logger"
	"recruitment-portal-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment portal backend", "port", cfg.Port)

	// 3. Migrate and open the shared pool
	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories (every store shares the one pool handle)
	accountRepo := postgres.NewAccountRepository(dbPool)
	availabilityRepo := postgres.NewAvailabilityRepository(dbPool)
	competenceProfileRepo := postgres.NewCompetenceProfileRepository(dbPool)
	competenceRepo := postgres.NewCompetenceRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(accountRepo, txManager, validate)
	applicationUC := usecase.NewApplicationUsecase(accountRepo, availabilityRepo, competenceProfileRepo, txManager)
	competenceUC := usecase.NewCompetenceUsecase(competenceRepo)

	// 6. Token service
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL())

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ApplicationUC: applicationUC,
		CompetenceUC:  competenceUC,
		Tokens:        tokens,
		Config:        cfg,
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
}
