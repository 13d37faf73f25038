package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "salesincentive-backend/internal/api/http"
	"salesincentive-backend/internal/config"
	"salesincentive-backend/internal/logger"
	"salesincentive-backend/internal/repository/postgres"
	"salesincentive-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Sales Incentive Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	ruleSvc := service.NewRuleService(store.RuleConfigRepository, store.UserRepository, store.NotificationRepository)
	dealSvc := service.NewDealService(
		store.DealRepository,
		store.UserRepository,
		store.PolicyRepository,
		ruleSvc,
		store.NotificationRepository,
		store.AuditLogRepository,
	)
	leaderboardSvc := service.NewLeaderboardService(store.DealRepository, store.UserRepository)
	performanceSvc := service.NewPerformanceService(store.DealRepository, store.UserRepository)
	simulationSvc := service.NewSimulationService(store.DealRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	auditSvc := service.NewAuditService(store.AuditLogRepository)
	policySvc := service.NewPolicyService(store.PolicyRepository)

	// Build HTTP router
	router := httpapi.NewRouter(&httpapi.Services{
		Deal:         dealSvc,
		Leaderboard:  leaderboardSvc,
		Performance:  performanceSvc,
		Simulation:   simulationSvc,
		Notification: notificationSvc,
		Audit:        auditSvc,
		Policy:       policySvc,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in a goroutine and wait for a shutdown signal
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server cleanly", "error", err)
	}
	logger.Info("Server stopped")
}
