package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "rentops-backend/internal/api/http"
	"rentops-backend/internal/config"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/repository/postgres"
	"rentops-backend/internal/security"
	"rentops-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentOps Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize outbound channels
	smsProvider := service.NewHTTPSMSProvider(cfg.SMS.GatewayURL, cfg.SMS.APIKey)
	smsSvc := service.NewSMSService(
		smsProvider,
		store.SMSOutboxRepository,
		cfg.SMS.MaxAttempts,
		time.Duration(cfg.SMS.BackoffSeconds)*time.Second,
	)
	invoiceSvc := service.NewInvoiceService(cfg.Sendgrid.APIKey, cfg.Sendgrid.FromEmail, cfg.Sendgrid.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	taskSvc := service.NewTaskService(
		store.WorkerTaskRepository,
		store.OrderRepository,
		store.WorkerRepository,
		store.TaskRateRepository,
	)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.ClientRepository,
		taskSvc,
		smsSvc,
		invoiceSvc,
		cfg.Rental.ReturnGraceDays,
	)
	earningsSvc := service.NewEarningsService(
		store.WorkerTaskRepository,
		store.WorkerRepository,
		store.AttendanceRepository,
	)
	inventorySvc := service.NewInventoryService(store.ProductRepository, store.OrderRepository)
	catalogSvc := service.NewCatalogService(
		store.WorkerRepository,
		store.AttendanceRepository,
		store.ClientRepository,
		store.ProductRepository,
		store.TaskRateRepository,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:      authSvc,
		Orders:    orderSvc,
		Tasks:     taskSvc,
		Earnings:  earningsSvc,
		Inventory: inventorySvc,
		Catalog:   catalogSvc,
		Tokens:    tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
