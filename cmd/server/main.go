package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	httpapi "closetshare-backend/internal/api/http"
	"closetshare-backend/internal/config"
	"closetshare-backend/internal/identity"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/payment"
	"closetshare-backend/internal/repository/postgres"
	"closetshare-backend/internal/service"
	"closetshare-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load .env if present; real deployments use the environment directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClosetShare backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Payment gateway configuration", "environment", cfg.Square.Environment)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	} else {
		logger.Info("Using S3 storage", "bucket", cfg.Storage.Bucket, "region", cfg.Storage.Region)
		s3Storage, err := storage.NewS3StorageService(
			cfg.Storage.Region,
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			cfg.Storage.Bucket,
		)
		if err != nil {
			logger.Error("Failed to initialize S3 storage", "error", err)
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		storageService = s3Storage
	}

	// Initialize external clients
	httpClient := &http.Client{Timeout: 30 * time.Second}
	gateway := payment.NewClient(httpClient, cfg.Square.AccessToken, cfg.Square.Environment)
	accounts := identity.NewClient(httpClient, cfg.Identity.BaseURL, cfg.Identity.ServiceKey)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	bookingSvc := service.NewBookingService(store.ListingRepository, store.RentalRepository, gateway, emailSvc)
	listingSvc := service.NewListingService(store.ListingRepository, storageService)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ListingRepository)

	// Initialize HTTP handlers
	listingHandler := httpapi.NewListingHandler(listingSvc, accounts)
	rentalHandler := httpapi.NewRentalHandler(bookingSvc, rentalSvc, accounts)

	router := httpapi.NewRouter(listingHandler, rentalHandler)
	if mockStorage != nil {
		httpapi.RegisterUploadsDir(router, mockStorage.UploadDir())
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
