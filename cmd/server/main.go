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
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"

	httpapi "krishisanjivni-backend/internal/api/http"
	"krishisanjivni-backend/internal/config"
	"krishisanjivni-backend/internal/logger"
	"krishisanjivni-backend/internal/repository/postgres"
	"krishisanjivni-backend/internal/security"
	"krishisanjivni-backend/internal/service"
	"krishisanjivni-backend/internal/upstream"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; a missing .env is not an error
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting KrishiSanjivni Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Redis (optional; market prices fall back to direct fetches)
	var cache redis.Cmdable
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unavailable, market price caching disabled", "error", err)
		} else {
			cache = rdb
			defer rdb.Close()
			logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize upstream clients
	razorpayClient := upstream.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)
	mandiClient := upstream.NewMandiClient(cfg.Market.APIKey, cfg.Market.ResourceID, cfg.Market.BaseURL, cfg.Market.FetchLimit)
	weatherClient := upstream.NewWeatherClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
	geminiClient := upstream.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	toolSvc := service.NewToolService(store.ToolRepository)
	whSvc := service.NewWarehouseService(store.WarehouseRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ToolRepository,
		store.WarehouseRepository,
		store.UserRepository,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.BookingRepository,
		store.UserRepository,
		razorpayClient,
		emailSvc,
	)
	soilSvc := service.NewSoilCheckService(store.SoilCheckRepository)
	marketSvc := service.NewMarketService(mandiClient, cache, cfg.Market.CacheTTL)
	weatherSvc := service.NewWeatherService(weatherClient)
	chatSvc := service.NewChatService(store.ChatRepository, geminiClient)

	// Initialize HTTP API
	handlers := httpapi.NewHandlers(
		authSvc, userSvc, toolSvc, whSvc,
		bookingSvc, paymentSvc, soilSvc,
		marketSvc, weatherSvc, chatSvc,
	)
	router := httpapi.NewRouter(handlers, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
