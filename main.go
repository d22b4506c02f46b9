package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/VoyageGenie/voyage-backend/config"
	"github.com/VoyageGenie/voyage-backend/db"
	"github.com/VoyageGenie/voyage-backend/handlers"
	"github.com/VoyageGenie/voyage-backend/internal/store/postgres"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/router"
	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Database connection, TLS enforced in production.
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	if cfg.Server.Environment == config.EnvProduction {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Database.Host,
			MinVersion: tls.VersionTLS12,
		}
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.UseTLS {
		redisOptions.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)
	defer func() {
		_ = redisClient.Close()
	}()

	// Stores
	itineraryStore := postgres.NewItineraryStore(pool)
	userStore := postgres.NewUserStore(pool)

	// Services
	syncService := services.NewSyncService(itineraryStore,
		time.Duration(cfg.Sync.DebounceMillis)*time.Millisecond,
		time.Duration(cfg.Sync.SaveTimeoutSeconds)*time.Second)
	cacheService := services.NewCacheService(redisClient, time.Hour)
	lockoutService := services.NewLockoutService(redisClient,
		cfg.Auth.MaxLoginAttempts,
		time.Duration(cfg.Auth.LockoutMinutes)*time.Minute)
	rateLimitService := services.NewRateLimitService(redisClient)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	// Models
	itineraryModel := models.NewItineraryModel(itineraryStore, syncService, cacheService)
	userModel := models.NewUserModel(userStore, lockoutService,
		[]byte(cfg.Server.JwtSecretKey),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.LockoutMinutes)

	r := router.SetupRouter(router.Dependencies{
		Config:           cfg,
		AuthHandler:      handlers.NewAuthHandler(userModel),
		ItineraryHandler: handlers.NewItineraryHandler(itineraryModel),
		SectionHandler:   handlers.NewSectionHandler(itineraryModel),
		ImageHandler:     handlers.NewImageHandler(),
		HealthHandler:    handlers.NewHealthHandler(healthService),
		RateLimiter:      rateLimitService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}

	// Edits still queued behind the debounce window must reach the
	// database before the process exits.
	syncService.Flush()
}
