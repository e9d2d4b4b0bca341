package main

import (
	"context" // context package is needed for store and Redis operations
	"log"     // log package is needed for logging

	"booking_system/internal/api"      // Custom package for API handlers
	"booking_system/internal/config"   // Custom package for configuration
	"booking_system/internal/password" // Password verification policies
	"booking_system/internal/store"    // Storage adapter contract

	"booking_system/internal/store/mongostore" // Document backend
	"booking_system/internal/store/sqlstore"   // Relational backend

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	// Open the configured storage backend
	var st store.Store
	var err error
	switch cfg.StoreBackend {
	case "mysql":
		st, err = sqlstore.Open(cfg.DSN(), sqlstore.Options{FormatDates: cfg.FormatDates})
	default:
		st, err = mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	}
	if err != nil {
		logrus.Fatalf("failed to connect to store (%s): %v", cfg.StoreBackend, err)
	}
	defer st.Close(ctx) // Explicit teardown on shutdown

	// Setup Redis client for the booking-list cache; optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set; booking-list cache disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Admin password policy is a deployment choice, not a per-request one
	adminVerify := password.ForPolicy(cfg.AdminAuthPolicy)
	if cfg.AdminAuthPolicy != "bcrypt" {
		logrus.Warn("admin login uses legacy plaintext comparison; set ADMIN_AUTH_POLICY=bcrypt to harden")
	}

	// Setup Gin with all routes
	r := api.NewRouter(st, redisClient, adminVerify, cfg.UploadDir)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
