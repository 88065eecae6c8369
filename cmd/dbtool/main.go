package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
	"tourism-itinerary-service/internal/adapters/cache"
	"tourism-itinerary-service/internal/config"
	"tourism-itinerary-service/internal/platform/db"
	"tourism-itinerary-service/internal/platform/obs"

	"go.uber.org/zap"
)

// dbtool creates the Postgres cache tables used by the server.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	logger, err := obs.NewLogger(config.Get("APP_ENV", "production"), "dbtool")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer sqlDB.Close()

	logger.Info("initializing cache schema")
	if err := cache.InitSchema(ctx, sqlDB); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")
}
