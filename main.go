// main.go
package main

import (
	"log"
	"time"

	"transfer-booking/cmd"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/wire"
	"transfer-booking/pkg/database"
	"transfer-booking/pkg/handoff"
	"transfer-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Payment handoff store: in-process map by default, redis when the
	// payment page can land on another instance
	store := buildHandoffStore(config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, store, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func buildHandoffStore(config *utils.Config, logger *zap.Logger) handoff.Store {
	if config.Payment.HandoffBackend != "redis" {
		return handoff.NewMemoryStore(logger)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	ttl := time.Duration(config.Payment.FormTTLMinutes) * time.Minute
	logger.Info("Using redis payment handoff store", zap.String("addr", config.Redis.Addr))

	return handoff.NewRedisStore(client, ttl, logger)
}
