// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"gifboard/cmd"
	"gifboard/internal/data/repository"
	"gifboard/internal/wire"
	"gifboard/pkg/cache"
	"gifboard/pkg/database"
	"gifboard/pkg/giphy"
	"gifboard/pkg/token"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
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
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	issuer, err := token.NewIssuer(config.JWT.Secret, config.JWT.Expiry)
	if err != nil {
		logger.Fatal("Failed to create token issuer", zap.Error(err))
	}

	// Search goes through Redis when it is configured and reachable
	var searcher giphy.Searcher = giphy.NewClient(config.Giphy)
	if config.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, search cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			searcher = cache.NewSearchCache(searcher, rdb, config.Redis.CacheTTL, logger)
			logger.Info("Search cache enabled",
				zap.String("addr", config.Redis.Addr),
				zap.Duration("ttl", config.Redis.CacheTTL),
			)
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, issuer, searcher, config, logger)

	// Start server
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
