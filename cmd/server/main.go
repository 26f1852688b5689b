package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/castlewars/internal/api"
	"github.com/mcoot/castlewars/internal/factory"
	"github.com/mcoot/castlewars/internal/rules"
	redisstorage "github.com/mcoot/castlewars/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	if path := os.Getenv("RULES_FILE"); path != "" {
		rulesCfg, err := rules.Load(path)
		if err != nil {
			logger.Error("failed to load rules", slog.String("path", path), slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.Rules = &rulesCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(app.Router(), serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
