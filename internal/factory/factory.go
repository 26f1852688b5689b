package factory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/castlewars/internal/api"
	"github.com/mcoot/castlewars/internal/dependencies/clock"
	"github.com/mcoot/castlewars/internal/dependencies/random"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/match"
	"github.com/mcoot/castlewars/internal/storage"
	"github.com/mcoot/castlewars/internal/storage/memory"
	redisstorage "github.com/mcoot/castlewars/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Rules are the base rules for every match the app runs
	Rules rules.Config

	// Services
	Runner *match.Runner
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Rules overrides the default rules (optional)
	Rules *rules.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rulesCfg := rules.DefaultConfig()
	if cfg.Rules != nil {
		if err := cfg.Rules.Validate(); err != nil {
			return nil, err
		}
		rulesCfg = *cfg.Rules
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, rulesCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, rulesCfg rules.Config, logger *slog.Logger) *App {
	return &App{
		Storage: store,
		Clock:   clk,
		Random:  rnd,
		Logger:  logger,
		Rules:   rulesCfg,
		Runner:  match.NewRunner(store, clk, rnd, logger),
	}
}

// Router builds the HTTP API over the app's services
func (a *App) Router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:  a.Logger,
		Runner:  a.Runner,
		Storage: a.Storage,
		Rules:   a.Rules,
	})
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
