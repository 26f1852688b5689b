package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcoot/castlewars/internal/factory"
	"github.com/mcoot/castlewars/internal/rules"
	redisstorage "github.com/mcoot/castlewars/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Output      string
	RulesFile   string
	StorageType string
	RedisURL    string
	LogLevel    string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("CASTLEWARS_SERVER", "http://localhost:8080"),
		Output:      getEnvOrDefault("CASTLEWARS_OUTPUT", "text"),
		RulesFile:   os.Getenv("CASTLEWARS_RULES"),
		StorageType: getEnvOrDefault("CASTLEWARS_STORAGE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("CASTLEWARS_REDIS_URL", "redis://localhost:6379"),
		LogLevel:    os.Getenv("CASTLEWARS_LOG_LEVEL"),
		Verbose:     false,
	}
}

// LoadRules returns the rules from RulesFile, or the defaults when no file is set
func (c *Config) LoadRules() (rules.Config, error) {
	if c.RulesFile == "" {
		return rules.DefaultConfig(), nil
	}
	return rules.Load(c.RulesFile)
}

// Logger builds the CLI logger: text on w, warn level unless LogLevel or Verbose say otherwise
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.level(slog.LevelWarn)}))
}

// ServerLogger builds the logger for serve: JSON on w, info level by default
func (c *Config) ServerLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.level(slog.LevelInfo)}))
}

func (c *Config) level(fallback slog.Level) slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return parseLevel(c.LogLevel, fallback)
}

// FactoryConfig builds the application config for locally run matches
func (c *Config) FactoryConfig(logger *slog.Logger, rulesCfg rules.Config) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		Rules:       &rulesCfg,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
