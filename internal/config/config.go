// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the settings of both binaries, read from the environment.
// A .env file is picked up by godotenv/autoload in main.
type Config struct {
	Port     string
	LogLevel logrus.Level
	BotName  string

	// RedisAddr enables decision history when non-empty.
	RedisAddr  string
	RedisDB    int
	QueueName  string
	BatchSize  int
	FlushDelay time.Duration

	DatabaseURL string
}

// DefaultQueueName is the Redis list the server pushes decisions onto.
const DefaultQueueName = "dopynion_decisions"

// Load reads the configuration from environment variables:
//   - PORT (default 8080)
//   - LOG_LEVEL (default info)
//   - BOT_NAME (default "Rhum & Ruin")
//   - REDIS_ADDR, REDIS_DB, DECISION_QUEUE_NAME
//   - HISTORIAN_BATCH_SIZE (default 20), HISTORIAN_FLUSH_MS (default 500)
//   - DATABASE_URL, or POSTGRES_USER/POSTGRES_PASSWORD/PG_HOST/PG_PORT/PG_DATABASE
func Load() (*Config, error) {
	lvl, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    lvl,
		BotName:     getEnv("BOT_NAME", "Rhum & Ruin"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		QueueName:   getEnv("DECISION_QUEUE_NAME", DefaultQueueName),
		BatchSize:   getEnvInt("HISTORIAN_BATCH_SIZE", 20),
		FlushDelay:  time.Duration(getEnvInt("HISTORIAN_FLUSH_MS", 500)) * time.Millisecond,
		DatabaseURL: databaseURL(),
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("HISTORIAN_BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// HistoryEnabled reports whether decisions should be pushed to Redis.
func (c *Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if os.Getenv("PG_HOST") == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("PG_HOST"),
		getEnv("PG_PORT", "5432"),
		os.Getenv("PG_DATABASE"),
	)
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
