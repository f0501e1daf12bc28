// cmd/historian/main.go pops the bot's decisions from Redis and persists them to PostgreSQL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rhumruin/dopynion-bot/internal/cache"
	"github.com/rhumruin/dopynion-bot/internal/config"
	"github.com/rhumruin/dopynion-bot/internal/database"
	"github.com/rhumruin/dopynion-bot/internal/historian"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	if !cfg.HistoryEnabled() {
		logger.Fatal("REDIS_ADDR is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.ConnectDB(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatalf("database: %v", err)
	}
	defer database.Close()
	if err := database.EnsureSchema(ctx); err != nil {
		logger.Fatalf("database: %v", err)
	}

	q, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.QueueName)
	if err != nil {
		logger.Fatalf("redis: %v", err)
	}
	defer q.Close()

	hs := historian.NewService(q, database.InsertDecisions, cfg.BatchSize, cfg.FlushDelay, logger)
	hs.Run(ctx)
}
