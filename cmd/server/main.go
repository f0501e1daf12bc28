// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rhumruin/dopynion-bot/internal/cache"
	"github.com/rhumruin/dopynion-bot/internal/config"
	"github.com/rhumruin/dopynion-bot/internal/handlers"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pub cache.Publisher
	if cfg.HistoryEnabled() {
		q, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.QueueName)
		if err != nil {
			logger.WithError(err).Warn("decision history disabled")
		} else {
			defer q.Close()
			pub = q
			logger.Infof("publishing decisions to %s/%s", cfg.RedisAddr, cfg.QueueName)
		}
	}

	srv := handlers.NewBotServer(logger, cfg.BotName, pub)
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlers.Router(srv),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("%s running on %s", cfg.BotName, cfg.Addr())
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server exited: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown")
		}
	}
}
