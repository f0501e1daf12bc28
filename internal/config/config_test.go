package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "BOT_NAME", "REDIS_ADDR", "REDIS_DB", "DECISION_QUEUE_NAME",
		"HISTORIAN_BATCH_SIZE", "HISTORIAN_FLUSH_MS", "DATABASE_URL",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "PG_HOST", "PG_PORT", "PG_DATABASE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "Rhum & Ruin", cfg.BotName)
	assert.Equal(t, DefaultQueueName, cfg.QueueName)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.FlushDelay)
	assert.False(t, cfg.HistoryEnabled())
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("PG_HOST", "db")
	t.Setenv("POSTGRES_USER", "bot")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "dopynion")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "postgres://bot:secret@db:5432/dopynion", cfg.DatabaseURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("HISTORIAN_BATCH_SIZE", "0")
	_, err = Load()
	assert.Error(t, err)
}
