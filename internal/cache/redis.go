// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DecisionRecord is one answer the bot gave to the game server.
type DecisionRecord struct {
	ID        uuid.UUID `json:"id"`
	GameID    string    `json:"game_id"`
	Endpoint  string    `json:"endpoint"`
	Decision  string    `json:"decision"`
	Timestamp int64     `json:"timestamp"` // epoch millis
}

// NewDecisionRecord stamps a record with a fresh id and the current time.
func NewDecisionRecord(gameID, endpoint, decision string) DecisionRecord {
	return DecisionRecord{
		ID:        uuid.New(),
		GameID:    gameID,
		Endpoint:  endpoint,
		Decision:  decision,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Publisher ships decision records to the historian.
type Publisher interface {
	PublishDecision(ctx context.Context, record DecisionRecord) error
}

// NopPublisher drops every record. Used when no Redis is configured.
type NopPublisher struct{}

func (NopPublisher) PublishDecision(context.Context, DecisionRecord) error { return nil }

// RedisQueue pushes and pops decision records on a Redis list.
type RedisQueue struct {
	Client    *redis.Client
	QueueName string
}

// ConnectRedis opens a client on addr/db and pings it.
func ConnectRedis(ctx context.Context, addr string, db int, queueName string) (*RedisQueue, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &RedisQueue{Client: rdb, QueueName: queueName}, nil
}

// PublishDecision serializes the record to JSON and pushes it to the queue.
func (q *RedisQueue) PublishDecision(ctx context.Context, record DecisionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal DecisionRecord: %w", err)
	}
	if err := q.Client.RPush(ctx, q.QueueName, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", q.QueueName, err)
	}
	return nil
}

// ErrQueueEmpty is returned by PopDecision when nothing arrived before the timeout.
var ErrQueueEmpty = errors.New("decision queue empty")

// PopDecision blocks up to timeout for the next record on the queue.
func (q *RedisQueue) PopDecision(ctx context.Context, timeout time.Duration) (DecisionRecord, error) {
	res, err := q.Client.BLPop(ctx, timeout, q.QueueName).Result()
	if errors.Is(err, redis.Nil) {
		return DecisionRecord{}, ErrQueueEmpty
	}
	if err != nil {
		return DecisionRecord{}, fmt.Errorf("BLPop %s: %w", q.QueueName, err)
	}
	// res[0] is the queue name and res[1] the payload.
	if len(res) < 2 {
		return DecisionRecord{}, ErrQueueEmpty
	}
	return DecodeDecision([]byte(res[1]))
}

// DecodeDecision parses a queued payload.
func DecodeDecision(payload []byte) (DecisionRecord, error) {
	var record DecisionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return DecisionRecord{}, fmt.Errorf("invalid decision record: %w", err)
	}
	if record.GameID == "" {
		return DecisionRecord{}, errors.New("invalid decision record: missing game_id")
	}
	return record, nil
}

// Close releases the Redis client.
func (q *RedisQueue) Close() error {
	return q.Client.Close()
}
