// Package historian drains the bot's decision queue into Postgres.
package historian

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rhumruin/dopynion-bot/internal/cache"
	"github.com/sirupsen/logrus"
)

// popTimeout is how long one BLPop waits so that cancellation is noticed.
const popTimeout = 3 * time.Second

// maxBufferedBatches bounds how many batches are kept for retry while the sink fails.
const maxBufferedBatches = 50

// Source yields queued decision records. cache.RedisQueue implements it.
type Source interface {
	PopDecision(ctx context.Context, timeout time.Duration) (cache.DecisionRecord, error)
}

// SinkFunc persists a batch of records, e.g. database.InsertDecisions.
type SinkFunc func(ctx context.Context, records []cache.DecisionRecord) error

// Service batches records popped from Source and flushes them to Sink
// every FlushDelay or whenever BatchSize records are pending.
type Service struct {
	source     Source
	sink       SinkFunc
	batchSize  int
	maxPending int
	flushDelay time.Duration
	logger     *logrus.Logger

	batchMu sync.Mutex
	batch   []cache.DecisionRecord
	dropped int
}

func NewService(source Source, sink SinkFunc, batchSize int, flushDelay time.Duration, logger *logrus.Logger) *Service {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Service{
		source:     source,
		sink:       sink,
		batchSize:  batchSize,
		maxPending: batchSize * maxBufferedBatches,
		flushDelay: flushDelay,
		logger:     logger,
		batch:      make([]cache.DecisionRecord, 0, batchSize),
	}
}

// Run reads from the source until ctx is cancelled, then flushes what is left.
func (hs *Service) Run(ctx context.Context) {
	hs.logger.Info("historian started")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		hs.flushLoop(ctx)
	}()

	hs.readLoop(ctx)
	wg.Wait()

	// final flush outlives ctx
	hs.Flush(context.Background())
	if lost := hs.Pending(); lost > 0 {
		hs.logger.WithField("count", lost).Error("decisions lost at shutdown")
	}
	hs.logger.WithField("dropped", hs.Dropped()).Info("historian stopped")
}

func (hs *Service) readLoop(ctx context.Context) {
	for ctx.Err() == nil {
		rec, err := hs.source.PopDecision(ctx, popTimeout)
		switch {
		case err == nil:
			hs.Add(ctx, rec)
		case errors.Is(err, cache.ErrQueueEmpty), ctx.Err() != nil:
		default:
			hs.logger.WithError(err).Error("pop decision")
		}
	}
}

func (hs *Service) flushLoop(ctx context.Context) {
	if hs.flushDelay <= 0 {
		return
	}
	ticker := time.NewTicker(hs.flushDelay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hs.Flush(ctx)
		}
	}
}

// Add queues a record and flushes once the batch is full.
func (hs *Service) Add(ctx context.Context, rec cache.DecisionRecord) {
	hs.batchMu.Lock()
	hs.batch = append(hs.batch, rec)
	full := len(hs.batch) >= hs.batchSize
	hs.batchMu.Unlock()

	if full {
		hs.Flush(ctx)
	}
}

// Pending returns the number of records waiting for a flush.
func (hs *Service) Pending() int {
	hs.batchMu.Lock()
	defer hs.batchMu.Unlock()
	return len(hs.batch)
}

// Dropped returns how many records were discarded because the retry buffer was full.
func (hs *Service) Dropped() int {
	hs.batchMu.Lock()
	defer hs.batchMu.Unlock()
	return hs.dropped
}

// Flush writes the pending batch. On failure the records are put back at
// the front of the batch for the next attempt, keeping at most maxPending
// records; the oldest are dropped first.
func (hs *Service) Flush(ctx context.Context) {
	hs.batchMu.Lock()
	if len(hs.batch) == 0 {
		hs.batchMu.Unlock()
		return
	}
	pending := hs.batch
	hs.batch = make([]cache.DecisionRecord, 0, hs.batchSize)
	hs.batchMu.Unlock()

	if err := hs.sink(ctx, pending); err != nil {
		hs.logger.WithError(err).WithField("count", len(pending)).Error("flush decisions")
		hs.batchMu.Lock()
		hs.batch = append(pending, hs.batch...)
		over := len(hs.batch) - hs.maxPending
		if over > 0 {
			hs.batch = append([]cache.DecisionRecord(nil), hs.batch[over:]...)
			hs.dropped += over
		}
		hs.batchMu.Unlock()
		if over > 0 {
			hs.logger.WithField("count", over).Warn("retry buffer full, dropped oldest decisions")
		}
		return
	}
	hs.logger.WithField("count", len(pending)).Debug("flushed decisions")
}
