// internal/handlers/bot_server.go
package handlers

import (
	"context"
	"time"

	"github.com/rhumruin/dopynion-bot/internal/cache"
	"github.com/rhumruin/dopynion-bot/internal/game"
	"github.com/rhumruin/dopynion-bot/internal/strategy"
	"github.com/sirupsen/logrus"
)

// publishTimeout bounds how long a request waits on the decision queue.
const publishTimeout = 500 * time.Millisecond

// BotServer holds everything the HTTP handlers share across games.
type BotServer struct {
	Store     *game.TurnStateStore
	Evaluator *strategy.Evaluator
	Publisher cache.Publisher
	Logger    *logrus.Logger
}

// NewBotServer wires a server with an empty turn-state store. A nil publisher
// disables decision history.
func NewBotServer(logger *logrus.Logger, botName string, pub cache.Publisher) *BotServer {
	if pub == nil {
		pub = cache.NopPublisher{}
	}
	store := game.NewTurnStateStore()
	store.Logf = logger.Debugf
	return &BotServer{
		Store:     store,
		Evaluator: strategy.New(botName, logger),
		Publisher: pub,
		Logger:    logger,
	}
}

// record pushes the decision to the historian. Failures are logged only.
func (s *BotServer) record(ctx context.Context, gameID, endpoint, decision string) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.Publisher.PublishDecision(ctx, cache.NewDecisionRecord(gameID, endpoint, decision)); err != nil {
		s.Logger.WithFields(logrus.Fields{
			"game_id":  gameID,
			"endpoint": endpoint,
		}).WithError(err).Warn("failed to publish decision")
	}
}
