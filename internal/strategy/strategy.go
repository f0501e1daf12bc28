// internal/strategy/strategy.go
package strategy

import (
	"github.com/rhumruin/dopynion-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultBotName is the display name the bot registers with the game server.
const DefaultBotName = "Rhum & Ruin"

// minCopperForEstate is how many Copper the hand must hold before we buy an Estate.
const minCopperForEstate = 2

// PurchaseChecker is the read side of a turn state.
type PurchaseChecker interface {
	CanPurchase() bool
}

// Evaluator decides what the bot does with its buy phase.
type Evaluator struct {
	// BotName is matched as a substring of the player names in the snapshot.
	BotName string
	Logger  logrus.FieldLogger
}

// New returns an Evaluator for the given bot name. An empty name falls back to DefaultBotName.
func New(botName string, logger logrus.FieldLogger) *Evaluator {
	if botName == "" {
		botName = DefaultBotName
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Evaluator{BotName: botName, Logger: logger}
}

// ShouldBuyEstate reports whether the bot should buy an Estate this turn.
// Checks run in order and stop at the first failure:
//  1. a purchase is left this turn
//  2. our player is in the snapshot with a non-empty hand
//  3. the hand holds at least two Copper
//  4. the stock still has an Estate
//
// It only reads its inputs. Consuming the purchase is up to the caller.
func (e *Evaluator) ShouldBuyEstate(game *models.Game, ts PurchaseChecker) bool {
	if game == nil || ts == nil {
		return false
	}
	log := e.Logger.WithField("bot", e.BotName)

	if !ts.CanPurchase() {
		log.Debug("no estate: no purchase left this turn")
		return false
	}

	p, ok := FindPlayer(game.Players, IsOurPlayer(e.BotName))
	if !ok {
		log.WithField("players", len(game.Players)).Debug("no estate: our hand not found")
		return false
	}

	// counted on the multiset: the server's quantities are not bounded
	copper := p.Hand.Count(models.Copper)
	if copper < minCopperForEstate {
		log.WithFields(logrus.Fields{
			"copper": copper,
			"hand":   p.Hand.Len(),
		}).Debug("no estate: not enough copper")
		return false
	}

	if !EstateAvailable(game.Stock) {
		log.Debug("no estate: estate pile empty")
		return false
	}

	log.WithFields(logrus.Fields{
		"copper": copper,
		"estate": game.Stock.Count(models.Estate),
	}).Debug("buying estate")
	return true
}
