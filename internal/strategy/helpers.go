// internal/strategy/helpers.go
package strategy

import (
	"strings"

	"github.com/rhumruin/dopynion-bot/internal/models"
)

// CountCopper returns the number of Copper cards in hand.
func CountCopper(hand []models.CardName) int {
	n := 0
	for _, c := range hand {
		if c == models.Copper {
			n++
		}
	}
	return n
}

// EstateAvailable reports whether the stock still holds at least one Estate.
func EstateAvailable(stock models.Cards) bool {
	return stock.Count(models.Estate) > 0
}

// FindPlayer returns the first player matching pred, in snapshot order.
func FindPlayer(players []models.Player, pred func(models.Player) bool) (*models.Player, bool) {
	for i := range players {
		if pred(players[i]) {
			return &players[i], true
		}
	}
	return nil, false
}

// IsOurPlayer matches a player whose name contains botName and who holds a
// non-empty hand, i.e. the player the server is asking us to act for.
func IsOurPlayer(botName string) func(models.Player) bool {
	return func(p models.Player) bool {
		return strings.Contains(p.Name, botName) && p.HasHand()
	}
}

// OurHand returns our player's hand as a flat list, or nil when we are not
// found or have nothing in hand. It expands every card, so the decision path
// counts on the multiset instead.
func OurHand(game *models.Game, botName string) []models.CardName {
	if game == nil {
		return nil
	}
	p, ok := FindPlayer(game.Players, IsOurPlayer(botName))
	if !ok {
		return nil
	}
	return p.Hand.List()
}
