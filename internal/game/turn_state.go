// internal/game/turn_state.go
package game

import "sync"

// purchasesPerTurn is the number of buys a player gets at the start of a turn.
const purchasesPerTurn = 1

// TurnState tracks this bot's private per-game counters for the current turn.
// It is not part of the snapshot the game server sends. A nil *TurnState
// behaves as an exhausted turn that cannot be reset.
type TurnState struct {
	GameID string

	mu        sync.Mutex
	purchases int
}

func newTurnState(gameID string) *TurnState {
	return &TurnState{
		GameID:    gameID,
		purchases: purchasesPerTurn,
	}
}

// Reset restores the purchase counter for a new turn.
func (ts *TurnState) Reset() {
	if ts == nil {
		return
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.purchases = purchasesPerTurn
}

// UsePurchase consumes one purchase if any is left and reports whether it did.
// The check and the decrement happen under the same lock.
func (ts *TurnState) UsePurchase() bool {
	if ts == nil {
		return false
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.purchases <= 0 {
		return false
	}
	ts.purchases--
	return true
}

// CanPurchase reports whether at least one purchase is left this turn.
func (ts *TurnState) CanPurchase() bool {
	if ts == nil {
		return false
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.purchases > 0
}

// PurchasesRemaining returns the current counter value.
func (ts *TurnState) PurchasesRemaining() int {
	if ts == nil {
		return 0
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.purchases
}
