// internal/game/turn_state_store.go
package game

import (
	"sync"
)

// TurnStateStore maps game identifiers to their TurnState. Entries are created
// on first reference and live until Delete is called.
type TurnStateStore struct {
	mu     sync.Mutex
	states map[string]*TurnState

	// Logf, if set, is called when a game is first registered or evicted.
	Logf func(f string, v ...interface{})
}

func NewTurnStateStore() *TurnStateStore {
	return &TurnStateStore{
		states: make(map[string]*TurnState),
	}
}

// GetOrCreate returns the state for gameID, registering a fresh one if needed.
func (s *TurnStateStore) GetOrCreate(gameID string) *TurnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ts, ok := s.states[gameID]; ok {
		return ts
	}
	ts := newTurnState(gameID)
	s.states[gameID] = ts
	s.logf("created turn state for game %s", gameID)
	return ts
}

// Lookup returns the state for gameID without creating it.
func (s *TurnStateStore) Lookup(gameID string) (*TurnState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.states[gameID]
	return ts, ok
}

// ResetTurn marks a turn boundary for gameID.
func (s *TurnStateStore) ResetTurn(gameID string) {
	s.GetOrCreate(gameID).Reset()
}

// UsePurchase consumes one purchase for gameID. It returns false when the
// turn has no purchase left.
func (s *TurnStateStore) UsePurchase(gameID string) bool {
	return s.GetOrCreate(gameID).UsePurchase()
}

// CanPurchase reports whether gameID still has a purchase this turn.
func (s *TurnStateStore) CanPurchase(gameID string) bool {
	return s.GetOrCreate(gameID).CanPurchase()
}

// Delete evicts the state of a finished game.
func (s *TurnStateStore) Delete(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[gameID]; !ok {
		return
	}
	delete(s.states, gameID)
	s.logf("evicted turn state for game %s", gameID)
}

// Len returns the number of tracked games.
func (s *TurnStateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *TurnStateStore) logf(f string, v ...interface{}) {
	if s.Logf != nil {
		s.Logf(f, v...)
	}
}
