// internal/models/game.go
package models

// Player is one seat of a match. Hand is only sent for the player whose turn it is.
type Player struct {
	Name string `json:"name"`
	Hand *Cards `json:"hand,omitempty"`
}

// HasHand reports whether the player carries a non-empty hand.
func (p Player) HasHand() bool {
	return p.Hand != nil && !p.Hand.Empty()
}

// Game is the snapshot of a match the server sends with each /play request.
type Game struct {
	Finished bool     `json:"finished"`
	Players  []Player `json:"players"`
	Stock    Cards    `json:"stock"`
}
