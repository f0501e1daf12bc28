// internal/models/decision.go
package models

import "strings"

// CardNameAndHand is the payload of the confirm_* and skip_* decisions.
type CardNameAndHand struct {
	CardName CardName   `json:"card_name"`
	Hand     []CardName `json:"hand"`
}

// Hand is the payload of the discard/trash choice decisions.
type Hand struct {
	Hand []CardName `json:"hand"`
}

// PossibleCards lists the cards the bot may choose to receive.
type PossibleCards struct {
	PossibleCards []CardName `json:"possible_cards"`
}

// MoneyCardsInHand lists the treasures that may be upgraded.
type MoneyCardsInHand struct {
	MoneyInHand []CardName `json:"money_in_hand"`
}

// ResponseStr answers with a free-form decision such as "OK" or "END_TURN".
type ResponseStr struct {
	GameID   string `json:"game_id"`
	Decision string `json:"decision"`
}

// ResponseBool answers a yes/no question.
type ResponseBool struct {
	GameID   string `json:"game_id"`
	Decision bool   `json:"decision"`
}

// ResponseCardName answers with a chosen card.
type ResponseCardName struct {
	GameID   string   `json:"game_id"`
	Decision CardName `json:"decision"`
}

// Play decisions.
const (
	DecisionOK      = "OK"
	DecisionEndTurn = "END_TURN"
)

// BuyDecision formats the play decision for buying the given card.
func BuyDecision(c CardName) string {
	return "BUY " + strings.ToUpper(string(c))
}
