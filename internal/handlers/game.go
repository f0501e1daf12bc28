// internal/handlers/game.go
package handlers

import (
	"net/http"

	"github.com/rhumruin/dopynion-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// NameHandler answers with the bot's display name.
func (s *BotServer) NameHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Evaluator.BotName)
}

// StartGameHandler acknowledges a new game.
func (s *BotServer) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Logger.WithField("game_id", gameID).Info("game started")
	s.answerStr(w, r, gameID, models.DecisionOK)
}

// StartTurnHandler marks a turn boundary: the purchase counter goes back to one.
func (s *BotServer) StartTurnHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Store.ResetTurn(gameID)
	s.Logger.WithField("game_id", gameID).Debug("turn started")
	s.answerStr(w, r, gameID, models.DecisionOK)
}

// PlayHandler decides the bot's move for the current turn. A buy is only
// reported once the purchase has actually been consumed.
func (s *BotServer) PlayHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var g models.Game
	if err := decodeBody(r, &g); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ts := s.Store.GetOrCreate(gameID)
	log := s.Logger.WithFields(logrus.Fields{
		"game_id":   gameID,
		"players":   len(g.Players),
		"finished":  g.Finished,
		"purchases": ts.PurchasesRemaining(),
	})

	decision := models.DecisionEndTurn
	if s.Evaluator.ShouldBuyEstate(&g, ts) && ts.UsePurchase() {
		decision = models.BuyDecision(models.Estate)
	}
	log.WithField("decision", decision).Info("play")
	s.answerStr(w, r, gameID, decision)
}

// EndGameHandler acknowledges the end of a game and forgets its turn state.
func (s *BotServer) EndGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Store.Delete(gameID)
	s.Logger.WithField("game_id", gameID).Info("game ended")
	s.answerStr(w, r, gameID, models.DecisionOK)
}

func (s *BotServer) answerStr(w http.ResponseWriter, r *http.Request, gameID, decision string) {
	s.record(r.Context(), gameID, r.URL.Path, decision)
	writeJSON(w, http.StatusOK, models.ResponseStr{GameID: gameID, Decision: decision})
}
