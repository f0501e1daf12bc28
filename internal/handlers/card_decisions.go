// internal/handlers/card_decisions.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rhumruin/dopynion-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// The card interaction routes always accept, or pick the first card offered.

func (s *BotServer) ConfirmDiscardCardFromHandHandler(w http.ResponseWriter, r *http.Request) {
	var in models.CardNameAndHand
	s.confirm(w, r, &in)
}

func (s *BotServer) DiscardCardFromHandHandler(w http.ResponseWriter, r *http.Request) {
	var in models.Hand
	s.pickFirst(w, r, &in, func() []models.CardName { return in.Hand })
}

func (s *BotServer) ConfirmTrashCardFromHandHandler(w http.ResponseWriter, r *http.Request) {
	var in models.CardNameAndHand
	s.confirm(w, r, &in)
}

func (s *BotServer) TrashCardFromHandHandler(w http.ResponseWriter, r *http.Request) {
	var in models.Hand
	s.pickFirst(w, r, &in, func() []models.CardName { return in.Hand })
}

// ConfirmDiscardDeckHandler carries no body.
func (s *BotServer) ConfirmDiscardDeckHandler(w http.ResponseWriter, r *http.Request) {
	s.confirm(w, r, nil)
}

func (s *BotServer) ChooseCardToReceiveInDiscardHandler(w http.ResponseWriter, r *http.Request) {
	var in models.PossibleCards
	s.pickFirst(w, r, &in, func() []models.CardName { return in.PossibleCards })
}

func (s *BotServer) ChooseCardToReceiveInDeckHandler(w http.ResponseWriter, r *http.Request) {
	var in models.PossibleCards
	s.pickFirst(w, r, &in, func() []models.CardName { return in.PossibleCards })
}

func (s *BotServer) SkipCardReceptionInHandHandler(w http.ResponseWriter, r *http.Request) {
	var in models.CardNameAndHand
	s.confirm(w, r, &in)
}

func (s *BotServer) TrashMoneyCardForBetterMoneyCardHandler(w http.ResponseWriter, r *http.Request) {
	var in models.MoneyCardsInHand
	s.pickFirst(w, r, &in, func() []models.CardName { return in.MoneyInHand })
}

var errNoCardOffered = errors.New("no card to choose from")

// confirm answers true once the optional body has been validated.
func (s *BotServer) confirm(w http.ResponseWriter, r *http.Request, in interface{}) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if in != nil {
		if err := decodeBody(r, in); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	s.record(r.Context(), gameID, r.URL.Path, strconv.FormatBool(true))
	writeJSON(w, http.StatusOK, models.ResponseBool{GameID: gameID, Decision: true})
}

// pickFirst decodes the body into in and answers with the first card of choices().
func (s *BotServer) pickFirst(w http.ResponseWriter, r *http.Request, in interface{}, choices func() []models.CardName) {
	gameID, err := gameIDFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := decodeBody(r, in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cards := choices()
	if len(cards) == 0 {
		writeError(w, http.StatusBadRequest, errNoCardOffered)
		return
	}
	card := cards[0]
	s.Logger.WithFields(logrus.Fields{
		"game_id": gameID,
		"path":    r.URL.Path,
		"card":    card,
	}).Debug("card chosen")
	s.record(r.Context(), gameID, r.URL.Path, string(card))
	writeJSON(w, http.StatusOK, models.ResponseCardName{GameID: gameID, Decision: card})
}
