// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rhumruin/dopynion-bot/internal/middleware"
)

// Router builds the routes the game server calls.
func Router(s *BotServer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.LogMiddleware(s.Logger), middleware.Recover(s.Logger))
	r.Use(chimw.Heartbeat("/ping"))

	r.Get("/", s.DocsHandler(r))
	r.Get("/name", s.NameHandler)

	// game lifecycle
	r.Get("/start_game", s.StartGameHandler)
	r.Get("/start_turn", s.StartTurnHandler)
	r.Post("/play", s.PlayHandler)
	r.Get("/end_game", s.EndGameHandler)

	// card interactions
	r.Post("/confirm_discard_card_from_hand", s.ConfirmDiscardCardFromHandHandler)
	r.Post("/discard_card_from_hand", s.DiscardCardFromHandHandler)
	r.Post("/confirm_trash_card_from_hand", s.ConfirmTrashCardFromHandHandler)
	r.Post("/trash_card_from_hand", s.TrashCardFromHandHandler)
	r.Post("/confirm_discard_deck", s.ConfirmDiscardDeckHandler)
	r.Post("/choose_card_to_receive_in_discard", s.ChooseCardToReceiveInDiscardHandler)
	r.Post("/choose_card_to_receive_in_deck", s.ChooseCardToReceiveInDeckHandler)
	r.Post("/skip_card_reception_in_hand", s.SkipCardReceptionInHandHandler)
	r.Post("/trash_money_card_for_better_money_card", s.TrashMoneyCardForBetterMoneyCardHandler)

	return r
}
