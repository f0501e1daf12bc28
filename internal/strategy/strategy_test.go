// internal/strategy/strategy_test.go
package strategy

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/rhumruin/dopynion-bot/internal/game"
	"github.com/rhumruin/dopynion-bot/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTurn bool

func (f fixedTurn) CanPurchase() bool { return bool(f) }

func hand(q map[models.CardName]int) *models.Cards {
	c := models.NewCards(q)
	return &c
}

// snapshot builds a game where our bot holds h and the stock is s.
func snapshot(h map[models.CardName]int, s map[models.CardName]int) *models.Game {
	return &models.Game{
		Players: []models.Player{
			{Name: "Opponent"},
			{Name: DefaultBotName, Hand: hand(h)},
		},
		Stock: models.NewCards(s),
	}
}

func newEvaluator() *Evaluator {
	logger, _ := test.NewNullLogger()
	return New("", logger)
}

func TestCountCopper(t *testing.T) {
	cases := []struct {
		name string
		hand []models.CardName
		want int
	}{
		{"empty", nil, 0},
		{"none", []models.CardName{models.Estate, models.Silver, models.Gold}, 0},
		{"one", []models.CardName{models.Copper, models.Estate, models.Silver}, 1},
		{"mixed", []models.CardName{models.Copper, models.Copper, models.Estate, models.Copper}, 3},
		{"all", []models.CardName{models.Copper, models.Copper, models.Copper}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CountCopper(tc.hand))
		})
	}
}

func TestEstateAvailable(t *testing.T) {
	assert.True(t, EstateAvailable(models.NewCards(map[models.CardName]int{models.Estate: 1})))
	assert.True(t, EstateAvailable(models.NewCards(map[models.CardName]int{models.Estate: 8})))
	assert.False(t, EstateAvailable(models.NewCards(map[models.CardName]int{models.Estate: 0})))
	assert.False(t, EstateAvailable(models.NewCards(map[models.CardName]int{models.Copper: 10})))
	assert.False(t, EstateAvailable(models.Cards{}))
}

func TestFindPlayerFirstMatchWins(t *testing.T) {
	players := []models.Player{
		{Name: "Other"},
		{Name: "Rhum & Ruin #1", Hand: hand(map[models.CardName]int{models.Copper: 1})},
		{Name: "Rhum & Ruin #2", Hand: hand(map[models.CardName]int{models.Copper: 5})},
	}

	p, ok := FindPlayer(players, IsOurPlayer(DefaultBotName))
	require.True(t, ok)
	assert.Equal(t, "Rhum & Ruin #1", p.Name)

	_, ok = FindPlayer(players, func(models.Player) bool { return false })
	assert.False(t, ok)
}

func TestIsOurPlayerSkipsEmptyHands(t *testing.T) {
	match := IsOurPlayer(DefaultBotName)

	assert.False(t, match(models.Player{Name: DefaultBotName}))
	assert.False(t, match(models.Player{Name: DefaultBotName, Hand: hand(nil)}))
	assert.False(t, match(models.Player{Name: DefaultBotName, Hand: hand(map[models.CardName]int{models.Copper: 0})}))
	assert.False(t, match(models.Player{Name: "Someone", Hand: hand(map[models.CardName]int{models.Copper: 2})}))
	assert.True(t, match(models.Player{Name: "[bot] Rhum & Ruin", Hand: hand(map[models.CardName]int{models.Copper: 2})}))
}

func TestOurHandExpandsQuantities(t *testing.T) {
	g := snapshot(map[models.CardName]int{models.Copper: 2, models.Estate: 1}, nil)
	assert.ElementsMatch(t,
		[]models.CardName{models.Copper, models.Copper, models.Estate},
		OurHand(g, DefaultBotName))

	assert.Empty(t, OurHand(nil, DefaultBotName))
	assert.Empty(t, OurHand(&models.Game{}, DefaultBotName))
}

func TestShouldBuyEstate(t *testing.T) {
	stock := map[models.CardName]int{models.Estate: 5, models.Copper: 10}

	cases := []struct {
		name string
		game *models.Game
		turn PurchaseChecker
		want bool
	}{
		{
			name: "two copper fresh turn",
			game: snapshot(map[models.CardName]int{models.Copper: 2, models.Estate: 1}, stock),
			turn: fixedTurn(true),
			want: true,
		},
		{
			name: "seven copper",
			game: snapshot(map[models.CardName]int{models.Copper: 7}, stock),
			turn: fixedTurn(true),
			want: true,
		},
		{
			name: "last estate in stock",
			game: snapshot(map[models.CardName]int{models.Copper: 2}, map[models.CardName]int{models.Estate: 1}),
			turn: fixedTurn(true),
			want: true,
		},
		{
			name: "no purchase left",
			game: snapshot(map[models.CardName]int{models.Copper: 2, models.Estate: 1}, stock),
			turn: fixedTurn(false),
			want: false,
		},
		{
			name: "one copper",
			game: snapshot(map[models.CardName]int{models.Copper: 1, models.Estate: 1}, stock),
			turn: fixedTurn(true),
			want: false,
		},
		{
			name: "empty hand",
			game: snapshot(map[models.CardName]int{}, stock),
			turn: fixedTurn(true),
			want: false,
		},
		{
			name: "estate pile empty",
			game: snapshot(map[models.CardName]int{models.Copper: 3}, map[models.CardName]int{models.Estate: 0, models.Copper: 10}),
			turn: fixedTurn(true),
			want: false,
		},
		{
			name: "estate missing from stock",
			game: snapshot(map[models.CardName]int{models.Copper: 3}, map[models.CardName]int{models.Copper: 10}),
			turn: fixedTurn(true),
			want: false,
		},
		{
			name: "player absent",
			game: &models.Game{
				Players: []models.Player{{Name: "Opponent", Hand: hand(map[models.CardName]int{models.Copper: 5})}},
				Stock:   models.NewCards(stock),
			},
			turn: fixedTurn(true),
			want: false,
		},
		{
			name: "nil game",
			game: nil,
			turn: fixedTurn(true),
			want: false,
		},
	}

	e := newEvaluator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.ShouldBuyEstate(tc.game, tc.turn))
		})
	}
}

func TestShouldBuyEstateWithTurnState(t *testing.T) {
	store := game.NewTurnStateStore()
	e := newEvaluator()
	g := snapshot(
		map[models.CardName]int{models.Copper: 2, models.Estate: 1},
		map[models.CardName]int{models.Estate: 5, models.Copper: 10},
	)

	ts := store.GetOrCreate("g1")
	require.True(t, e.ShouldBuyEstate(g, ts))
	// evaluating does not consume the purchase
	require.True(t, e.ShouldBuyEstate(g, ts))

	require.True(t, store.UsePurchase("g1"))
	assert.False(t, e.ShouldBuyEstate(g, ts))

	store.ResetTurn("g1")
	assert.True(t, e.ShouldBuyEstate(g, ts))
}

func TestShouldBuyEstateDoesNotMutateSnapshot(t *testing.T) {
	e := newEvaluator()
	g := snapshot(
		map[models.CardName]int{models.Copper: 2},
		map[models.CardName]int{models.Estate: 5},
	)

	e.ShouldBuyEstate(g, fixedTurn(true))
	assert.Equal(t, 2, g.Players[1].Hand.Count(models.Copper))
	assert.Equal(t, 5, g.Stock.Count(models.Estate))
}

func TestShouldBuyEstateStopsAtFirstFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := New("", logger)

	g := snapshot(map[models.CardName]int{models.Copper: 1}, map[models.CardName]int{})
	e.ShouldBuyEstate(g, fixedTurn(false))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "no estate: no purchase left this turn", hook.LastEntry().Message)
}

func TestCustomBotName(t *testing.T) {
	e := New("Grog", nil)
	g := &models.Game{
		Players: []models.Player{{Name: "Grog", Hand: hand(map[models.CardName]int{models.Copper: 2})}},
		Stock:   models.NewCards(map[models.CardName]int{models.Estate: 1}),
	}
	assert.True(t, e.ShouldBuyEstate(g, fixedTurn(true)))
	assert.False(t, newEvaluator().ShouldBuyEstate(g, fixedTurn(true)))
}

func TestShouldBuyEstateHugeHandQuantities(t *testing.T) {
	raw := `{"players":[{"name":"Rhum & Ruin","hand":{"quantities":{"copper":4611686018427387904}}}],"stock":{"quantities":{"estate":8}}}`
	var g models.Game
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	e := newEvaluator()
	assert.NotPanics(t, func() {
		assert.True(t, e.ShouldBuyEstate(&g, fixedTurn(true)))
	})

	// two near-max counts must not wrap the hand into looking empty
	g.Players[0].Hand.Quantities[models.Estate] = math.MaxInt
	assert.NotPanics(t, func() {
		assert.True(t, e.ShouldBuyEstate(&g, fixedTurn(true)))
	})
}

func TestShouldBuyEstateNilTurnState(t *testing.T) {
	g := snapshot(
		map[models.CardName]int{models.Copper: 2},
		map[models.CardName]int{models.Estate: 5},
	)
	var ts *game.TurnState
	assert.NotPanics(t, func() {
		assert.False(t, newEvaluator().ShouldBuyEstate(g, ts))
	})
}
