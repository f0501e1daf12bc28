// internal/models/card.go
package models

import (
	"math"
	"sort"
)

// CardName identifies a card kind. The game server sends names as lowercase
// strings; kinds not listed below still decode and compare as opaque names.
type CardName string

const (
	// treasure
	Copper CardName = "copper"
	Silver CardName = "silver"
	Gold   CardName = "gold"

	// victory
	Estate   CardName = "estate"
	Duchy    CardName = "duchy"
	Province CardName = "province"
	Curse    CardName = "curse"

	// kingdom
	Adventurer  CardName = "adventurer"
	Bureaucrat  CardName = "bureaucrat"
	Cellar      CardName = "cellar"
	Chancellor  CardName = "chancellor"
	Chapel      CardName = "chapel"
	CouncilRoom CardName = "councilroom"
	Feast       CardName = "feast"
	Festival    CardName = "festival"
	Gardens     CardName = "gardens"
	Laboratory  CardName = "laboratory"
	Library     CardName = "library"
	Market      CardName = "market"
	Militia     CardName = "militia"
	Mine        CardName = "mine"
	Moat        CardName = "moat"
	Moneylender CardName = "moneylender"
	Remodel     CardName = "remodel"
	Smithy      CardName = "smithy"
	Spy         CardName = "spy"
	Thief       CardName = "thief"
	ThroneRoom  CardName = "throneroom"
	Village     CardName = "village"
	Witch       CardName = "witch"
	Woodcutter  CardName = "woodcutter"
	Workshop    CardName = "workshop"
)

var knownCards = map[CardName]struct{}{
	Copper: {}, Silver: {}, Gold: {},
	Estate: {}, Duchy: {}, Province: {}, Curse: {},
	Adventurer: {}, Bureaucrat: {}, Cellar: {}, Chancellor: {}, Chapel: {},
	CouncilRoom: {}, Feast: {}, Festival: {}, Gardens: {}, Laboratory: {},
	Library: {}, Market: {}, Militia: {}, Mine: {}, Moat: {},
	Moneylender: {}, Remodel: {}, Smithy: {}, Spy: {}, Thief: {},
	ThroneRoom: {}, Village: {}, Witch: {}, Woodcutter: {}, Workshop: {},
}

// Known reports whether the card kind is part of the supported card set.
func (c CardName) Known() bool {
	_, ok := knownCards[c]
	return ok
}

// IsTreasure reports whether the card is one of the money cards.
func (c CardName) IsTreasure() bool {
	return c == Copper || c == Silver || c == Gold
}

// Cards is a multiset of card kinds, as the game server serializes hands and stock.
type Cards struct {
	Quantities map[CardName]int `json:"quantities"`
}

// NewCards builds a multiset from kind -> count pairs.
func NewCards(q map[CardName]int) Cards {
	return Cards{Quantities: q}
}

// Count returns how many cards of the given kind are present. An absent kind counts as 0.
func (c Cards) Count(name CardName) int {
	if c.Quantities == nil {
		return 0
	}
	return c.Quantities[name]
}

// Len returns the total number of cards, saturating at math.MaxInt.
func (c Cards) Len() int {
	n := 0
	for _, q := range c.Quantities {
		if q <= 0 {
			continue
		}
		if q > math.MaxInt-n {
			return math.MaxInt
		}
		n += q
	}
	return n
}

// Empty reports whether no kind has a positive count.
func (c Cards) Empty() bool {
	for _, q := range c.Quantities {
		if q > 0 {
			return false
		}
	}
	return true
}

// List expands the multiset into a flat list ordered by card name.
// It allocates one entry per card; use Count on server-sent data.
func (c Cards) List() []CardName {
	names := make([]CardName, 0, len(c.Quantities))
	for name := range c.Quantities {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	out := make([]CardName, 0, c.Len())
	for _, name := range names {
		for i := 0; i < c.Quantities[name]; i++ {
			out = append(out, name)
		}
	}
	return out
}
