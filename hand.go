package holdrank

import (
	"fmt"
	"sort"
)

// Hand is a set of 5-7 distinct cards, sorted rank-descending for
// determinism. A 2-card "hand" (a bare pocket, preflop) is permitted as
// a placeholder but cannot be evaluated; evaluation requires 5-7 cards.
type Hand struct {
	cards []Card
}

// FromCards creates a Hand from 0-7 distinct cards, sorted
// rank-descending. Returns a [ErrKindDuplicateCard] error if any card
// repeats, or [ErrKindInvalidHandSize] if len(cards) > 7.
func FromCards(cards []Card) (Hand, error) {
	if len(cards) > 7 {
		return Hand{}, &Error{Kind: ErrKindInvalidHandSize, Msg: fmt.Sprintf("hand has %d cards, max 7", len(cards)), Got: len(cards)}
	}
	if c, dup := hasDuplicate(cards); dup {
		return Hand{}, &Error{Kind: ErrKindDuplicateCard, Msg: "duplicate card in hand", Card: c}
	}
	v := make([]Card, len(cards))
	copy(v, cards)
	sort.Slice(v, func(i, j int) bool { return v[i].Rank() > v[j].Rank() })
	return Hand{cards: v}, nil
}

// FromHoleCardsAndBoard concatenates hole cards and board cards
// (at most 2+5) and forwards to [FromCards].
func FromHoleCardsAndBoard(hc HoleCards, b *Board) (Hand, error) {
	cards := append(hc.Cards(), b.Cards()...)
	return FromCards(cards)
}

// Cards returns the hand's cards in rank-descending order. The
// returned slice is owned by the caller.
func (h Hand) Cards() []Card {
	v := make([]Card, len(h.cards))
	copy(v, h.cards)
	return v
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.cards)
}

// String satisfies the [fmt.Stringer] interface.
func (h Hand) String() string {
	return fmt.Sprintf("%s", CardFormatter(h.cards))
}

// fiveCardCombinations returns every 5-card subset index combination
// for a hand of size n, via the gonum-backed [combinations] helper.
func fiveCardCombinations(n int) [][]int {
	if n == 5 {
		return [][]int{{0, 1, 2, 3, 4}}
	}
	return combinations(n, 5)
}
