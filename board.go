package holdrank

import "fmt"

// Street identifies a stage of community-card reveal.
type Street uint8

// Streets, in deal order.
const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String satisfies the [fmt.Stringer] interface.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	}
	return "Unknown"
}

// cardCount is the number of community cards visible at each street.
var cardCount = [...]int{Preflop: 0, Flop: 3, Turn: 4, River: 5}

// Board is a community-card state machine: a (cards, street) pair where
// |cards| == cardCount[street]. Transitions are monotonic:
// Preflop->Flop(+3), Flop->Turn(+1), Turn->River(+1); any other
// transition, or a transition that would introduce a duplicate card,
// fails.
type Board struct {
	cards  []Card
	street Street
}

// NewBoard creates an empty, Preflop board.
func NewBoard() *Board {
	return &Board{street: Preflop}
}

// Street returns the board's current street.
func (b *Board) Street() Street {
	return b.street
}

// Cards returns the community cards visible at the current street.
// The returned slice is owned by the caller.
func (b *Board) Cards() []Card {
	v := make([]Card, len(b.cards))
	copy(v, b.cards)
	return v
}

// CardsAtStreet returns the prefix of cards visible on or before street s.
func (b *Board) CardsAtStreet(s Street) []Card {
	n := cardCount[s]
	if len(b.cards) < n {
		n = len(b.cards)
	}
	v := make([]Card, n)
	copy(v, b.cards[:n])
	return v
}

func hasDuplicate(cards []Card) (Card, bool) {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return InvalidCard, false
}

func (b *Board) deal(from, to Street, cards []Card, want int) error {
	if b.street != from {
		return &Error{
			Kind:   ErrKindInvalidStreetTransition,
			Msg:    fmt.Sprintf("cannot deal %s from %s", to, b.street),
			Street: b.street,
		}
	}
	if len(cards) != want {
		return &Error{
			Kind:     ErrKindInvalidStreetTransition,
			Msg:      fmt.Sprintf("%s requires exactly %d cards, got %d", to, want, len(cards)),
			Street:   b.street,
			Expected: want,
			Got:      len(cards),
		}
	}
	if c, dup := hasDuplicate(cards); dup {
		return &Error{Kind: ErrKindDuplicateCard, Msg: "duplicate card within new street cards", Card: c, Street: b.street}
	}
	existing := make(map[Card]bool, len(b.cards))
	for _, c := range b.cards {
		existing[c] = true
	}
	for _, c := range cards {
		if existing[c] {
			return &Error{Kind: ErrKindDuplicateCard, Msg: "card already on board", Card: c, Street: b.street}
		}
	}
	b.cards = append(b.cards, cards...)
	b.street = to
	return nil
}

// DealFlop transitions Preflop -> Flop, requiring exactly 3 new,
// mutually distinct cards.
func (b *Board) DealFlop(cards []Card) error {
	return b.deal(Preflop, Flop, cards, 3)
}

// DealTurn transitions Flop -> Turn, requiring exactly 1 new card.
func (b *Board) DealTurn(card Card) error {
	return b.deal(Flop, Turn, []Card{card}, 1)
}

// DealRiver transitions Turn -> River, requiring exactly 1 new card.
func (b *Board) DealRiver(card Card) error {
	return b.deal(Turn, River, []Card{card}, 1)
}

// WithFlop is a builder-style wrapper around DealFlop, returning b or
// the first error encountered.
func (b *Board) WithFlop(cards []Card) (*Board, error) {
	if err := b.DealFlop(cards); err != nil {
		return nil, err
	}
	return b, nil
}

// WithTurn is a builder-style wrapper around DealTurn, returning b or
// the first error encountered.
func (b *Board) WithTurn(card Card) (*Board, error) {
	if err := b.DealTurn(card); err != nil {
		return nil, err
	}
	return b, nil
}

// WithRiver is a builder-style wrapper around DealRiver, returning b or
// the first error encountered.
func (b *Board) WithRiver(card Card) (*Board, error) {
	if err := b.DealRiver(card); err != nil {
		return nil, err
	}
	return b, nil
}

// String satisfies the [fmt.Stringer] interface.
func (b *Board) String() string {
	return fmt.Sprintf("%s %s", b.street, CardFormatter(b.cards))
}
