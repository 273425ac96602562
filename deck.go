package holdrank

import "math/rand"

// UnshuffledSize is the number of cards in a standard deck.
const UnshuffledSize = 52

// unshuffled is the canonical, fixed order a fresh deck starts in.
var unshuffled = newUnshuffled()

func newUnshuffled() []Card {
	v := make([]Card, 0, UnshuffledSize)
	for _, s := range []Suit{Spade, Heart, Diamond, Club} {
		for r := Two; r <= Ace; r++ {
			c, err := New(r, s)
			if err != nil {
				panic(err)
			}
			v = append(v, c)
		}
	}
	return v
}

// Deck is an ordered, mutable sequence of up to 52 distinct cards plus a
// "dealt" sidecar. At all times |remaining| + |dealt| <= 52 and every
// card appears at most once across remaining union dealt.
type Deck struct {
	remaining []Card
	dealt     []Card
}

// NewDeck creates a new 52-card deck in the fixed canonical order.
func NewDeck() *Deck {
	v := make([]Card, len(unshuffled))
	copy(v, unshuffled)
	return &Deck{remaining: v}
}

// Shuffle shuffles the deck's remaining cards using f (same interface as
// [math/rand.Shuffle]); f may come from a seeded or system source.
func (d *Deck) Shuffle(f func(n int, swap func(i, j int))) {
	f(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
}

// ShuffleSeeded shuffles the deck's remaining cards deterministically
// from seed.
func (d *Deck) ShuffleSeeded(seed uint64) {
	rng := rand.New(rand.NewSource(int64(seed)))
	d.Shuffle(rng.Shuffle)
}

// DealOne deals the top card, moving it into dealt. Returns
// [InvalidCard] if the deck is empty.
func (d *Deck) DealOne() Card {
	if len(d.remaining) == 0 {
		return InvalidCard
	}
	c := d.remaining[0]
	d.remaining = d.remaining[1:]
	d.dealt = append(d.dealt, c)
	return c
}

// Deal deals up to n cards from the top, truncating if the deck is
// exhausted before n cards are dealt.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		n = 0
	}
	var hand []Card
	for i := 0; i < n; i++ {
		c := d.DealOne()
		if c == InvalidCard {
			break
		}
		hand = append(hand, c)
	}
	return hand
}

// ExtractCard removes a specific card from the deck's remaining cards,
// if present, moving it to dealt. Returns whether the card was present.
func (d *Deck) ExtractCard(c Card) bool {
	for i, v := range d.remaining {
		if v == c {
			d.remaining = append(d.remaining[:i], d.remaining[i+1:]...)
			d.dealt = append(d.dealt, c)
			return true
		}
	}
	return false
}

// Reset reunifies remaining and dealt back into a full 52-card deck.
// The resulting order is unspecified (concretely: remaining cards keep
// their relative order, followed by previously-dealt cards).
func (d *Deck) Reset() {
	d.remaining = append(d.remaining, d.dealt...)
	d.dealt = nil
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.remaining)
}

// IsEmpty reports whether the deck has no remaining cards.
func (d *Deck) IsEmpty() bool {
	return len(d.remaining) == 0
}

// Dealt returns the cards dealt so far, in deal order. The returned
// slice is owned by the caller.
func (d *Deck) Dealt() []Card {
	v := make([]Card, len(d.dealt))
	copy(v, d.dealt)
	return v
}
