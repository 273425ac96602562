package holdrank

import "sort"

// Canonicalize reduces cards to the lexicographically-smallest
// card-multiset reachable via any suit permutation, per spec.md §4.7.
// Two hands related by a suit permutation canonicalize to an identical
// byte sequence, and therefore evaluate to identical [HandValue]s.
//
// Returns the canonical cards (sorted) and the suit mapping chosen
// (original suit -> canonical suit) so callers can recover original
// suits. Canonicalization is total over the space of valid cards: an
// invalid card is rejected with an error rather than silently coerced
// to a default suit (see SPEC_FULL.md §9).
func Canonicalize(cards []Card) ([]Card, map[Suit]Suit, error) {
	for _, c := range cards {
		nc, err := New(c.Rank(), c.Suit())
		if err != nil {
			return nil, nil, err
		}
		if nc != c {
			return nil, nil, &Error{Kind: ErrKindInvalidCardString, Msg: "invalid card value", Card: c}
		}
	}
	used := usedSuits(cards)
	if len(used) == 0 {
		return append([]Card(nil), cards...), map[Suit]Suit{}, nil
	}
	perms := suitPermutations(len(used))
	var best []Card
	var bestMap map[Suit]Suit
	for _, perm := range perms {
		mapping := make(map[Suit]Suit, len(used))
		for i, s := range used {
			mapping[s] = perm[i]
		}
		remapped := make([]Card, len(cards))
		for i, c := range cards {
			nc, err := New(c.Rank(), mapping[c.Suit()])
			if err != nil {
				return nil, nil, err
			}
			remapped[i] = nc
		}
		sort.Slice(remapped, func(i, j int) bool { return cardLess(remapped[i], remapped[j]) })
		if best == nil || lessSeq(remapped, best) {
			best = remapped
			bestMap = mapping
		}
	}
	return best, bestMap, nil
}

// cardLess orders two cards for canonical-form comparison: rank
// primary, suit secondary, using the suits' fixed display order.
func cardLess(a, b Card) bool {
	if a.Rank() != b.Rank() {
		return a.Rank() < b.Rank()
	}
	return a.Suit() < b.Suit()
}

// lessSeq reports whether a is lexicographically smaller than b under
// cardLess.
func lessSeq(a, b []Card) bool {
	for i := range a {
		if a[i] != b[i] {
			return cardLess(a[i], b[i])
		}
	}
	return false
}

// usedSuits returns the distinct suits appearing in cards, in their
// fixed display order.
func usedSuits(cards []Card) []Suit {
	seen := make(map[Suit]bool, 4)
	for _, c := range cards {
		seen[c.Suit()] = true
	}
	var v []Suit
	for _, s := range []Suit{Spade, Heart, Diamond, Club} {
		if seen[s] {
			v = append(v, s)
		}
	}
	return v
}

// suitPermutations returns every injective mapping of k used suits into
// the 4 canonical suit slots, as permutations of [Spade,Heart,Diamond,Club].
func suitPermutations(k int) [][]Suit {
	all := []Suit{Spade, Heart, Diamond, Club}
	var perms [][]Suit
	var permute func(chosen []Suit, remaining []Suit)
	permute = func(chosen []Suit, remaining []Suit) {
		if len(chosen) == k {
			cp := make([]Suit, k)
			copy(cp, chosen)
			perms = append(perms, cp)
			return
		}
		for i, s := range remaining {
			next := make([]Suit, 0, len(remaining)-1)
			next = append(next, remaining[:i]...)
			next = append(next, remaining[i+1:]...)
			permute(append(chosen, s), next)
		}
	}
	permute(nil, all)
	return perms
}
