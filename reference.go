package holdrank

import "sort"

// EvaluateReference computes the canonical [HandValue] of 5, 6, or 7
// distinct cards using a direct, intentionally simple categorizer. It
// is the oracle the fast evaluator (C10) and table generator (C8) are
// validated against; it does no table lookups and performs no suit
// canonicalization.
//
// For 6 or 7 cards, the result is the maximum HandValue over every
// 5-card subset.
func EvaluateReference(cards []Card) (HandValue, error) {
	switch n := len(cards); n {
	case 5:
		return evaluateFive(cards), nil
	case 6, 7:
		best := HandValue(0)
		for _, idx := range fiveCardCombinations(n) {
			five := make([]Card, 5)
			for i, j := range idx {
				five[i] = cards[j]
			}
			if v := evaluateFive(five); best < v {
				best = v
			}
		}
		return best, nil
	default:
		return 0, &Error{Kind: ErrKindInvalidHandSize, Msg: "evaluate requires 5, 6, or 7 cards", Got: n}
	}
}

// evaluateFive categorizes exactly 5 distinct cards, applying the
// category rules of spec.md §4.6 in order (first match wins).
func evaluateFive(cards []Card) HandValue {
	var rankCounts [13]int
	var suitCounts [4]int
	for _, c := range cards {
		rankCounts[c.Rank()]++
		suitCounts[c.Suit()]++
	}
	isFlush := false
	for _, n := range suitCounts {
		if n == 5 {
			isFlush = true
			break
		}
	}
	straightHi, isStraight := straightHighCard(rankCounts)

	switch {
	case isFlush && isStraight:
		return NewHandValue(StraightFlush, packTiebreak(straightHi))
	}

	// Group ranks by multiplicity, each group sorted rank-descending.
	var byCount [5][]Rank // byCount[n] = ranks appearing exactly n times
	for r := Two; r <= Ace; r++ {
		n := rankCounts[r]
		if n > 0 {
			byCount[n] = append(byCount[n], r)
		}
	}
	for n := range byCount {
		sort.Slice(byCount[n], func(i, j int) bool { return byCount[n][i] > byCount[n][j] })
	}

	switch {
	case len(byCount[4]) == 1:
		quad := byCount[4][0]
		kicker := highestExcluding(rankCounts, quad)
		return NewHandValue(Quads, packTiebreak(quad, kicker))
	case len(byCount[3]) == 1 && len(byCount[2]) == 1:
		return NewHandValue(FullHouse, packTiebreak(byCount[3][0], byCount[2][0]))
	case isFlush:
		ranksDesc := sortedRanksDesc(rankCounts)
		return NewHandValue(Flush, packTiebreak(ranksDesc...))
	case isStraight:
		return NewHandValue(Straight, packTiebreak(straightHi))
	case len(byCount[3]) == 1:
		trip := byCount[3][0]
		kickers := kickersExcluding(rankCounts, []Rank{trip}, 2)
		return NewHandValue(Trips, packTiebreak(trip, kickers[0], kickers[1]))
	case len(byCount[2]) == 2:
		hi, lo := byCount[2][0], byCount[2][1]
		kicker := highestExcluding(rankCounts, hi, lo)
		return NewHandValue(TwoPair, packTiebreak(hi, lo, kicker))
	case len(byCount[2]) == 1:
		pair := byCount[2][0]
		kickers := kickersExcluding(rankCounts, []Rank{pair}, 3)
		return NewHandValue(OnePair, packTiebreak(pair, kickers[0], kickers[1], kickers[2]))
	default:
		ranksDesc := sortedRanksDesc(rankCounts)
		return NewHandValue(HighCard, packTiebreak(ranksDesc...))
	}
}

// straightHighCard reports the high card of a 5-consecutive-rank run
// within rankCounts (each count in {0,1} for a valid 5-card straight
// check), if any. The wheel (A-2-3-4-5) is a straight with high card
// Five; the ace counts low.
func straightHighCard(rankCounts [13]int) (Rank, bool) {
	var bits uint16
	for r := Two; r <= Ace; r++ {
		if rankCounts[r] > 0 {
			bits |= 1 << r
		}
	}
	// Wheel: A,2,3,4,5 -> bits for Two,Three,Four,Five,Ace.
	const wheelBits = 1<<Two | 1<<Three | 1<<Four | 1<<Five | 1<<Ace
	if bits == wheelBits {
		return Five, true
	}
	for hi := Ace; hi >= Six; hi-- {
		const runMask = 0x1f
		shift := hi - 4
		if (bits>>shift)&runMask == runMask {
			return hi, true
		}
	}
	return 0, false
}

// sortedRanksDesc returns every rank present in rankCounts, descending.
func sortedRanksDesc(rankCounts [13]int) []Rank {
	var v []Rank
	for r := Ace; ; r-- {
		if rankCounts[r] > 0 {
			v = append(v, r)
		}
		if r == Two {
			break
		}
	}
	return v
}

// highestExcluding returns the highest-ranked card present in
// rankCounts that isn't in exclude.
func highestExcluding(rankCounts [13]int, exclude ...Rank) Rank {
	excl := make(map[Rank]bool, len(exclude))
	for _, r := range exclude {
		excl[r] = true
	}
	for r := Ace; ; r-- {
		if rankCounts[r] > 0 && !excl[r] {
			return r
		}
		if r == Two {
			break
		}
	}
	return 0
}

// kickersExcluding returns the top n ranks present in rankCounts that
// aren't in exclude, descending.
func kickersExcluding(rankCounts [13]int, exclude []Rank, n int) []Rank {
	excl := make(map[Rank]bool, len(exclude))
	for _, r := range exclude {
		excl[r] = true
	}
	var v []Rank
	for r := Ace; len(v) < n; r-- {
		if rankCounts[r] > 0 && !excl[r] {
			v = append(v, r)
		}
		if r == Two {
			break
		}
	}
	return v
}
