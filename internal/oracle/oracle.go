// Package oracle compares the fast jump-table evaluator against the
// direct reference evaluator over randomly dealt hands, per
// SPEC_FULL.md §8's testable property that the two never disagree.
//
// Sample size follows the teacher's own env-var gated test pattern
// (os.Getenv("TESTS") in cardrank_test.go): a small sweep runs in
// every `go test`, while the sweep over a table built from the full
// 52-card deck is reserved for HOLDEVAL_ORACLE=full runs since it takes
// minutes, not milliseconds.
package oracle

import (
	"fmt"
	"math/rand"

	"github.com/evalcore/holdrank"
)

// Mismatch describes a hand where the fast and reference evaluators
// disagreed.
type Mismatch struct {
	Cards    []holdrank.Card
	FastVal  holdrank.HandValue
	RefVal   holdrank.HandValue
	FastErr  error
	RefErr   error
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v: fast=%v(%v) ref=%v(%v)", m.Cards, m.FastVal, m.FastErr, m.RefVal, m.RefErr)
}

// Sweep deals n random hands of handSize cards (5, 6, or 7) using rng,
// drawn from the full 52-card deck, evaluating each with both eval and
// [holdrank.EvaluateReference], and returns every disagreement found.
// An empty result means the two evaluators agreed on every sampled
// hand.
func Sweep(eval *holdrank.Evaluator, rng *rand.Rand, handSize, n int) ([]Mismatch, error) {
	return SweepUniverse(eval, rng, nil, handSize, n)
}

// SweepUniverse is [Sweep] restricted to drawing from universe (nil
// means the full 52-card deck), so a caller whose evaluator was built
// over a [holdrank.WithUniverse]-restricted table can sweep hands that
// table can actually answer.
func SweepUniverse(eval *holdrank.Evaluator, rng *rand.Rand, universe []holdrank.Card, handSize, n int) ([]Mismatch, error) {
	var mismatches []Mismatch
	for i := 0; i < n; i++ {
		cards, err := dealRandomHand(rng, universe, handSize)
		if err != nil {
			return nil, err
		}
		fastVal, fastErr := eval.EvaluateCards(cards)
		refVal, refErr := holdrank.EvaluateReference(cards)
		if fastErr != nil || refErr != nil || fastVal != refVal {
			mismatches = append(mismatches, Mismatch{
				Cards:   cards,
				FastVal: fastVal,
				RefVal:  refVal,
				FastErr: fastErr,
				RefErr:  refErr,
			})
		}
	}
	return mismatches, nil
}

// dealRandomHand draws handSize distinct cards from universe (the full
// deck, if nil) using rng, without relying on [holdrank.Deck]'s own
// shuffle (so oracle sampling doesn't depend on the correctness of the
// code under test).
func dealRandomHand(rng *rand.Rand, universe []holdrank.Card, handSize int) ([]holdrank.Card, error) {
	if universe == nil {
		universe = make([]holdrank.Card, 52)
		for i := range universe {
			c, err := holdrank.FromIndex(i)
			if err != nil {
				return nil, err
			}
			universe[i] = c
		}
	}
	perm := rng.Perm(len(universe))
	cards := make([]holdrank.Card, handSize)
	for i := 0; i < handSize; i++ {
		cards[i] = universe[perm[i]]
	}
	return cards, nil
}
