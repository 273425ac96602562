package holdrank

import "sort"

// Invalid is the sentinel jump-table entry value for a slot that a
// well-behaved caller never reaches (e.g. "next card = a card already
// dealt, or out of strictly-increasing index order"). A traversal that
// lands on Invalid indicates either a bug or file corruption.
const Invalid uint32 = 0xffffffff

// blockSize is the number of entries reserved per trie node: one "own
// value" slot (index 0) plus one slot per possible next card-index
// (0..51), per spec.md §4.8/§9.
const blockSize = 53

// Table is the flattened jump table: a dense array of 32-bit entries
// indexed by state, encoding a trie of 5/6/7-card raw-card prefix
// paths (spec.md §4.8). Cards are walked in ascending dense-index
// order rather than deal order, so every path is built and looked up
// along a single strictly-increasing sequence per card combination —
// mirroring the teacher's twoplustwo.go table, which is likewise
// indexed by a fixed per-card slot rather than by a suit-reduced
// class.
//
// Traversal rule: starting from Root, for each card in the hand (in
// ascending index order) with card-index c in 0..51, state =
// Entries[state+c+1]. After consuming 5, 6, or 7 cards, decode(state,
// n) yields the HandValue.
type Table struct {
	Root    uint32
	Entries []uint32
}

// sortedByIndex returns a copy of cards ordered by ascending dense
// index, the fixed order both table generation and traversal walk.
func sortedByIndex(cards []Card) []Card {
	v := make([]Card, len(cards))
	copy(v, cards)
	sort.Slice(v, func(i, j int) bool { return v[i].Index() < v[j].Index() })
	return v
}

// decode resolves the terminal HandValue for a traversal that has
// consumed n cards and is left holding state, per spec.md §4.8's "Fast
// evaluator online path": for n==7 the last jump *is* the terminal
// value; for n in {5,6} state is a child block's base address and the
// terminal value lives in that block's own-value slot.
func (t *Table) decode(state uint32, n int) (HandValue, error) {
	if n < 7 {
		if int(state) >= len(t.Entries) {
			return 0, &Error{Kind: ErrKindTableInitFailed, Msg: "state out of range"}
		}
		state = t.Entries[state]
	}
	if state == Invalid {
		return 0, &Error{Kind: ErrKindTableInitFailed, Msg: "traversal hit INVALID sentinel"}
	}
	return HandValue(state), nil
}

// Traverse walks the table for the given cards (5, 6, or 7, in any
// order) and returns the resulting HandValue.
func (t *Table) Traverse(cards []Card) (HandValue, error) {
	n := len(cards)
	if n != 5 && n != 6 && n != 7 {
		return 0, &Error{Kind: ErrKindInvalidHandSize, Msg: "evaluate requires 5, 6, or 7 cards", Got: n}
	}
	state := t.Root
	for _, c := range sortedByIndex(cards) {
		idx := state + uint32(c.Index()) + 1
		if int(idx) >= len(t.Entries) {
			return 0, &Error{Kind: ErrKindTableInitFailed, Msg: "state out of range during traversal"}
		}
		state = t.Entries[idx]
		if state == Invalid {
			return 0, &Error{Kind: ErrKindTableInitFailed, Msg: "traversal hit INVALID sentinel"}
		}
	}
	return t.decode(state, n)
}
