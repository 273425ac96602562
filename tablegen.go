package holdrank

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// GenerateOption configures [GenerateTable]/[GenerateAndSave].
type GenerateOption func(*genConfig)

type genConfig struct {
	logf     func(string, ...any)
	universe []Card
}

// WithLogf sets a progress-reporting callback, invoked once per
// top-level first-card batch (spec.md §5's "cooperative cancel... after
// each canonical batch"). The teacher's own table-generation tooling
// (twoplustwogen.go) reports progress the same way: a caller-supplied
// fmt-style closure, not a logging library.
func WithLogf(logf func(string, ...any)) GenerateOption {
	return func(c *genConfig) { c.logf = logf }
}

// WithUniverse restricts generation to a subset of the 52 cards,
// producing a table that only answers queries dealt entirely from that
// subset. Generating over the full deck is the default and the only
// mode a production [Load] should use; WithUniverse exists so tests can
// build a small, fast table that still exercises every suit and the
// exact code path production tables are built with.
func WithUniverse(cards []Card) GenerateOption {
	return func(c *genConfig) { c.universe = cards }
}

// generator builds the jump table described in spec.md §4.8: a trie of
// 5/6/7-card raw-card prefixes in strictly-increasing dense-index
// order, flattened into a single contiguous array. Construction is
// grounded directly on the teacher's twoplustwogen.go
// (TwoPlusTwoGenerator), generalized to call the reference evaluator
// (C6) instead of a Cactus Kev prime-hash for terminal values, and
// restricted to Hold'em's fixed 5/6/7-card hand sizes instead of the
// teacher's single fixed depth-7 table.
type generator struct {
	mu       sync.Mutex
	nodes    map[string]uint32 // raw-prefix key -> block base address
	sparse   map[uint32]uint32 // block entry index -> value (dense flattening happens afterward)
	nextBase atomic.Uint32
	universe map[int]bool // dense indices eligible to extend any prefix
}

func nodeKey(cards []Card) string {
	buf := make([]byte, len(cards))
	for i, c := range cards {
		buf[i] = byte(c)
	}
	return string(buf)
}

// allocBlock reserves a fresh 53-entry block and records it under key,
// returning its base address. Every raw prefix under strictly-
// increasing index order is reached by exactly one caller, so every
// child allocation in build is fresh; the non-fresh calls are build's
// lookups of its already-allocated parent block (the root included).
// The map serves those lookups and guards the invariant rather than
// implementing real sharing.
func (g *generator) allocBlock(key string) (base uint32, fresh bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if b, ok := g.nodes[key]; ok {
		return b, false
	}
	b := g.nextBase.Add(blockSize) - blockSize
	g.nodes[key] = b
	return b, true
}

func (g *generator) set(idx, value uint32) {
	g.mu.Lock()
	g.sparse[idx] = value
	g.mu.Unlock()
}

// GenerateTable builds the jump table for 5/6/7-card Hold'em hand
// evaluation, computing every raw hand's terminal value with the
// reference evaluator (C6).
//
// Construction is parallelized over the first card of every path (up
// to 52, or fewer under [WithUniverse]), each built by its own
// goroutine via golang.org/x/sync/errgroup, followed by the serial
// flatten step.
func GenerateTable(ctx context.Context, opts ...GenerateOption) (*Table, error) {
	cfg := genConfig{logf: func(string, ...any) {}, universe: unshuffled}
	for _, o := range opts {
		o(&cfg)
	}
	universe := make(map[int]bool, len(cfg.universe))
	for _, c := range cfg.universe {
		universe[c.Index()] = true
	}
	g := &generator{
		nodes:    make(map[string]uint32),
		sparse:   make(map[uint32]uint32),
		universe: universe,
	}
	rootBase, _ := g.allocBlock(nodeKey(nil))
	if rootBase != 0 {
		return nil, &Error{Kind: ErrKindTableInitFailed, Msg: "root must be the first allocated block"}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, c := range cfg.universe {
		c := c
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return &Error{Kind: ErrKindCancelled, Msg: "generation cancelled"}
			}
			if err := g.build(egCtx, nil, c); err != nil {
				return err
			}
			cfg.logf("generated first-card batch %s\n", c)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	entries := g.flatten()
	return &Table{Root: rootBase, Entries: entries}, nil
}

// build extends the raw prefix by card, allocating/filling the child
// block (or writing a direct terminal value at depth 7), then recurses
// for every legal next card (in strictly-increasing dense-index order)
// if the child isn't yet at depth 7.
//
// Walking strictly-increasing indices, rather than re-canonicalizing
// suits at each step, is deliberate: canonicalizing an already-
// transformed prefix together with one more raw card is not the same
// transformation as canonicalizing the true raw prefix (a suit
// permutation chosen for a 1-card prefix is not necessarily the suit
// permutation the full hand would choose), so a trie keyed on
// incrementally-remapped prefixes loses track of which suits were
// actually dealt together. Building over raw cards in a single fixed
// order sidesteps the problem entirely, exactly as the teacher's
// twoplustwo.go table does.
func (g *generator) build(ctx context.Context, prefix []Card, card Card) error {
	if ctx.Err() != nil {
		return &Error{Kind: ErrKindCancelled, Msg: "generation cancelled"}
	}
	parentBase, _ := g.allocBlock(nodeKey(prefix))

	full := append(append([]Card(nil), prefix...), card)
	depth := len(full)
	slot := parentBase + uint32(card.Index()) + 1

	if depth == 7 {
		v, err := EvaluateReference(full)
		if err != nil {
			return err
		}
		g.set(slot, uint32(v))
		return nil
	}

	childBase, fresh := g.allocBlock(nodeKey(full))
	g.set(slot, childBase)
	if depth == 5 || depth == 6 {
		v, err := EvaluateReference(full)
		if err != nil {
			return err
		}
		g.set(childBase, uint32(v))
	}
	if !fresh {
		return nil
	}

	for i := 0; i < 52; i++ {
		if i <= card.Index() || !g.universe[i] {
			g.set(childBase+uint32(i)+1, Invalid)
			continue
		}
		next, err := FromIndex(i)
		if err != nil {
			return err
		}
		if err := g.build(ctx, full, next); err != nil {
			return err
		}
	}
	return nil
}

// flatten converts the sparse entry map built during the (possibly
// parallel) trie construction into the single dense array the fast
// evaluator traverses, per spec.md §4.8 step 3.
func (g *generator) flatten() []uint32 {
	size := g.nextBase.Load()
	entries := make([]uint32, size)
	for i := range entries {
		entries[i] = Invalid
	}
	for idx, v := range g.sparse {
		entries[idx] = v
	}
	return entries
}

// canonicalHandCount reports how many distinct suit-isomorphism classes
// of n-card hands exist, by exhaustively enumerating raw n-card
// combinations and reducing each through [Canonicalize]. Used only by
// tests to sanity-check Canonicalize's combinatorics against known
// facts (13 one-card classes, 169 two-card starting-hand classes); it
// has no bearing on the jump table's own structure, which no longer
// canonicalizes suits at all.
func canonicalHandCount(n int) int {
	count := 0
	seen := make(map[string]bool)
	var walk func(prefix []Card, start int)
	walk = func(prefix []Card, start int) {
		if len(prefix) == n {
			canon, _, err := Canonicalize(prefix)
			if err != nil {
				panic(err)
			}
			key := nodeKey(canon)
			if !seen[key] {
				seen[key] = true
				count++
			}
			return
		}
		for i := start; i < 52; i++ {
			c, _ := FromIndex(i)
			walk(append(prefix, c), i+1)
		}
	}
	walk(nil, 0)
	return count
}
