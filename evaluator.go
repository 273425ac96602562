package holdrank

import "context"

// EvaluatorOption configures an [Evaluator] constructed by [Load]
// ([NewEvaluator] takes no options), following the teacher's functional-options
// convention (TypeOption/StreetOption/CalcOption in type.go).
type EvaluatorOption func(*evalConfig)

type evalConfig struct {
	ctx     context.Context
	genOpts []GenerateOption
}

// WithGenerateOptions forwards options to table generation, for the
// case where [Load] falls back to generating a fresh table because
// none exists yet on disk at the given path.
func WithGenerateOptions(opts ...GenerateOption) EvaluatorOption {
	return func(c *evalConfig) { c.genOpts = append(c.genOpts, opts...) }
}

// WithContext supplies the context governing a [Load] fallback
// generation, letting a caller cancel a long rebuild. If omitted,
// Load uses context.Background(): a missing table is rebuilt to
// completion by default.
func WithContext(ctx context.Context) EvaluatorOption {
	return func(c *evalConfig) { c.ctx = ctx }
}

// Evaluator is the public entry point for hand evaluation (C10):
// given a loaded jump [Table], it classifies 5, 6, or 7-card hands in
// O(1) time per card. Each call copies the hand's cards and sorts the
// copy by card index before walking the table.
type Evaluator struct {
	table *Table
}

// NewEvaluator wraps an already-built table. Most callers should use
// [Load] instead, which handles the on-disk persistence path.
func NewEvaluator(t *Table) *Evaluator {
	return &Evaluator{table: t}
}

// Load reads the jump table at path, generating and saving a fresh one
// if the file doesn't exist or fails verification (spec.md §4.9's
// load-time auto-regeneration requirement).
func Load(path string, opts ...EvaluatorOption) (*Evaluator, error) {
	cfg := evalConfig{ctx: context.Background()}
	for _, o := range opts {
		o(&cfg)
	}
	t, err := LoadOrGenerate(cfg.ctx, path, cfg.genOpts...)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(t), nil
}

// GenerateAndSave builds a fresh jump table and writes it to path,
// overwriting anything already there. Exposed separately from [Load]
// for callers (e.g. cmd/holdtablegen) that want table generation as an
// explicit, standalone step rather than an implicit fallback.
func GenerateAndSave(ctx context.Context, path string, opts ...GenerateOption) error {
	t, err := GenerateTable(ctx, opts...)
	if err != nil {
		return err
	}
	return t.Save(path)
}

// Evaluate classifies hand's cards by walking the jump table with the
// hand's raw, real-suit cards (reordered to ascending card index by
// [Table.Traverse] itself, so deal order never matters) — exactly as
// the teacher's twoplustwo.go traverses its own embedded table. No
// suit canonicalization happens on this path; [Canonicalize] (C7) is a
// standalone combinatorics utility, not a step the fast evaluator
// performs.
func (e *Evaluator) Evaluate(hand Hand) (HandValue, error) {
	return e.table.Traverse(hand.Cards())
}

// EvaluateCards is a convenience wrapper around [Evaluator.Evaluate]
// for callers holding a raw card slice rather than a [Hand].
func (e *Evaluator) EvaluateCards(cards []Card) (HandValue, error) {
	return e.table.Traverse(cards)
}

// Describe renders a human-readable description of v, e.g. "Full
// House, Kings full of Queens" (C13).
func (e *Evaluator) Describe(v HandValue) string {
	return Describe(v)
}

// Table exposes the Evaluator's underlying jump table, primarily for
// tests and diagnostics that want to inspect table shape directly.
func (e *Evaluator) Table() *Table {
	return e.table
}
