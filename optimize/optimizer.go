package optimize

import (
	"github.com/rs/zerolog"

	"github.com/statuta-labs/statuta/ast"
)

// Stats accumulates pass counters across calls on one Optimizer until
// ResetStats is called. A full run that reports zero everywhere left the
// document at a fixed point.
type Stats struct {
	ConditionsHoisted     int
	DuplicatesEliminated  int
	DeadConditionsRemoved int
	ConditionsReordered   int
	ConstantsFolded       int
}

// Total returns the sum of all counters.
func (s Stats) Total() int {
	return s.ConditionsHoisted + s.DuplicatesEliminated + s.DeadConditionsRemoved +
		s.ConditionsReordered + s.ConstantsFolded
}

// Optimizer runs rewrite passes over documents. The zero-value-adjacent
// constructor form is NewOptimizer; an Optimizer keeps only its counters and
// logger, so one instance per logical editing session is the intended
// discipline. Sharing an instance across goroutines needs external locking.
type Optimizer struct {
	stats Stats
	log   zerolog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger routes pass-level debug events to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Optimizer) { o.log = log }
}

// NewOptimizer creates an Optimizer with zeroed statistics.
func NewOptimizer(opts ...Option) *Optimizer {
	o := &Optimizer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stats returns a copy of the accumulated counters.
func (o *Optimizer) Stats() Stats { return o.stats }

// ResetStats zeroes all counters.
func (o *Optimizer) ResetStats() { o.stats = Stats{} }

// Optimize applies all five passes in order and returns a new document.
func (o *Optimizer) Optimize(doc *ast.Document) *ast.Document {
	out := doc.Clone()
	for _, s := range out.Statutes {
		o.hoistStatute(s)
		o.cseStatute(s)
		o.deadCodeStatute(s)
		o.reorderStatute(s)
		o.foldStatute(s)
	}
	o.log.Debug().
		Int("statutes", len(out.Statutes)).
		Int("hoisted", o.stats.ConditionsHoisted).
		Int("duplicates", o.stats.DuplicatesEliminated).
		Int("dead", o.stats.DeadConditionsRemoved).
		Int("reordered", o.stats.ConditionsReordered).
		Int("folded", o.stats.ConstantsFolded).
		Msg("optimize complete")
	return out
}

// HoistOnly applies just the invariant hoisting pass.
func (o *Optimizer) HoistOnly(doc *ast.Document) *ast.Document {
	return o.runPass(doc, "hoist", o.hoistStatute)
}

// CSEOnly applies just common-subexpression elimination.
func (o *Optimizer) CSEOnly(doc *ast.Document) *ast.Document {
	return o.runPass(doc, "cse", o.cseStatute)
}

// DeadCodeOnly applies just dead-condition elimination.
func (o *Optimizer) DeadCodeOnly(doc *ast.Document) *ast.Document {
	return o.runPass(doc, "dead-code", o.deadCodeStatute)
}

// ReorderOnly applies just cost-based reordering.
func (o *Optimizer) ReorderOnly(doc *ast.Document) *ast.Document {
	return o.runPass(doc, "reorder", o.reorderStatute)
}

// FoldOnly applies just constant folding.
func (o *Optimizer) FoldOnly(doc *ast.Document) *ast.Document {
	return o.runPass(doc, "fold", o.foldStatute)
}

func (o *Optimizer) runPass(doc *ast.Document, name string, pass func(*ast.Statute)) *ast.Document {
	out := doc.Clone()
	for _, s := range out.Statutes {
		pass(s)
	}
	o.log.Debug().Str("pass", name).Int("statutes", len(out.Statutes)).Msg("pass complete")
	return out
}
