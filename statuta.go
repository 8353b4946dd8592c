// Package statuta is the convenience surface over the statute AST
// toolchain: one-shot optimization and the preset transform pipelines.
// Callers needing per-pass control or custom pipelines use the optimize and
// transform packages directly.
package statuta

import (
	"github.com/statuta-labs/statuta/ast"
	"github.com/statuta-labs/statuta/internal/logger"
	"github.com/statuta-labs/statuta/optimize"
	"github.com/statuta-labs/statuta/transform"
)

// Optimize runs all five optimizer passes once with a fresh optimizer and
// returns the new document alongside the pass statistics.
func Optimize(doc *ast.Document) (*ast.Document, optimize.Stats) {
	o := optimize.NewOptimizer()
	out := o.Optimize(doc)
	return out, o.Stats()
}

// OptimizeToFixedPoint re-runs the optimizer until a round eliminates
// nothing, and returns the settled document with the number of rounds taken.
// Only the eliminating counters (CSE, dead code, folding) drive the loop:
// they shrink the tree, so the loop terminates. The positional counters do
// not qualify — reorder counts every invocation, and hoist and reorder can
// disagree about ordering indefinitely.
func OptimizeToFixedPoint(doc *ast.Document) (*ast.Document, int) {
	o := optimize.NewOptimizer()
	current := doc
	rounds := 0
	eliminated := func(s optimize.Stats) int {
		return s.DuplicatesEliminated + s.DeadConditionsRemoved + s.ConstantsFolded
	}
	for {
		before := eliminated(o.Stats())
		current = o.Optimize(current)
		rounds++
		if eliminated(o.Stats()) == before {
			return current, rounds
		}
	}
}

// NewSessionOptimizer builds an optimizer for an interactive editing
// session, logging each pass at the given level ("debug" shows per-pass
// counts) in human-readable form.
func NewSessionOptimizer(level string) *optimize.Optimizer {
	log := logger.New(logger.Config{Level: level, Pretty: true})
	return optimize.NewOptimizer(optimize.WithLogger(log))
}

// Cleanup applies the cleanup preset: deduplicate, remove empty statutes,
// normalize ids.
func Cleanup(doc *ast.Document) (*ast.Document, error) {
	return transform.NewCleanupPipeline().Apply(doc)
}

// Normalize applies the normalization preset: normalize ids, then order
// statutes by dependencies. Fails on a cyclic requires graph.
func Normalize(doc *ast.Document) (*ast.Document, error) {
	return transform.NewNormalizationPipeline().Apply(doc)
}

// Full applies every built-in transform in cleanup order.
func Full(doc *ast.Document) (*ast.Document, error) {
	return transform.NewFullPipeline().Apply(doc)
}
