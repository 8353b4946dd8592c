// Package optimize rewrites statute condition trees before they reach
// comparison, verification or evaluation stages.
//
// An Optimizer applies five deterministic passes in fixed order:
//
//	hoist     - move invariant conditions to the front (stable partition)
//	cse       - drop conditions whose canonical signature repeats
//	dead code - drop conditions that can never hold
//	reorder   - stable sort by evaluation cost, cheapest first
//	fold      - bottom-up constant folding (identity and double negation)
//
// Each pass is also invocable on its own. Every entry point takes a document
// and returns a fresh one; inputs are never mutated. All passes are total:
// they cannot fail on a well-formed tree.
//
// Passes are individually idempotent, but one full run is not guaranteed to
// reach a global fixed point (folding can expose new dead code). Callers
// needing a fixed point re-run Optimize until Stats reports no changes.
package optimize
