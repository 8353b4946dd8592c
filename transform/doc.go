// Package transform provides composable document-level rewrites over
// statute documents.
//
// Key components:
//
// Transform: the flat capability contract every rewrite implements. A
// transform takes a document and returns a new one; it never mutates its
// input. Reversibility and pre-validation are optional, defaulting to
// "not reversible" and "always valid".
//
// Built-ins: Deduplicate, Simplify, RemoveEmpty, SortByDependencies and
// NormalizeIDs, one per file, registered by name for recipe loading.
//
// Pipeline: an ordered sequence of transforms applied fail-fast. The result
// is either the fully transformed document or the first error; a partially
// applied document is never observable.
//
// History: a linear undo/redo log of whole-document snapshots for a single
// editing session.
//
// Presets: ready-made pipelines for the common cleanup and normalization
// recipes, plus YAML loading of custom recipes.
package transform
