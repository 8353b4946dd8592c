// Package ast defines the document model shared by every stage of the
// statute toolchain: a Document owning an ordered list of Statutes, each
// statute owning AND-combined Condition trees and a list of Effects.
//
// Conditions form a recursive tagged union. Leaf variants (Comparison,
// Between, In, Like, Matches, InRange, NotInRange, HasAttribute,
// TemporalComparison) carry plain values; composite variants (And, Or, Not)
// own their children outright, so a condition tree is acyclic by
// construction and plain recursive descent is enough to traverse it.
//
// A statute's Requires and Supersedes entries are references, not ownership:
// they are resolved by matching other statutes' ids, never by pointer.
// The requires graph of a document may contain cycles and must be checked,
// not assumed acyclic.
//
// Nothing in this package mutates shared state. Consumers that rewrite a
// document are expected to Clone it first and work on the copy.
package ast
