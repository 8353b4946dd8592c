package transform

import "github.com/statuta-labs/statuta/ast"

// ConditionTransform rewrites a single condition tree. It is the
// condition-level counterpart of Transform, usable standalone or lifted over
// a whole document by Simplify.
type ConditionTransform interface {
	// Apply returns the rewritten condition. The input tree is not
	// mutated; unchanged subtrees may be returned as fresh clones.
	Apply(c ast.Condition) ast.Condition

	Description() string
}

// DoubleNegationEliminator rewrites Not(Not(x)) to x throughout a tree, the
// same rule constant folding applies to Not nodes.
type DoubleNegationEliminator struct{}

// NewDoubleNegationEliminator creates the eliminator.
func NewDoubleNegationEliminator() *DoubleNegationEliminator {
	return &DoubleNegationEliminator{}
}

func (*DoubleNegationEliminator) Description() string {
	return "eliminate double negation"
}

func (e *DoubleNegationEliminator) Apply(c ast.Condition) ast.Condition {
	return eliminateDoubleNegation(c.Clone())
}

// eliminateDoubleNegation works bottom-up on a tree it owns.
func eliminateDoubleNegation(c ast.Condition) ast.Condition {
	switch x := c.(type) {
	case *ast.And:
		x.Left = eliminateDoubleNegation(x.Left)
		x.Right = eliminateDoubleNegation(x.Right)
		return x
	case *ast.Or:
		x.Left = eliminateDoubleNegation(x.Left)
		x.Right = eliminateDoubleNegation(x.Right)
		return x
	case *ast.Not:
		x.Inner = eliminateDoubleNegation(x.Inner)
		if inner, ok := x.Inner.(*ast.Not); ok {
			return inner.Inner
		}
		return x
	}
	return c
}
