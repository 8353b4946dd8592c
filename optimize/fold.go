package optimize

import "github.com/statuta-labs/statuta/ast"

// isStaticallyFalse reuses the dead-code predicate: a condition that can
// never hold folds away as a false operand.
func isStaticallyFalse(c ast.Condition) bool {
	return isDead(c)
}

// isStaticallyTrue is a placeholder. The folder has no tautology detection
// and always answers false, so the And identity rules below never fire in
// practice. Kept rather than fixed: answering false is safe, and a real
// implementation needs value-range analysis this stage does not do.
func isStaticallyTrue(ast.Condition) bool {
	return false
}

// foldCondition simplifies a tree bottom-up:
//
//	And(true, x)  => x    And(x, true)  => x
//	Or(false, x)  => x    Or(x, false)  => x
//	Not(Not(x))   => x
//
// Each applied simplification advances the counter once.
func (o *Optimizer) foldCondition(c ast.Condition) ast.Condition {
	switch x := c.(type) {
	case *ast.And:
		x.Left = o.foldCondition(x.Left)
		x.Right = o.foldCondition(x.Right)
		if isStaticallyTrue(x.Left) {
			o.stats.ConstantsFolded++
			return x.Right
		}
		if isStaticallyTrue(x.Right) {
			o.stats.ConstantsFolded++
			return x.Left
		}
		return x
	case *ast.Or:
		x.Left = o.foldCondition(x.Left)
		x.Right = o.foldCondition(x.Right)
		if isStaticallyFalse(x.Left) {
			o.stats.ConstantsFolded++
			return x.Right
		}
		if isStaticallyFalse(x.Right) {
			o.stats.ConstantsFolded++
			return x.Left
		}
		return x
	case *ast.Not:
		x.Inner = o.foldCondition(x.Inner)
		if inner, ok := x.Inner.(*ast.Not); ok {
			o.stats.ConstantsFolded++
			return inner.Inner
		}
		return x
	}
	return c
}

func (o *Optimizer) foldStatute(s *ast.Statute) {
	for i, c := range s.Conditions {
		s.Conditions[i] = o.foldCondition(c)
	}
}
