package optimize

import "github.com/statuta-labs/statuta/ast"

// isDead reports whether a condition can never hold. The check is
// deliberately conservative: only three shapes are recognized, and anything
// unrecognized counts as satisfiable.
//
//   - an age comparison requiring a negative age ("age < 0")
//   - an And with a dead child (deadness propagates through And only;
//     an Or survives as long as either branch might hold)
//   - a Between whose numeric bounds are inverted (min > max)
func isDead(c ast.Condition) bool {
	switch x := c.(type) {
	case *ast.Comparison:
		return x.Field == "age" && x.Op == ast.OpLt &&
			x.Value.IsNumber() && x.Value.Num == 0
	case *ast.And:
		return isDead(x.Left) || isDead(x.Right)
	case *ast.Between:
		return x.Min.IsNumber() && x.Max.IsNumber() && x.Min.Num > x.Max.Num
	}
	return false
}

// deadCodeStatute drops top-level conditions the dead predicate flags,
// counting one removal each.
func (o *Optimizer) deadCodeStatute(s *ast.Statute) {
	kept := s.Conditions[:0]
	for _, c := range s.Conditions {
		if isDead(c) {
			o.stats.DeadConditionsRemoved++
			continue
		}
		kept = append(kept, c)
	}
	s.Conditions = kept
}
