package optimize

import "github.com/statuta-labs/statuta/ast"

// Metadata fields are fixed per statute version, so conditions over them
// hold or fail identically for every evaluated entity.
func isMetadataField(name string) bool {
	return name == "version" || name == "jurisdiction"
}

// isInvariant reports whether a condition's truth value is independent of
// the entity under evaluation. Attribute-presence checks are never
// invariant: presence is a property of the entity itself.
func isInvariant(c ast.Condition) bool {
	switch x := c.(type) {
	case *ast.Comparison:
		return isMetadataField(x.Field)
	case *ast.TemporalComparison:
		return isMetadataField(x.Field)
	case *ast.And:
		return isInvariant(x.Left) && isInvariant(x.Right)
	case *ast.Or:
		return isInvariant(x.Left) && isInvariant(x.Right)
	case *ast.Not:
		return isInvariant(x.Inner)
	}
	return false
}

// hoistStatute moves invariant conditions ahead of entity-dependent ones.
// This is a stable partition, not a sort: relative order inside each group
// is preserved. The counter records conditions that actually moved.
func (o *Optimizer) hoistStatute(s *ast.Statute) {
	invariant := make([]ast.Condition, 0, len(s.Conditions))
	rest := make([]ast.Condition, 0, len(s.Conditions))
	moved := 0
	for _, c := range s.Conditions {
		if isInvariant(c) {
			if len(rest) > 0 {
				moved++
			}
			invariant = append(invariant, c)
		} else {
			rest = append(rest, c)
		}
	}
	if moved == 0 {
		return
	}
	s.Conditions = append(invariant, rest...)
	o.stats.ConditionsHoisted += moved
}
