package optimize

import (
	"sort"

	"github.com/statuta-labs/statuta/ast"
)

// reorderStatute stable-sorts a statute's conditions ascending by cost.
// The counter advances by the full list length on every invocation, sorted
// input included, so it measures work attempted rather than positions moved.
func (o *Optimizer) reorderStatute(s *ast.Statute) {
	sort.SliceStable(s.Conditions, func(i, j int) bool {
		return conditionCost(s.Conditions[i]) < conditionCost(s.Conditions[j])
	})
	o.stats.ConditionsReordered += len(s.Conditions)
}
