package optimize

import "github.com/statuta-labs/statuta/ast"

const defaultCost = 5

// conditionCost scores how expensive a condition is to evaluate. Cheap
// checks placed first give AND short-circuiting the best odds of skipping
// the expensive ones.
func conditionCost(c ast.Condition) int {
	switch x := c.(type) {
	case *ast.HasAttribute:
		return 1
	case *ast.Comparison:
		return 2
	case *ast.Between:
		return 3
	case *ast.In:
		return 5 + len(x.Values)
	case *ast.Like:
		return 10
	case *ast.Matches:
		return 15
	case *ast.And:
		return conditionCost(x.Left) + conditionCost(x.Right)
	case *ast.Or:
		return conditionCost(x.Left) + conditionCost(x.Right)
	case *ast.Not:
		return conditionCost(x.Inner) + 1
	}
	return defaultCost
}
