package optimize

import (
	"fmt"
	"strings"

	"github.com/statuta-labs/statuta/ast"
)

// signature builds a canonical string for a condition tree. Two conditions
// are duplicates exactly when their signatures match; composite variants
// recursively include child signatures tagged with the variant name.
func signature(c ast.Condition) string {
	switch x := c.(type) {
	case *ast.Comparison:
		return fmt.Sprintf("cmp(%s,%s,%s)", x.Field, x.Op, x.Value)
	case *ast.Between:
		return fmt.Sprintf("between(%s,%s,%s)", x.Field, x.Min, x.Max)
	case *ast.In:
		parts := make([]string, len(x.Values))
		for i, v := range x.Values {
			parts[i] = v.String()
		}
		return fmt.Sprintf("in(%s,[%s])", x.Field, strings.Join(parts, ","))
	case *ast.Like:
		return fmt.Sprintf("like(%s,%s)", x.Field, x.Pattern)
	case *ast.Matches:
		return fmt.Sprintf("matches(%s,%s)", x.Field, x.Regex)
	case *ast.InRange:
		return fmt.Sprintf("inrange(%s,%s,%s)", x.Field, x.Low, x.High)
	case *ast.NotInRange:
		return fmt.Sprintf("notinrange(%s,%s,%s)", x.Field, x.Low, x.High)
	case *ast.HasAttribute:
		return fmt.Sprintf("hasattr(%s)", x.Attribute)
	case *ast.TemporalComparison:
		return fmt.Sprintf("temporal(%s,%s,%d)", x.Field, x.Op, x.Time.UnixNano())
	case *ast.And:
		return fmt.Sprintf("and(%s,%s)", signature(x.Left), signature(x.Right))
	case *ast.Or:
		return fmt.Sprintf("or(%s,%s)", signature(x.Left), signature(x.Right))
	case *ast.Not:
		return fmt.Sprintf("not(%s)", signature(x.Inner))
	}
	return fmt.Sprintf("unknown(%T)", c)
}
