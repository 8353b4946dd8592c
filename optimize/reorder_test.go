package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuta-labs/statuta/ast"
)

func TestConditionCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cond ast.Condition
		want int
	}{
		{"attribute presence", &ast.HasAttribute{Attribute: "citizen"}, 1},
		{"comparison", cmp("age", ast.OpGt, 18), 2},
		{
			"between",
			&ast.Between{Field: "income", Min: ast.NumberValue(0), Max: ast.NumberValue(1)},
			3,
		},
		{
			"in scales with elements",
			&ast.In{Field: "state", Values: []ast.Value{
				ast.StringValue("CA"), ast.StringValue("NY"), ast.StringValue("TX"),
			}},
			8,
		},
		{"like", &ast.Like{Field: "name", Pattern: "A%"}, 10},
		{"regex", &ast.Matches{Field: "name", Regex: "^A.*"}, 15},
		{
			"and sums children",
			&ast.And{Left: cmp("age", ast.OpGt, 18), Right: &ast.Like{Field: "name", Pattern: "A%"}},
			12,
		},
		{
			"or sums children",
			&ast.Or{Left: &ast.HasAttribute{Attribute: "a"}, Right: &ast.HasAttribute{Attribute: "b"}},
			2,
		},
		{"not adds one", &ast.Not{Inner: cmp("age", ast.OpGt, 18)}, 3},
		{
			"default for range checks",
			&ast.InRange{Field: "zone", Low: ast.NumberValue(1), High: ast.NumberValue(4)},
			5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, conditionCost(tt.cond))
		})
	}
}

func TestReorderOnly_CheapestFirst(t *testing.T) {
	t.Parallel()

	doc := singleStatuteDoc(
		&ast.Matches{Field: "name", Regex: "^A.*"},
		&ast.HasAttribute{Attribute: "citizen"},
	)

	o := NewOptimizer()
	out := o.ReorderOnly(doc)

	conds := out.Statutes[0].Conditions
	require.Len(t, conds, 2)
	assert.IsType(t, &ast.HasAttribute{}, conds[0])
	assert.IsType(t, &ast.Matches{}, conds[1])
}

func TestReorderOnly_CostMonotonic(t *testing.T) {
	t.Parallel()

	doc := singleStatuteDoc(
		&ast.Like{Field: "name", Pattern: "A%"},
		cmp("age", ast.OpGt, 18),
		&ast.In{Field: "state", Values: []ast.Value{ast.StringValue("CA")}},
		&ast.HasAttribute{Attribute: "citizen"},
		&ast.Between{Field: "income", Min: ast.NumberValue(0), Max: ast.NumberValue(1)},
	)

	out := NewOptimizer().ReorderOnly(doc)
	conds := out.Statutes[0].Conditions
	for i := 1; i < len(conds); i++ {
		assert.LessOrEqual(t, conditionCost(conds[i-1]), conditionCost(conds[i]))
	}
}

func TestReorderOnly_StableAmongEqualCosts(t *testing.T) {
	t.Parallel()

	doc := singleStatuteDoc(
		cmp("age", ast.OpGt, 18),
		cmp("income", ast.OpLt, 50000),
		cmp("height", ast.OpGe, 150),
	)

	out := NewOptimizer().ReorderOnly(doc)
	conds := out.Statutes[0].Conditions
	assert.Equal(t, "age", conds[0].(*ast.Comparison).Field)
	assert.Equal(t, "income", conds[1].(*ast.Comparison).Field)
	assert.Equal(t, "height", conds[2].(*ast.Comparison).Field)
}

func TestReorderOnly_CounterCountsListLength(t *testing.T) {
	t.Parallel()

	doc := singleStatuteDoc(
		&ast.HasAttribute{Attribute: "citizen"},
		cmp("age", ast.OpGt, 18),
	)

	o := NewOptimizer()
	out := o.ReorderOnly(doc)
	assert.Equal(t, 2, o.Stats().ConditionsReordered)

	// Sorted input still counts the full list on the next invocation.
	o.ReorderOnly(out)
	assert.Equal(t, 4, o.Stats().ConditionsReordered)
}
