package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuta-labs/statuta/ast"
)

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	first := statute("a")
	first.Title = "first"
	duplicate := statute("a")
	duplicate.Title = "second"

	doc := docOf(first, statute("b"), duplicate)

	out, err := NewDeduplicate().Apply(doc)
	require.NoError(t, err)
	require.Len(t, out.Statutes, 2)
	assert.Equal(t, "a", out.Statutes[0].ID)
	assert.Equal(t, "first", out.Statutes[0].Title)
	assert.Equal(t, "b", out.Statutes[1].ID)

	// Input untouched.
	assert.Len(t, doc.Statutes, 3)
}

func TestSimplify_EliminatesDoubleNegationEverywhere(t *testing.T) {
	t.Parallel()

	inner := cmp("age", ast.OpGt, 18)
	s := statute("a")
	s.Conditions = []ast.Condition{
		&ast.Not{Inner: &ast.Not{Inner: inner}},
		&ast.And{
			Left:  &ast.Not{Inner: &ast.Not{Inner: cmp("income", ast.OpLt, 50000)}},
			Right: &ast.HasAttribute{Attribute: "resident"},
		},
	}

	out, err := NewSimplify().Apply(docOf(s))
	require.NoError(t, err)

	conds := out.Statutes[0].Conditions
	assert.True(t, ast.EqualConditions(inner, conds[0]))
	and, ok := conds[1].(*ast.And)
	require.True(t, ok)
	assert.IsType(t, &ast.Comparison{}, and.Left)

	// Single negation survives.
	assert.IsType(t, &ast.Not{}, eliminateDoubleNegation(&ast.Not{Inner: inner.Clone()}))
}

func TestConditionTransform_Standalone(t *testing.T) {
	t.Parallel()

	inner := cmp("age", ast.OpGt, 18)
	input := &ast.Not{Inner: &ast.Not{Inner: inner}}

	elim := NewDoubleNegationEliminator()
	got := elim.Apply(input)

	assert.True(t, ast.EqualConditions(inner, got))
	assert.NotEmpty(t, elim.Description())

	// The input tree is not mutated.
	assert.IsType(t, &ast.Not{}, input.Inner)
}

func TestRemoveEmpty(t *testing.T) {
	t.Parallel()

	withEffects := statute("effects")
	withDiscretion := &ast.Statute{
		ID:         "discretion",
		Discretion: &ast.Discretion{Holder: "commissioner"},
	}
	empty := &ast.Statute{ID: "empty"}

	out, err := NewRemoveEmpty().Apply(docOf(withEffects, empty, withDiscretion))
	require.NoError(t, err)

	require.Len(t, out.Statutes, 2)
	assert.Equal(t, "effects", out.Statutes[0].ID)
	assert.Equal(t, "discretion", out.Statutes[1].ID)
}

func TestNormalizeIDs(t *testing.T) {
	t.Parallel()

	a := statute("My_Statute", "Other_Statute")
	b := statute("Other_Statute")
	b.Supersedes = []string{"My_Statute"}

	out, err := NewNormalizeIDs().Apply(docOf(a, b))
	require.NoError(t, err)

	assert.Equal(t, "my-statute", out.Statutes[0].ID)
	assert.Equal(t, "other-statute", out.Statutes[1].ID)
	assert.Equal(t, []string{"other-statute"}, out.Statutes[0].Requires)
	assert.Equal(t, []string{"my-statute"}, out.Statutes[1].Supersedes)
}

func TestNormalizeID_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"My_Statute", "my-statute"},
		{"Tax Credit 2024", "tax-credit-2024"},
		{"already-normal", "already-normal"},
		{"MIXED_With Spaces", "mixed-with-spaces"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeID(tt.in))
		})
	}
}

func TestNormalizeIDs_CollidingIDsPreserved(t *testing.T) {
	t.Parallel()

	// Distinct ids may collapse to the same normalized id; the transform
	// keeps both statutes and leaves collision handling to the caller.
	a := statute("A_B")
	b := statute("A-B")
	c := statute("Other", "A_B")

	out, err := NewNormalizeIDs().Apply(docOf(a, b, c))
	require.NoError(t, err)

	require.Len(t, out.Statutes, 3)
	assert.Equal(t, "a-b", out.Statutes[0].ID)
	assert.Equal(t, "a-b", out.Statutes[1].ID)
	assert.Equal(t, []string{"a-b"}, out.Statutes[2].Requires)
}

func TestNormalizeIDs_ReferentialIntegrity(t *testing.T) {
	t.Parallel()

	a := statute("Base_Rule")
	b := statute("Child Rule", "Base_Rule")
	c := statute("Grand_Child", "Child Rule", "Base_Rule")

	out, err := NewNormalizeIDs().Apply(docOf(a, b, c))
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, s := range out.Statutes {
		ids[s.ID] = true
	}
	for _, s := range out.Statutes {
		for _, ref := range s.Requires {
			assert.True(t, ids[ref], "dangling reference %q", ref)
		}
	}
}
