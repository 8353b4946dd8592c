package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecipes(t *testing.T) {
	t.Parallel()

	const yml = `
recipes:
  strict-cleanup:
    - deduplicate
    - remove-empty
    - sort-by-dependencies
  rename-only:
    - normalize-ids
`

	recipes, err := LoadRecipes(strings.NewReader(yml))
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, []string{
		"deduplicate statutes",
		"remove empty statutes",
		"sort statutes by dependencies",
	}, recipes["strict-cleanup"].Describe())

	out, err := recipes["rename-only"].Apply(docOf(statute("My_Statute")))
	require.NoError(t, err)
	assert.Equal(t, "my-statute", out.Statutes[0].ID)
}

func TestLoadRecipes_UnknownTransform(t *testing.T) {
	t.Parallel()

	const yml = `
recipes:
  broken:
    - deduplicate
    - frobnicate
`

	_, err := LoadRecipes(strings.NewReader(yml))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnknownTransform))
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadRecipes_BadYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadRecipes(strings.NewReader("recipes: ["))
	require.Error(t, err)
}

func TestLoadRecipes_Empty(t *testing.T) {
	t.Parallel()

	recipes, err := LoadRecipes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
