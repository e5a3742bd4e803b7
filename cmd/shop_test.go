package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShop(t *testing.T, ids ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunShop(&buf, ids))
	return buf.String()
}

func TestShop_AggregatesAcrossRecipes(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "pancakes.rcp",
		"title: Pancakes\n\nstep:\n1 1/2 cups flour\n3 eggs\n\nWhisk.\n")
	writeRecipe(t, "crepes.rcp",
		"title: Crepes\n\nstep:\n1/2 cup flour\n2 eggs\n\nWhisk thinner.\n")
	runSync(t)

	out := runShop(t)

	assert.Contains(t, out, "2 cup flour\n")
	assert.Contains(t, out, "5 egg\n")
}

func TestShop_KeepsDifferentUnitsApart(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "dough.rcp",
		"title: Dough\n\nstep:\n2 cups flour\n1 lb flour\n\nCombine somehow.\n")
	runSync(t)

	out := runShop(t)

	assert.Contains(t, out, "2 cup flour\n")
	assert.Contains(t, out, "1 lb flour\n")
}

func TestShop_SumsFractionsExactly(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "one.rcp", "title: One\n\nstep:\n1/3 cup sugar\n\nStir.\n")
	writeRecipe(t, "two.rcp", "title: Two\n\nstep:\n1/6 cup sugar\n\nStir again.\n")
	runSync(t)

	out := runShop(t)

	assert.Contains(t, out, "1/2 cup sugar\n")
}

func TestShop_SelectsByID(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "pancakes.rcp", "title: Pancakes\n\nstep:\n3 eggs\n\nWhisk.\n")
	writeRecipe(t, "toast.rcp", toastRecipe)
	runSync(t)

	out := runShop(t, "1")

	assert.Contains(t, out, "egg")
	assert.NotContains(t, out, "bread")
}

func TestShop_SortsByName(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "mix.rcp",
		"title: Mix\n\nstep:\n1 cup walnuts\n2 cups almonds\n\nMix well.\n")
	runSync(t)

	out := runShop(t)

	assert.Less(t, strings.Index(out, "almond"), strings.Index(out, "walnut"))
}

func TestShop_UnknownIDFails(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShop(&buf, []string{"9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe 9 not found")
}

func TestShop_WithoutInitFails(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShop(&buf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcp init")
}
