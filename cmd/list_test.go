package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runList(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf))
	return buf.String()
}

func TestList_ShowsRegisteredRecipes(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)
	writeRecipe(t, "pancakes.rcp", pancakeRecipe)
	runSync(t)

	out := runList(t)

	assert.Contains(t, out, "Toast")
	assert.Contains(t, out, "toast.rcp")
	assert.Contains(t, out, "(1 steps)")
	assert.Contains(t, out, "Pancakes")
	assert.Contains(t, out, "(2 steps)")
}

func TestList_OrdersByTitle(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)
	writeRecipe(t, "pancakes.rcp", pancakeRecipe)
	runSync(t)

	out := runList(t)

	assert.Less(t, strings.Index(out, "Pancakes"), strings.Index(out, "Toast"))
}

func TestList_EmptyRegistry(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runList(t)

	assert.Empty(t, out)
}

func TestList_WithoutInitFails(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunList(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcp init")
}
