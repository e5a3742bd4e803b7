package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipelang/rcp/internal/db"
)

func runSync(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf))
	return buf.String()
}

func writeRecipe(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join("rcps", name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const toastRecipe = "title: Toast\n\nstep:\n1 cnt bread\n\nToast it.\n"

const pancakeRecipe = "title: Pancakes\n\n" +
	"step: 5 min\n" +
	"1 1/2 cups flour\n" +
	"3 eggs\n\n" +
	"Whisk into a batter.\n\n" +
	"step: 10 min\n" +
	"1 tbsp butter\n\n" +
	"Fry until golden.\n"

func TestSync_RegistersNewRecipe(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)

	out := runSync(t)

	sqlDB, err := db.Open("rcps/rcp.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var title string
	var steps, ingredients int
	require.NoError(t, sqlDB.QueryRow(
		`SELECT title, steps, ingredients FROM recipes WHERE file_path = ?`,
		"rcps/toast.rcp").Scan(&title, &steps, &ingredients))
	assert.Equal(t, "Toast", title)
	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, ingredients)
	assert.Contains(t, out, "new  rcps/toast.rcp")
	assert.Contains(t, out, "synced 1 recipes")
}

func TestSync_RegistersMultipleRecipes(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)
	writeRecipe(t, "pancakes.rcp", pancakeRecipe)

	out := runSync(t)

	sqlDB, err := db.Open("rcps/rcp.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count))
	assert.Equal(t, 2, count)
	assert.Contains(t, out, "new  rcps/toast.rcp")
	assert.Contains(t, out, "new  rcps/pancakes.rcp")
	assert.Contains(t, out, "synced 2 recipes")
}

func TestSync_TracksRecipeAlreadyRegistered(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)
	runSync(t)

	out := runSync(t)

	assert.Contains(t, out, "trk  rcps/toast.rcp")
	assert.NotContains(t, out, "new  rcps/toast.rcp")
}

func TestSync_UpdatesChangedRecipe(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "toast.rcp", toastRecipe)
	runSync(t)

	writeRecipe(t, "toast.rcp", pancakeRecipe)
	runSync(t)

	sqlDB, err := db.Open("rcps/rcp.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var title string
	var steps int
	require.NoError(t, sqlDB.QueryRow(
		`SELECT title, steps FROM recipes WHERE file_path = ?`,
		"rcps/toast.rcp").Scan(&title, &steps))
	assert.Equal(t, "Pancakes", title)
	assert.Equal(t, 2, steps)
}

func TestSync_ReportsUnparsableRecipe(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeRecipe(t, "good.rcp", toastRecipe)
	writeRecipe(t, "bad.rcp", "not a recipe at all\n")

	out := runSync(t)

	sqlDB, err := db.Open("rcps/rcp.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count))
	assert.Equal(t, 1, count)
	assert.Contains(t, out, "err  rcps/bad.rcp")
	assert.Contains(t, out, "grammar mismatch")
	assert.Contains(t, out, "synced 1 recipes, 1 failed to parse")
}

func TestSync_WithoutInitFails(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunSync(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rcp init")
}

func TestSync_IgnoresNonRecipeFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("rcps/notes.txt", []byte("not scanned"), 0o644))

	out := runSync(t)

	assert.Contains(t, out, "synced 0 recipes")
}
