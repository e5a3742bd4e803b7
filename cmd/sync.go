package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/db"
	"github.com/recipelang/rcp/internal/parse"
	"github.com/recipelang/rcp/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan rcps/ for .rcp files, parse them, and update the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer) error {
	if _, err := os.Stat("rcps"); os.IsNotExist(err) {
		return fmt.Errorf("run `rcp init` first")
	}

	sqlDB, err := db.Open("rcps/rcp.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	matches, err := filepath.Glob("rcps/*.rcp")
	if err != nil {
		return fmt.Errorf("scanning rcps/: %w", err)
	}
	sort.Strings(matches)

	count := 0
	failed := 0
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rec, err := parse.AsRecipe(string(content))
		if err != nil {
			ui.ErrLine(w, path, err.Error())
			failed++
			continue
		}

		var id int64
		err = sqlDB.QueryRow(`SELECT id FROM recipes WHERE file_path = ?`, path).Scan(&id)
		if err == sql.ErrNoRows {
			_, err = sqlDB.Exec(
				`INSERT INTO recipes (file_path, title, steps, ingredients) VALUES (?, ?, ?, ?)`,
				path, rec.Title, len(rec.Steps), rec.IngredientCount(),
			)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		} else {
			_, err = sqlDB.Exec(
				`UPDATE recipes SET title = ?, steps = ?, ingredients = ?, updated_at = datetime('now') WHERE id = ?`,
				rec.Title, len(rec.Steps), rec.IngredientCount(), id,
			)
			if err != nil {
				return fmt.Errorf("updating %s: %w", path, err)
			}
			ui.TrkLine(w, path)
		}
		count++
	}

	ui.SummaryLine(w, count, failed)
	return nil
}
