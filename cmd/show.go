package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/db"
	"github.com/recipelang/rcp/internal/parse"
	"github.com/recipelang/rcp/internal/recipe"
	"github.com/recipelang/rcp/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recipe ID: %s", rawID)
	}

	if _, err := os.Stat("rcps"); os.IsNotExist(err) {
		return fmt.Errorf("run `rcp init` first")
	}

	sqlDB, err := db.Open("rcps/rcp.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var filePath string
	err = sqlDB.QueryRow(`SELECT file_path FROM recipes WHERE id = ?`, id).Scan(&filePath)
	if err != nil {
		return fmt.Errorf("recipe %d not found", id)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}

	rec, err := parse.AsRecipe(string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filePath, err)
	}

	ui.Header(w, id, filepath.Base(filePath))
	ui.Title(w, rec.Title)
	if rec.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rec.Description)
	}

	for i, s := range rec.Steps {
		fmt.Fprintln(w)
		dur := ""
		if s.Duration > 0 {
			dur = recipe.FormatDuration(s.Duration)
		}
		ui.StepHeading(w, i+1, dur)
		for _, ing := range s.Ingredients {
			fmt.Fprintf(w, "  - %s\n", ing.Line())
		}
		if s.Instructions != "" {
			fmt.Fprintln(w, s.Instructions)
		}
	}

	return nil
}
