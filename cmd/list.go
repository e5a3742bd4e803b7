package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/db"
	"github.com/recipelang/rcp/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer) error {
	if _, err := os.Stat("rcps"); os.IsNotExist(err) {
		return fmt.Errorf("run `rcp init` first")
	}

	sqlDB, err := db.Open("rcps/rcp.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`SELECT id, file_path, title, steps FROM recipes ORDER BY title, id`)
	if err != nil {
		return fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var filePath, title string
		var steps int
		if err := rows.Scan(&id, &filePath, &title, &steps); err != nil {
			return fmt.Errorf("scanning recipe row: %w", err)
		}
		ui.ListLine(w, id, filepath.Base(filePath), title, steps)
	}

	return rows.Err()
}
