package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/parse"
	"github.com/recipelang/rcp/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse recipe files and report any grammar errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func RunCheck(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
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
		ui.OkLine(w, path, fmt.Sprintf("%s (%d steps, %d ingredients)",
			rec.Title, len(rec.Steps), rec.IngredientCount()))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(paths))
	}
	return nil
}
