package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/parse"
)

var fmtWriteFlag bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reprint a recipe file in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunFmt(cmd.OutOrStdout(), args[0], fmtWriteFlag)
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtWriteFlag, "write", false, "Rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}

func RunFmt(w io.Writer, path string, write bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	rec, err := parse.AsRecipe(string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	rendered := rec.Render()
	if write {
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "formatted %s\n", path)
		return nil
	}

	fmt.Fprint(w, rendered)
	return nil
}
