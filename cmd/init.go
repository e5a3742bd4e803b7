package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rcp in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// rcps/ directory
	_, err := os.Stat("rcps")
	rcpsExists := err == nil
	if err := os.MkdirAll("rcps", 0o755); err != nil {
		return fmt.Errorf("creating rcps directory: %w", err)
	}
	if rcpsExists {
		fmt.Fprintln(w, "rcps/ already exists")
	} else {
		fmt.Fprintln(w, "rcps/ created")
	}

	// database
	_, err = os.Stat("rcps/rcp.db")
	dbExists := err == nil
	sqlDB, err := db.Open("rcps/rcp.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, "rcps/rcp.db already exists")
	} else {
		fmt.Fprintln(w, "rcps/rcp.db created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore() ([]string, error) {
	const entry = "rcps/rcp.db"

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", "rcps/rcp.db added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{"rcps/rcp.db already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{"rcps/rcp.db added to .gitignore"}, nil
}
