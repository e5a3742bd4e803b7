package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipelang/rcp/internal/db"
	"github.com/recipelang/rcp/internal/parse"
	"github.com/recipelang/rcp/internal/unit"
)

var shopCmd = &cobra.Command{
	Use:   "shop [<id>...]",
	Short: "Build a shopping list from registered recipes",
	Long: `Build a shopping list by aggregating the ingredient lists of the
given recipes (all registered recipes when no IDs are given). Entries
with the same name and unit are summed exactly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShop(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

type shopKey struct {
	name string
	unit unit.Unit
}

func RunShop(w io.Writer, rawIDs []string) error {
	if _, err := os.Stat("rcps"); os.IsNotExist(err) {
		return fmt.Errorf("run `rcp init` first")
	}

	sqlDB, err := db.Open("rcps/rcp.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var paths []string
	if len(rawIDs) == 0 {
		rows, err := sqlDB.Query(`SELECT file_path FROM recipes ORDER BY id`)
		if err != nil {
			return fmt.Errorf("querying recipes: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				return fmt.Errorf("scanning recipe row: %w", err)
			}
			paths = append(paths, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	} else {
		for _, raw := range rawIDs {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid recipe ID: %s", raw)
			}
			var p string
			if err := sqlDB.QueryRow(`SELECT file_path FROM recipes WHERE id = ?`, id).Scan(&p); err != nil {
				return fmt.Errorf("recipe %d not found", id)
			}
			paths = append(paths, p)
		}
	}

	totals := map[shopKey]unit.Measure{}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		rec, err := parse.AsRecipe(string(content))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, s := range rec.Steps {
			for _, ing := range s.Ingredients {
				key := shopKey{name: strings.ToLower(ing.Name), unit: ing.Measure.Unit}
				if have, ok := totals[key]; ok {
					sum, err := have.Add(ing.Measure)
					if err != nil {
						return fmt.Errorf("summing %s in %s: %w", ing.Name, path, err)
					}
					totals[key] = sum
				} else {
					totals[key] = ing.Measure
				}
			}
		}
	}

	keys := make([]shopKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].unit < keys[j].unit
	})

	for _, k := range keys {
		fmt.Fprintf(w, "%s %s\n", totals[k].String(), k.name)
	}
	return nil
}
