// Package recipe defines the document model produced by parsing a recipe
// file, and renders it back to the same text format.
package recipe

import (
	"time"

	"github.com/recipelang/rcp/internal/unit"
)

// Recipe is a fully parsed recipe document. Values are immutable once
// constructed; edits happen by re-parsing edited text.
type Recipe struct {
	Title       string
	Description string // empty when the document has none
	Steps       []Step // never empty for a parsed recipe
}

// Step is one step of a recipe.
type Step struct {
	Duration     time.Duration // expected duration, 0 if untimed
	Ingredients  []Ingredient  // never empty for a parsed step
	Instructions string
}

// Ingredient is a single ingredient line.
type Ingredient struct {
	Name     string // singularized noun phrase
	Modifier string // parenthesized preparation note, empty if none
	Measure  unit.Measure
}

// IngredientCount returns the total number of ingredient lines across
// all steps.
func (r *Recipe) IngredientCount() int {
	n := 0
	for _, s := range r.Steps {
		n += len(s.Ingredients)
	}
	return n
}
