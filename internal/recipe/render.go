package recipe

import (
	"fmt"
	"strings"
	"time"
)

// Render writes the recipe back out in the recipe text format. Parsing
// the rendered text reproduces an equivalent recipe, modulo unit alias
// canonicalization and incidental whitespace.
func (r *Recipe) Render() string {
	var b strings.Builder

	b.WriteString("title: ")
	b.WriteString(r.Title)
	b.WriteString("\n\n")

	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteString("\n\n")
	}

	for i, s := range r.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("step:")
		if s.Duration > 0 {
			b.WriteString(" ")
			b.WriteString(FormatDuration(s.Duration))
		}
		b.WriteString("\n")
		for _, ing := range s.Ingredients {
			b.WriteString(ing.Line())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.Instructions)
		b.WriteString("\n")
	}

	return b.String()
}

// Line renders the ingredient as a single ingredient line.
func (in Ingredient) Line() string {
	var b strings.Builder
	b.WriteString(in.Measure.String())
	b.WriteString(" ")
	b.WriteString(in.Name)
	if in.Modifier != "" {
		b.WriteString(" (")
		b.WriteString(in.Modifier)
		b.WriteString(")")
	}
	return b.String()
}

// FormatDuration renders a step duration with the coarsest time unit the
// grammar accepts that divides it evenly.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	switch {
	case secs%3600 == 0:
		return fmt.Sprintf("%d hr", secs/3600)
	case secs%60 == 0:
		return fmt.Sprintf("%d min", secs/60)
	}
	return fmt.Sprintf("%d s", secs)
}
