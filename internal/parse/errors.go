package parse

import "fmt"

// FailureKind distinguishes the three ways a parse can fail at the
// external boundary.
type FailureKind int

const (
	// KindMismatch means no production at the document root matched.
	KindMismatch FailureKind = iota
	// KindCommitted means a step header was recognized but its required
	// continuation did not parse. The whole document is rejected.
	KindCommitted
	// KindIncomplete means input ended while a rule still required more
	// characters.
	KindIncomplete
)

func (k FailureKind) String() string {
	switch k {
	case KindCommitted:
		return "committed section violation"
	case KindIncomplete:
		return "incomplete input"
	}
	return "grammar mismatch"
}

// ParseError is the structured failure returned by AsRecipe. Offset is
// the byte offset at which the grammar could not proceed.
type ParseError struct {
	Kind   FailureKind
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}
