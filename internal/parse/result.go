package parse

// Outcome classifies the result of applying a rule at a cursor position.
type Outcome uint8

const (
	// OutcomeComplete means the rule matched and parsing continues from
	// Result.Next.
	OutcomeComplete Outcome = iota
	// OutcomeFail means the rule did not match here; sibling alternatives
	// may still be tried from the original cursor.
	OutcomeFail
	// OutcomeAbort means the rule matched a distinguishing prefix but its
	// required continuation failed. Aborts propagate to the top without
	// trying further alternatives.
	OutcomeAbort
	// OutcomeIncomplete means input ran out before the rule could decide.
	// This parser works on whole buffered documents, so Incomplete is
	// terminal and reported as an insufficient-input failure.
	OutcomeIncomplete
)

// Result is the four-way outcome of a rule. At and Msg describe the
// failure position for the non-Complete outcomes.
type Result[T any] struct {
	Outcome Outcome
	Next    Cursor
	Value   T
	At      int
	Msg     string
}

// Rule is a grammar rule: a pure function from a cursor to a result.
type Rule[T any] func(Cursor) Result[T]

// Complete builds a successful result continuing at next.
func Complete[T any](next Cursor, v T) Result[T] {
	return Result[T]{Outcome: OutcomeComplete, Next: next, Value: v}
}

// Fail builds a recoverable failure at the cursor position.
func Fail[T any](at Cursor, msg string) Result[T] {
	return Result[T]{Outcome: OutcomeFail, At: at.Offset(), Msg: msg}
}

// Abort builds an unrecoverable failure at the cursor position.
func Abort[T any](at Cursor, msg string) Result[T] {
	return Result[T]{Outcome: OutcomeAbort, At: at.Offset(), Msg: msg}
}

// Incomplete builds an insufficient-input result at the cursor position.
func Incomplete[T any](at Cursor, msg string) Result[T] {
	return Result[T]{Outcome: OutcomeIncomplete, At: at.Offset(), Msg: msg}
}

// forward re-types a non-Complete result for a rule producing a
// different value type, preserving the outcome and position.
func forward[U, T any](r Result[T]) Result[U] {
	return Result[U]{Outcome: r.Outcome, At: r.At, Msg: r.Msg}
}
