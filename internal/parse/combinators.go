package parse

// The combinator layer. Every combinator is defined purely in terms of
// the four outcomes and composes with the others. Incomplete is treated
// like Fail wherever an alternative remains to be tried, because this
// parser only sees whole buffered documents.

// Either tries rules in order from the same original cursor and returns
// the first Complete or Abort. An Abort from any alternative wins over
// later alternatives. If every rule fails, Either reports the deepest
// failure; an Incomplete that reached end of input is preserved so the
// caller can tell truncated input from a mismatch.
func Either[T any](rules ...Rule[T]) Rule[T] {
	return func(c Cursor) Result[T] {
		best := Fail[T](c, "no alternative matched")
		for _, rule := range rules {
			r := rule(c)
			switch r.Outcome {
			case OutcomeComplete, OutcomeAbort:
				return r
			}
			if r.At >= best.At {
				best = r
			}
		}
		return best
	}
}

// Optional completes with a nil value when the inner rule fails, and
// passes Complete and Abort through unchanged.
func Optional[T any](rule Rule[T]) Rule[*T] {
	return func(c Cursor) Result[*T] {
		r := rule(c)
		switch r.Outcome {
		case OutcomeComplete:
			return Complete(r.Next, &r.Value)
		case OutcomeAbort:
			return forward[*T](r)
		}
		return Complete[*T](c, nil)
	}
}

// Repeat applies the inner rule until it fails, collecting results.
// Zero matches is a success. An Abort from the inner rule propagates.
func Repeat[T any](rule Rule[T]) Rule[[]T] {
	return func(c Cursor) Result[[]T] {
		var out []T
		for {
			r := rule(c)
			if r.Outcome == OutcomeAbort {
				return forward[[]T](r)
			}
			if r.Outcome != OutcomeComplete {
				return Complete(c, out)
			}
			if r.Next.Offset() == c.Offset() {
				// zero-width match; stop rather than loop forever
				return Complete(c, out)
			}
			out = append(out, r.Value)
			c = r.Next
		}
	}
}

// Separated parses one or more items separated by sep. A separator with
// no item after it is left unconsumed.
func Separated[T, S any](sep Rule[S], item Rule[T]) Rule[[]T] {
	return func(c Cursor) Result[[]T] {
		first := item(c)
		if first.Outcome != OutcomeComplete {
			return forward[[]T](first)
		}
		out := []T{first.Value}
		c = first.Next
		for {
			s := sep(c)
			if s.Outcome == OutcomeAbort {
				return forward[[]T](s)
			}
			if s.Outcome != OutcomeComplete {
				return Complete(c, out)
			}
			next := item(s.Next)
			if next.Outcome == OutcomeAbort {
				return forward[[]T](next)
			}
			if next.Outcome != OutcomeComplete {
				return Complete(c, out)
			}
			out = append(out, next.Value)
			c = next.Next
		}
	}
}

// Until consumes input up to, but not including, the first position
// where the terminator matches, returning the consumed span. Reaching
// end of input without a terminator match is an incomplete result, so
// terminators that accept end of input should include EOI.
func Until[T any](term Rule[T]) Rule[string] {
	return func(c Cursor) Result[string] {
		pos := c
		for {
			r := term(pos)
			switch r.Outcome {
			case OutcomeComplete:
				return Complete(pos, c.Between(pos))
			case OutcomeAbort:
				return forward[string](r)
			}
			if pos.EOF() {
				return Incomplete[string](pos, "input ended before terminator")
			}
			pos = pos.Advance(1)
		}
	}
}

// Peek tests the inner rule without consuming input.
func Peek[T any](rule Rule[T]) Rule[T] {
	return func(c Cursor) Result[T] {
		r := rule(c)
		if r.Outcome == OutcomeComplete {
			return Complete(c, r.Value)
		}
		return r
	}
}

// Not succeeds without consuming input when the inner rule does not
// match, and fails when it does.
func Not[T any](rule Rule[T]) Rule[struct{}] {
	return func(c Cursor) Result[struct{}] {
		r := rule(c)
		if r.Outcome == OutcomeComplete {
			return Fail[struct{}](c, "unexpected match")
		}
		return Complete(c, struct{}{})
	}
}

// Discard drops a rule's value, so rules producing different types can
// stand together as alternatives.
func Discard[T any](rule Rule[T]) Rule[struct{}] {
	return func(c Cursor) Result[struct{}] {
		r := rule(c)
		if r.Outcome != OutcomeComplete {
			return forward[struct{}](r)
		}
		return Complete(r.Next, struct{}{})
	}
}

// Must converts a recoverable failure of the inner rule into an abort:
// the explicit commit point past which the parser no longer backtracks.
// Incomplete stays incomplete; running out of input is not a grammar
// violation.
func Must[T any](rule Rule[T]) Rule[T] {
	return func(c Cursor) Result[T] {
		r := rule(c)
		if r.Outcome == OutcomeFail {
			r.Outcome = OutcomeAbort
		}
		return r
	}
}
