package parse

import (
	"strconv"
	"strings"
)

// Literal matches tok exactly. Input that ends partway through a
// matching prefix is incomplete rather than a mismatch.
func Literal(tok string) Rule[string] {
	return func(c Cursor) Result[string] {
		got, full := c.Peek(len(tok))
		if !full {
			if got == tok[:len(got)] {
				return Incomplete[string](c, "input ended inside "+strconv.Quote(tok))
			}
			return Fail[string](c, "expected "+strconv.Quote(tok))
		}
		if got != tok {
			return Fail[string](c, "expected "+strconv.Quote(tok))
		}
		return Complete(c.Advance(len(tok)), tok)
	}
}

// LiteralFold matches tok ignoring ASCII case, returning tok itself
// rather than the spelling found in the input.
func LiteralFold(tok string) Rule[string] {
	return func(c Cursor) Result[string] {
		got, full := c.Peek(len(tok))
		if !full {
			if strings.EqualFold(got, tok[:len(got)]) {
				return Incomplete[string](c, "input ended inside "+strconv.Quote(tok))
			}
			return Fail[string](c, "expected "+strconv.Quote(tok))
		}
		if !strings.EqualFold(got, tok) {
			return Fail[string](c, "expected "+strconv.Quote(tok))
		}
		return Complete(c.Advance(len(tok)), tok)
	}
}

// AnyLiteral matches the first of tokens that applies, in the given
// order. Ordering matters for tokens sharing a prefix: the longer one
// must come first.
func AnyLiteral(tokens ...string) Rule[string] {
	return func(c Cursor) Result[string] {
		for _, tok := range tokens {
			if got, full := c.Peek(len(tok)); full && got == tok {
				return Complete(c.Advance(len(tok)), tok)
			}
		}
		return Fail[string](c, "expected one of the token vocabulary")
	}
}

// AnyLiteralFold is AnyLiteral with ASCII case folding, returning the
// vocabulary spelling of the matched token.
func AnyLiteralFold(tokens ...string) Rule[string] {
	return func(c Cursor) Result[string] {
		for _, tok := range tokens {
			if got, full := c.Peek(len(tok)); full && strings.EqualFold(got, tok) {
				return Complete(c.Advance(len(tok)), tok)
			}
		}
		return Fail[string](c, "expected one of the token vocabulary")
	}
}

// Digits matches one or more ASCII digits and returns the run.
func Digits(c Cursor) Result[string] {
	if c.EOF() {
		return Incomplete[string](c, "input ended where a number was expected")
	}
	b, _ := c.Byte()
	if b < '0' || b > '9' {
		return Fail[string](c, "expected a digit")
	}
	end := c
	for {
		b, ok := end.Byte()
		if !ok || b < '0' || b > '9' {
			break
		}
		end = end.Advance(1)
	}
	return Complete(end, c.Between(end))
}

// WS consumes zero or more spaces, tabs, and carriage returns. It never
// fails; newlines are significant to the grammar and are not consumed.
func WS(c Cursor) Result[string] {
	end := c
	for {
		b, ok := end.Byte()
		if !ok || (b != ' ' && b != '\t' && b != '\r') {
			break
		}
		end = end.Advance(1)
	}
	return Complete(end, c.Between(end))
}

// EOI matches only at end of input.
func EOI(c Cursor) Result[struct{}] {
	if c.EOF() {
		return Complete(c, struct{}{})
	}
	return Fail[struct{}](c, "expected end of input")
}
