package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/gertd/go-pluralize"

	"github.com/recipelang/rcp/internal/recipe"
	"github.com/recipelang/rcp/internal/unit"
)

var inflect = pluralize.NewClient()

// AsRecipe parses one whole recipe document. On failure the returned
// error is a *ParseError carrying the failure kind and byte offset.
func AsRecipe(input string) (*recipe.Recipe, error) {
	r := recipeDoc(NewCursor(input))
	switch r.Outcome {
	case OutcomeComplete:
		return r.Value, nil
	case OutcomeAbort:
		return nil, &ParseError{Kind: KindCommitted, Offset: r.At, Msg: r.Msg}
	case OutcomeIncomplete:
		return nil, &ParseError{Kind: KindIncomplete, Offset: r.At, Msg: r.Msg}
	}
	return nil, &ParseError{Kind: KindMismatch, Offset: r.At, Msg: r.Msg}
}

// recipeDoc is the top-level production: title, optional description,
// then at least one step.
func recipeDoc(c Cursor) Result[*recipe.Recipe] {
	rt := title(c)
	if rt.Outcome != OutcomeComplete {
		return forward[*recipe.Recipe](rt)
	}
	c = blankLines(rt.Next)

	// A paragraph here is a description only if it does not open with
	// the step header.
	desc := ""
	if g := Not(Literal("step:"))(c); g.Outcome == OutcomeComplete {
		rd := description(c)
		if rd.Outcome != OutcomeComplete {
			return forward[*recipe.Recipe](rd)
		}
		desc = strings.TrimSpace(rd.Value)
		c = rd.Next
		if ps := paraSeparator(c); ps.Outcome == OutcomeComplete {
			c = ps.Next
		}
		c = blankLines(c)
	}

	rs := stepList(c)
	if rs.Outcome != OutcomeComplete {
		return forward[*recipe.Recipe](rs)
	}
	if !rs.Next.EOF() {
		return Fail[*recipe.Recipe](rs.Next, "unexpected content after the last step")
	}
	return Complete(rs.Next, &recipe.Recipe{
		Title:       rt.Value,
		Description: desc,
		Steps:       rs.Value,
	})
}

func title(c Cursor) Result[string] {
	rl := Literal("title:")(c)
	if rl.Outcome != OutcomeComplete {
		return forward[string](rl)
	}
	rt := Until(Literal("\n"))(WS(rl.Next).Next)
	if rt.Outcome != OutcomeComplete {
		return rt
	}
	rn := Literal("\n")(rt.Next)
	if rn.Outcome != OutcomeComplete {
		return rn
	}
	return Complete(rn.Next, strings.TrimSpace(rt.Value))
}

// paraSeparator is a blank line between sections: a newline, optional
// whitespace, and a second newline.
func paraSeparator(c Cursor) Result[string] {
	r1 := Literal("\n")(c)
	if r1.Outcome != OutcomeComplete {
		return r1
	}
	r2 := Literal("\n")(WS(r1.Next).Next)
	if r2.Outcome != OutcomeComplete {
		return r2
	}
	return Complete(r2.Next, "")
}

// blankLine consumes one whitespace-only line ending in a newline.
func blankLine(c Cursor) Result[string] {
	r := Literal("\n")(WS(c).Next)
	if r.Outcome != OutcomeComplete {
		return r
	}
	return Complete(r.Next, "")
}

// blankLines consumes any run of blank lines. It cannot fail.
func blankLines(c Cursor) Cursor {
	return Repeat(blankLine)(c).Next
}

// sectionEnd terminates free-text sections: a paragraph separator or
// the end of input.
var sectionEnd = Either(Discard(paraSeparator), EOI)

func description(c Cursor) Result[string] {
	return Until(sectionEnd)(c)
}

var timeUnits = []string{"ms", "sec", "s", "min", "m", "hrs", "hr", "h"}

// stepTime parses a duration like "2 min" or "1500 ms" into whole
// seconds. Milliseconds truncate by integer division.
func stepTime(c Cursor) Result[time.Duration] {
	rn := num(c)
	if rn.Outcome != OutcomeComplete {
		return forward[time.Duration](rn)
	}
	ru := AnyLiteral(timeUnits...)(WS(rn.Next).Next)
	if ru.Outcome != OutcomeComplete {
		return forward[time.Duration](ru)
	}
	var secs uint64
	switch ru.Value {
	case "ms":
		secs = rn.Value / 1000
	case "s", "sec":
		secs = rn.Value
	case "m", "min":
		secs = rn.Value * 60
	case "h", "hr", "hrs":
		secs = rn.Value * 3600
	}
	return Complete(ru.Next, time.Duration(secs)*time.Second)
}

// stepPrefix recognizes the step header line: the "step:" literal, an
// optional duration, and the line end. Everything after a recognized
// prefix is committed.
func stepPrefix(c Cursor) Result[time.Duration] {
	rl := Literal("step:")(c)
	if rl.Outcome != OutcomeComplete {
		return forward[time.Duration](rl)
	}
	c = rl.Next

	dur := time.Duration(0)
	if rt := stepTime(WS(c).Next); rt.Outcome == OutcomeComplete {
		dur = rt.Value
		c = rt.Next
	}

	rn := Literal("\n")(WS(c).Next)
	if rn.Outcome != OutcomeComplete {
		return forward[time.Duration](rn)
	}
	return Complete(blankLines(rn.Next), dur)
}

// step parses one step. Once the prefix has matched, the ingredient
// list and its trailing separator must parse; failure there aborts the
// whole document instead of backtracking.
func step(c Cursor) Result[recipe.Step] {
	rp := stepPrefix(c)
	if rp.Outcome != OutcomeComplete {
		return forward[recipe.Step](rp)
	}
	ri := Must(ingredientList)(rp.Next)
	if ri.Outcome != OutcomeComplete {
		return forward[recipe.Step](ri)
	}
	rs := Must(paraSeparator)(ri.Next)
	if rs.Outcome != OutcomeComplete {
		return forward[recipe.Step](rs)
	}
	rd := description(rs.Next)
	if rd.Outcome != OutcomeComplete {
		return forward[recipe.Step](rd)
	}
	c = rd.Next
	if re := sectionEnd(c); re.Outcome == OutcomeComplete {
		c = re.Next
	}
	return Complete(blankLines(c), recipe.Step{
		Duration:     rp.Value,
		Ingredients:  ri.Value,
		Instructions: strings.TrimSpace(rd.Value),
	})
}

func stepList(c Cursor) Result[[]recipe.Step] {
	first := step(c)
	if first.Outcome != OutcomeComplete {
		return forward[[]recipe.Step](first)
	}
	rest := Repeat(step)(first.Next)
	if rest.Outcome != OutcomeComplete {
		return forward[[]recipe.Step](rest)
	}
	return Complete(rest.Next, append([]recipe.Step{first.Value}, rest.Value...))
}

// num parses an unsigned base-10 integer. Leading zeros are accepted.
func num(c Cursor) Result[uint64] {
	rd := Digits(c)
	if rd.Outcome != OutcomeComplete {
		return forward[uint64](rd)
	}
	n, err := strconv.ParseUint(rd.Value, 10, 32)
	if err != nil {
		return Fail[uint64](c, "number out of range")
	}
	return Complete(rd.Next, n)
}

type fraction struct {
	num, den uint64
}

// ratio parses "a/b". A zero denominator is accepted; rejecting it is
// the quantity algebra's job, not the grammar's.
func ratio(c Cursor) Result[fraction] {
	rn := num(c)
	if rn.Outcome != OutcomeComplete {
		return forward[fraction](rn)
	}
	rs := Literal("/")(rn.Next)
	if rs.Outcome != OutcomeComplete {
		return forward[fraction](rs)
	}
	rd := num(rs.Next)
	if rd.Outcome != OutcomeComplete {
		return forward[fraction](rd)
	}
	return Complete(rd.Next, fraction{num: rn.Value, den: rd.Value})
}

// quantity parses a mixed number, a bare fraction, or a bare integer.
// The mixed form must be tried first or the fractional part after a
// whole number would be dropped.
func quantity(c Cursor) Result[unit.Quantity] {
	return Either(mixedQuantity, fracQuantity, wholeQuantity)(c)
}

func mixedQuantity(c Cursor) Result[unit.Quantity] {
	rw := num(c)
	if rw.Outcome != OutcomeComplete {
		return forward[unit.Quantity](rw)
	}
	rf := ratio(WS(rw.Next).Next)
	if rf.Outcome != OutcomeComplete {
		return forward[unit.Quantity](rf)
	}
	return Complete(WS(rf.Next).Next, unit.Mixed(rw.Value, rf.Value.num, rf.Value.den))
}

func fracQuantity(c Cursor) Result[unit.Quantity] {
	rf := ratio(c)
	if rf.Outcome != OutcomeComplete {
		return forward[unit.Quantity](rf)
	}
	return Complete(WS(rf.Next).Next, unit.Frac(rf.Value.num, rf.Value.den))
}

func wholeQuantity(c Cursor) Result[unit.Quantity] {
	rw := num(c)
	if rw.Outcome != OutcomeComplete {
		return forward[unit.Quantity](rw)
	}
	return Complete(WS(rw.Next).Next, unit.Whole(rw.Value))
}

// unitTok matches a unit token from the vocabulary. The vocabulary is
// ordered longest-first, and the token must end at a word boundary, so
// "cups" never strands an "s" and "cupcakes" is not a unit at all.
func unitTok(c Cursor) Result[string] {
	rt := AnyLiteralFold(unit.Tokens()...)(c)
	if rt.Outcome != OutcomeComplete {
		return rt
	}
	if !unitBoundary(rt.Next) {
		return Fail[string](c, "unit token runs into the following word")
	}
	return Complete(WS(rt.Next).Next, rt.Value)
}

func unitBoundary(c Cursor) bool {
	b, ok := c.Byte()
	if !ok {
		return true
	}
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '('
}

// measure parses a quantity with an optional unit token. No unit means
// a count measure.
func measure(c Cursor) Result[unit.Measure] {
	rq := quantity(c)
	if rq.Outcome != OutcomeComplete {
		return forward[unit.Measure](rq)
	}
	ru := Optional(unitTok)(rq.Next)
	if ru.Outcome != OutcomeComplete {
		return forward[unit.Measure](ru)
	}
	c = WS(ru.Next).Next
	if ru.Value == nil {
		return Complete(c, unit.Count(rq.Value))
	}
	return Complete(c, unit.FromToken(rq.Value, *ru.Value))
}

// nameEnd terminates an ingredient name: line end, end of input, or the
// opening parenthesis of a modifier.
var nameEnd = Either(
	Discard(Literal("\n")),
	EOI,
	Discard(Literal("(")),
)

func ingredientName(c Cursor) Result[string] {
	r := Until(nameEnd)(c)
	if r.Outcome != OutcomeComplete {
		return r
	}
	return Complete(r.Next, inflect.Singular(strings.TrimSpace(r.Value)))
}

func ingredientModifier(c Cursor) Result[string] {
	ro := Literal("(")(c)
	if ro.Outcome != OutcomeComplete {
		return ro
	}
	rm := Until(Literal(")"))(ro.Next)
	if rm.Outcome != OutcomeComplete {
		return rm
	}
	rc := Literal(")")(rm.Next)
	if rc.Outcome != OutcomeComplete {
		return rc
	}
	return Complete(rc.Next, strings.TrimSpace(rm.Value))
}

func ingredient(c Cursor) Result[recipe.Ingredient] {
	rm := measure(WS(c).Next)
	if rm.Outcome != OutcomeComplete {
		return forward[recipe.Ingredient](rm)
	}
	rn := ingredientName(rm.Next)
	if rn.Outcome != OutcomeComplete {
		return forward[recipe.Ingredient](rn)
	}
	c = rn.Next
	mod := ""
	if rmod := ingredientModifier(c); rmod.Outcome == OutcomeComplete {
		mod = rmod.Value
		c = rmod.Next
	}
	return Complete(WS(c).Next, recipe.Ingredient{
		Name:     rn.Value,
		Modifier: mod,
		Measure:  rm.Value,
	})
}

// ingredientList parses one or more ingredient lines separated by
// single newlines. Blank lines end the list.
func ingredientList(c Cursor) Result[[]recipe.Ingredient] {
	return Separated(Literal("\n"), ingredient)(c)
}
