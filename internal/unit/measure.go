package unit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnitMismatch is returned when two measures with different units are
// added together.
var ErrUnitMismatch = errors.New("measures have different units")

// Kind is the measurement domain of a unit.
type Kind int

const (
	KindCount Kind = iota
	KindVolume
	KindWeight
)

// Unit is the canonical tag for a recognized measurement unit. Cnt is the
// default when an ingredient has no unit token.
type Unit int

const (
	Cnt Unit = iota
	Tsp
	Tbsp
	Floz
	ML
	Ltr
	Cup
	Qrt
	Pint
	Gal
	Lb
	Oz
	Kg
	Gram
)

// Kind returns the measurement domain the unit belongs to.
func (u Unit) Kind() Kind {
	switch u {
	case Tsp, Tbsp, Floz, ML, Ltr, Cup, Qrt, Pint, Gal:
		return KindVolume
	case Lb, Oz, Kg, Gram:
		return KindWeight
	}
	return KindCount
}

// String returns the canonical singular token for the unit. Count has no
// token and renders empty.
func (u Unit) String() string {
	switch u {
	case Tsp:
		return "tsp"
	case Tbsp:
		return "tbsp"
	case Floz:
		return "floz"
	case ML:
		return "ml"
	case Ltr:
		return "ltr"
	case Cup:
		return "cup"
	case Qrt:
		return "qrt"
	case Pint:
		return "pint"
	case Gal:
		return "gal"
	case Lb:
		return "lb"
	case Oz:
		return "oz"
	case Kg:
		return "kg"
	case Gram:
		return "g"
	}
	return ""
}

// aliases maps every accepted spelling of a unit token to its canonical
// tag. The parser's token vocabulary is derived from this table, so a
// token the grammar matches always has a mapping here.
var aliases = map[string]Unit{
	"tsp":   Tsp,
	"tsps":  Tsp,
	"tbsp":  Tbsp,
	"tbsps": Tbsp,
	"floz":  Floz,
	"ml":    ML,
	"ltr":   Ltr,

	"cup":    Cup,
	"cups":   Cup,
	"qrt":    Qrt,
	"qrts":   Qrt,
	"quart":  Qrt,
	"quarts": Qrt,
	"pint":   Pint,
	"pints":  Pint,
	"pnt":    Pint,
	"gal":    Gal,
	"gals":   Gal,

	"lb":        Lb,
	"lbs":       Lb,
	"oz":        Oz,
	"kg":        Kg,
	"kilogram":  Kg,
	"kilograms": Kg,
	"g":         Gram,
	"gram":      Gram,
	"grams":     Gram,

	"cnt":   Cnt,
	"count": Cnt,
}

// Normalize folds a unit token to its canonical tag. The lookup is
// case-insensitive. The second return is false for unrecognized tokens.
func Normalize(token string) (Unit, bool) {
	u, ok := aliases[strings.ToLower(token)]
	return u, ok
}

// Tokens returns the unit token vocabulary ordered longest-first, so that
// alternatives sharing a prefix ("tbsps" and "tbsp") are tried in an
// order that cannot strand a trailing suffix.
var Tokens = sync.OnceValue(func() []string {
	toks := make([]string, 0, len(aliases))
	for t := range aliases {
		toks = append(toks, t)
	}
	sort.Slice(toks, func(i, j int) bool {
		if len(toks[i]) != len(toks[j]) {
			return len(toks[i]) > len(toks[j])
		}
		return toks[i] < toks[j]
	})
	return toks
})

// Measure is a quantity tagged with a unit. The unit decides the
// measurement domain via Unit.Kind.
type Measure struct {
	Unit   Unit
	Amount Quantity
}

// Count wraps a quantity in a unitless count measure.
func Count(q Quantity) Measure {
	return Measure{Unit: Cnt, Amount: q}
}

// FromToken builds a measure from a parsed unit token. The token must
// come from the grammar's vocabulary; anything else means the vocabulary
// and the alias table have drifted apart, which is a programming defect.
func FromToken(q Quantity, token string) Measure {
	u, ok := Normalize(token)
	if !ok {
		panic(fmt.Sprintf("unit token %q has no measurement mapping", token))
	}
	return Measure{Unit: u, Amount: q}
}

// Kind returns the measurement domain of the measure.
func (m Measure) Kind() Kind {
	return m.Unit.Kind()
}

// Add sums two measures of the same unit exactly.
func (m Measure) Add(o Measure) (Measure, error) {
	if m.Unit != o.Unit {
		return Measure{}, ErrUnitMismatch
	}
	sum, err := m.Amount.Add(o.Amount)
	if err != nil {
		return Measure{}, err
	}
	return Measure{Unit: m.Unit, Amount: sum}, nil
}

// String renders the measure as it appears in an ingredient line. Count
// measures render as the bare quantity.
func (m Measure) String() string {
	if m.Unit == Cnt {
		return m.Amount.String()
	}
	return m.Amount.String() + " " + m.Unit.String()
}
