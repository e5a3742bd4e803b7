// Package unit provides the exact quantity arithmetic and measurement
// types used by recipe ingredients. Quantities are whole numbers,
// fractions, or mixed numbers; arithmetic never rounds.
package unit

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator is returned when a fraction with a zero denominator
// reaches the arithmetic layer. The grammar accepts such fractions; the
// error surfaces only when the value is evaluated.
var ErrZeroDenominator = errors.New("fraction has zero denominator")

// Quantity is an exact non-negative amount: a whole number, a fraction,
// or their sum (a mixed number). The zero value is the quantity 0.
type Quantity struct {
	whole uint64
	num   uint64
	den   uint64
	frac  bool
}

// Whole returns the quantity n.
func Whole(n uint64) Quantity {
	return Quantity{whole: n}
}

// Frac returns the quantity num/den. A zero denominator is accepted here
// and rejected later by Add and Cmp.
func Frac(num, den uint64) Quantity {
	return Quantity{num: num, den: den, frac: true}
}

// Mixed returns the quantity whole + num/den.
func Mixed(whole, num, den uint64) Quantity {
	return Quantity{whole: whole, num: num, den: den, frac: true}
}

func (q Quantity) badDen() bool {
	return q.frac && q.den == 0
}

// parts returns the quantity as an improper fraction n/d with d >= 1.
func (q Quantity) parts() (n, d uint64) {
	if !q.frac {
		return q.whole, 1
	}
	return q.whole*q.den + q.num, q.den
}

// Add returns the exact sum of q and o. Whole numbers stay whole;
// fractional results are reduced and carried into a mixed number.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.badDen() || o.badDen() {
		return Quantity{}, ErrZeroDenominator
	}
	if !q.frac && !o.frac {
		return Whole(q.whole + o.whole), nil
	}

	qn, qd := q.parts()
	on, od := o.parts()
	num := qn*od + on*qd
	den := qd * od

	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	whole := num / den
	num %= den
	if num == 0 {
		return Whole(whole), nil
	}
	return Mixed(whole, num, den), nil
}

// Cmp compares q and o exactly by cross-multiplication, returning
// -1, 0, or 1.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if q.badDen() || o.badDen() {
		return 0, ErrZeroDenominator
	}
	qn, qd := q.parts()
	on, od := o.parts()
	left := qn * od
	right := on * qd
	switch {
	case left < right:
		return -1, nil
	case left > right:
		return 1, nil
	}
	return 0, nil
}

// String renders the quantity the way it appears in a recipe:
// "2", "1/2", or "2 1/2".
func (q Quantity) String() string {
	if !q.frac {
		return fmt.Sprintf("%d", q.whole)
	}
	if q.whole == 0 {
		return fmt.Sprintf("%d/%d", q.num, q.den)
	}
	return fmt.Sprintf("%d %d/%d", q.whole, q.num, q.den)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
