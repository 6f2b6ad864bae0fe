// Package unitproduct implements the algebraic kernel shared by the
// registry, parser, and converter: a Product is an immutable formal
// monomial over unit names with real-valued exponents.
package unitproduct

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Product is an immutable mapping from unit name to exponent. The zero
// value is the dimensionless (empty) product. Zero-exponent entries
// are never stored.
type Product struct {
	exponents map[string]float64
}

// Empty is the dimensionless unit product.
var Empty = Product{}

// New builds a Product from a map of exponents, dropping any entry
// whose exponent is exactly zero.
func New(exponents map[string]float64) Product {
	p := Product{exponents: make(map[string]float64, len(exponents))}
	for name, exp := range exponents {
		if exp == 0 {
			continue
		}
		p.exponents[name] = exp
	}
	if len(p.exponents) == 0 {
		return Empty
	}
	return p
}

// Single returns the Product for a single unit name raised to exp.
func Single(name string, exp float64) Product {
	return New(map[string]float64{name: exp})
}

func (a Product) clone() map[string]float64 {
	m := make(map[string]float64, len(a.exponents))
	for k, v := range a.exponents {
		m[k] = v
	}
	return m
}

// Mul returns a*b: exponents are summed key-wise, zero results dropped.
func (a Product) Mul(b Product) Product {
	m := a.clone()
	for name, exp := range b.exponents {
		m[name] += exp
	}
	return New(m)
}

// Div returns a/b: b's exponents are subtracted key-wise, zero results
// dropped.
func (a Product) Div(b Product) Product {
	m := a.clone()
	for name, exp := range b.exponents {
		m[name] -= exp
	}
	return New(m)
}

// Pow multiplies every exponent in the product by n. n may be non-integer.
func (a Product) Pow(n float64) Product {
	if n == 0 {
		return Empty
	}
	m := make(map[string]float64, len(a.exponents))
	for name, exp := range a.exponents {
		m[name] = exp * n
	}
	return New(m)
}

// Equals reports whether a and b carry the same non-zero exponents.
func (a Product) Equals(b Product) bool {
	if len(a.exponents) != len(b.exponents) {
		return false
	}
	for name, exp := range a.exponents {
		if other, ok := b.exponents[name]; !ok || other != exp {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the product carries no non-zero exponents.
func (a Product) IsEmpty() bool {
	return len(a.exponents) == 0
}

// Exponent returns the exponent of name, or 0 if name is not present.
func (a Product) Exponent(name string) float64 {
	return a.exponents[name]
}

// Names returns the unit names with non-zero exponent, alphabetised.
func (a Product) Names() []string {
	names := make([]string, 0, len(a.exponents))
	for name := range a.exponents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range calls fn once for each (name, exponent) pair, in unspecified
// order.
func (a Product) Range(fn func(name string, exp float64)) {
	for name, exp := range a.exponents {
		fn(name, exp)
	}
}

// String renders "a * b^e_b / c^e_c": positive-exponent keys first
// (alphabetised), a single '/' before the negative-exponent keys
// (themselves joined with '*', parenthesised when there is more than
// one), exponent 1 omitted, non-integer exponents rendered as "^x.y".
func (a Product) String() string {
	if a.IsEmpty() {
		return "dimensionless"
	}

	var pos, neg []string
	for _, name := range a.Names() {
		exp := a.exponents[name]
		if exp > 0 {
			pos = append(pos, formatTerm(name, exp))
		} else {
			neg = append(neg, formatTerm(name, -exp))
		}
	}

	switch {
	case len(neg) == 0:
		return strings.Join(pos, " * ")
	case len(pos) == 0:
		return "1 / " + joinDenominator(neg)
	default:
		return strings.Join(pos, " * ") + " / " + joinDenominator(neg)
	}
}

// joinDenominator joins negative-exponent terms behind the single '/'
// with '*', parenthesising when there is more than one so the whole
// group reads as the sole divisor.
func joinDenominator(neg []string) string {
	joined := strings.Join(neg, " * ")
	if len(neg) > 1 {
		return "(" + joined + ")"
	}
	return joined
}

func formatTerm(name string, exp float64) string {
	if exp == 1 {
		return name
	}
	if exp == math.Trunc(exp) {
		return fmt.Sprintf("%s^%d", name, int64(exp))
	}
	return fmt.Sprintf("%s^%g", name, exp)
}
