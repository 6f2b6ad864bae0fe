// Package formatter renders unitproduct.Product and quantity.Quantity
// values as strings with configurable symbols, adapted from the
// teacher's FormatOptions/DefaultFormatter (gurre-si/formatter.go),
// generalized from gurre-si's fixed 7-slot Dimension array to the
// string-keyed unitproduct.Product this module uses throughout.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fish2000/pint/quantity"
	"github.com/fish2000/pint/unitproduct"
)

// Options configures rendering. The zero value is not directly
// usable; start from Default().
type Options struct {
	MultSymbol  string
	DivSymbol   string
	ExponentFmt string // e.g. "^%d"
	UseParens   bool
	// KnownSymbols maps a product's canonical String() form to a
	// collapsed display symbol, e.g. "kilogram * meter / second^2" ->
	// "newton" — the generalization of the teacher's
	// Dimension-keyed KnownSymbols map.
	KnownSymbols map[string]string
}

// Default mirrors the teacher's DefaultFormatOptions: "*"/"/"
// separators, "^%d" exponents, parenthesised denominators.
func Default() Options {
	return Options{
		MultSymbol:  " * ",
		DivSymbol:   " / ",
		ExponentFmt: "^%d",
		UseParens:   true,
	}
}

// Formatter renders Products according to Options.
type Formatter struct {
	Options Options
}

// New builds a Formatter with the given Options.
func New(opts Options) *Formatter { return &Formatter{Options: opts} }

// Format renders p, consulting Options.KnownSymbols first.
func (f *Formatter) Format(p unitproduct.Product) string {
	if p.IsEmpty() {
		return "dimensionless"
	}
	if symbol, ok := f.Options.KnownSymbols[p.String()]; ok {
		return symbol
	}

	var pos, neg []string
	for _, name := range p.Names() {
		exp := p.Exponent(name)
		if exp > 0 {
			pos = append(pos, f.formatTerm(name, exp))
		} else {
			neg = append(neg, f.formatTerm(name, -exp))
		}
	}

	switch {
	case len(neg) == 0:
		return strings.Join(pos, f.Options.MultSymbol)
	case len(pos) == 0:
		return "1" + f.Options.DivSymbol + f.joinDenominator(neg)
	default:
		return strings.Join(pos, f.Options.MultSymbol) + f.Options.DivSymbol + f.joinDenominator(neg)
	}
}

func (f *Formatter) joinDenominator(neg []string) string {
	joined := strings.Join(neg, f.Options.MultSymbol)
	if f.Options.UseParens && len(neg) > 1 {
		return "(" + joined + ")"
	}
	return joined
}

func (f *Formatter) formatTerm(name string, exp float64) string {
	if exp == 1 {
		return name
	}
	if exp == float64(int64(exp)) {
		return name + fmt.Sprintf(f.Options.ExponentFmt, int64(exp))
	}
	return fmt.Sprintf("%s^%g", name, exp)
}

// FormatQuantity renders a magnitude and its units together, e.g.
// "2.54 centimeter / second".
func FormatQuantity[M quantity.Magnitude[M]](f *Formatter, q quantity.Quantity[M]) string {
	if !q.HasMagnitude() {
		return fmt.Sprintf("<unspecified> %s", f.Format(q.Units))
	}
	if q.Units.IsEmpty() {
		return fmt.Sprintf("%g", q.Magnitude.Float64())
	}
	return fmt.Sprintf("%g %s", q.Magnitude.Float64(), f.Format(q.Units))
}
