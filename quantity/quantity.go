package quantity

import (
	"fmt"

	"github.com/fish2000/pint/unitproduct"
)

// Quantity is a magnitude paired with a unitproduct.Product. Quantities
// are value-typed and immutable: every operation below returns a fresh
// Quantity rather than mutating its receiver. Operations that require
// converting between two different (but dimensionally equal) units
// need a registry and live in package convert, not here — a Quantity
// carries its unit names by value, never a pointer into a registry
// (see spec.md §5), so it stays usable without one.
type Quantity[M Magnitude[M]] struct {
	Magnitude M
	Units     unitproduct.Product

	specified bool
}

// New builds a Quantity with a known magnitude.
func New[M Magnitude[M]](magnitude M, units unitproduct.Product) Quantity[M] {
	return Quantity[M]{Magnitude: magnitude, Units: units, specified: true}
}

// Unspecified builds a Quantity that carries only dimensional
// information and no magnitude (spec.md §4.2: "an unspecified
// magnitude Quantity is legal").
func Unspecified[M Magnitude[M]](units unitproduct.Product) Quantity[M] {
	var zero M
	return Quantity[M]{Magnitude: zero, Units: units, specified: false}
}

// HasMagnitude reports whether the Quantity carries a real magnitude,
// as opposed to being purely dimensional (see Unspecified).
func (q Quantity[M]) HasMagnitude() bool { return q.specified }

// Mul returns q*other: magnitudes multiply, unit products multiply.
func (q Quantity[M]) Mul(other Quantity[M]) Quantity[M] {
	return New(q.Magnitude.Mul(other.Magnitude), q.Units.Mul(other.Units))
}

// Div returns q/other: magnitudes divide, unit products divide.
func (q Quantity[M]) Div(other Quantity[M]) Quantity[M] {
	return New(q.Magnitude.Div(other.Magnitude), q.Units.Div(other.Units))
}

// FloorDiv returns q // other: like Div, but the resulting magnitude
// is floored. Unit products follow Div (spec.md §4.2's arithmetic
// table: "Like / but floor the magnitude; units follow /").
func (q Quantity[M]) FloorDiv(other Quantity[M]) Quantity[M] {
	return New(q.Magnitude.Div(other.Magnitude).Floor(), q.Units.Div(other.Units))
}

// Pow raises q to a dimensionless scalar power n: the magnitude is
// raised to n and the unit product's exponents are scaled by n.
func (q Quantity[M]) Pow(n float64) Quantity[M] {
	return New(q.Magnitude.Pow(n), q.Units.Pow(n))
}

// Neg, Abs, and Round apply to the magnitude only; units are
// unchanged.
func (q Quantity[M]) Neg() Quantity[M]   { return New(q.Magnitude.Neg(), q.Units) }
func (q Quantity[M]) Abs() Quantity[M]   { return New(q.Magnitude.Abs(), q.Units) }
func (q Quantity[M]) Round() Quantity[M] { return New(q.Magnitude.Round(), q.Units) }

// AddSameUnits adds two Quantities that already share the exact same
// unit product, without involving a registry. Callers combining
// Quantities in different (but dimensionally equal) units must convert
// first — see convert.Add.
func (q Quantity[M]) AddSameUnits(other Quantity[M]) (Quantity[M], bool) {
	if !q.Units.Equals(other.Units) {
		return Quantity[M]{}, false
	}
	return New(q.Magnitude.Add(other.Magnitude), q.Units), true
}

// SubSameUnits is the subtractive counterpart of AddSameUnits.
func (q Quantity[M]) SubSameUnits(other Quantity[M]) (Quantity[M], bool) {
	if !q.Units.Equals(other.Units) {
		return Quantity[M]{}, false
	}
	return New(q.Magnitude.Sub(other.Magnitude), q.Units), true
}

// Unitless reports whether the Quantity's literal unit product is
// empty. This is the narrower of the two "no units" properties — see
// spec.md §3/§8: radian is dimensionless but not unitless, because its
// literal product is {radian: 1} even though it reduces to empty.
// Checking whether a Quantity reduces to the empty product (the
// broader "dimensionless" property) requires a registry and lives in
// convert.Dimensionless.
func (q Quantity[M]) Unitless() bool {
	return q.Units.IsEmpty()
}

// Truthy reports the magnitude's truthiness: magnitude != 0.
func (q Quantity[M]) Truthy() bool {
	return !q.Magnitude.IsZero()
}

// Equals compares two Quantities that already share the exact same
// unit product. As with AddSameUnits, cross-unit comparisons need a
// registry and live in convert.Equal.
func (q Quantity[M]) Equals(other Quantity[M]) bool {
	return q.Units.Equals(other.Units) && q.Magnitude.Cmp(other.Magnitude) == 0
}

func (q Quantity[M]) String() string {
	if !q.specified {
		return fmt.Sprintf("<unspecified> %s", q.Units)
	}
	if q.Units.IsEmpty() {
		return fmt.Sprintf("%g", q.Magnitude.Float64())
	}
	return fmt.Sprintf("%g %s", q.Magnitude.Float64(), q.Units)
}
