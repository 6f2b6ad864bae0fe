// Package convert implements the free-function conversion surface of
// spec.md §4.6: to_reference/to plus the cross-unit arithmetic that
// needs a Registry (same-unit arithmetic lives directly on
// quantity.Quantity). Kept as functions over *registry.Registry and
// quantity.Quantity[M], not methods on Quantity, so that package
// quantity stays decoupled from registry — mirroring the teacher's own
// separation of Unit arithmetic (si.go) from Context.Resolve
// (context.go).
package convert

import (
	"github.com/fish2000/pint/quantity"
	"github.com/fish2000/pint/registry"
	"github.com/fish2000/pint/unitproduct"
)

// singleAffineAt reports the affine offset of units, if units is
// exactly one unit name at exponent +1 and that unit is affine.
// Mixing an affine unit with anything else is rejected earlier, by
// Registry.ReduceUnits.
func singleAffineAt(r *registry.Registry, units unitproduct.Product) (offset float64, ok bool) {
	names := units.Names()
	if len(names) != 1 || units.Exponent(names[0]) != 1 {
		return 0, false
	}
	return r.AffineOffset(names[0])
}

// ToReference reduces q's units to base-unit form (spec.md §4.6). A
// non-affine quantity's magnitude is simply rescaled; a standalone
// affine quantity (e.g. a bare degC) uses its offset-to-base formula
// instead. An unspecified-magnitude Quantity stays unspecified.
func ToReference[M quantity.Magnitude[M]](r *registry.Registry, q quantity.Quantity[M]) (quantity.Quantity[M], error) {
	reducedUnits, scale, err := r.ReduceUnits(q.Units)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	if !q.HasMagnitude() {
		return quantity.Unspecified[M](reducedUnits), nil
	}

	if offset, ok := singleAffineAt(r, q.Units); ok {
		m := q.Magnitude.Offset(-offset).Scale(scale)
		return quantity.New(m, reducedUnits), nil
	}
	return quantity.New(q.Magnitude.Scale(scale), reducedUnits), nil
}

// To converts q into targetUnits, requiring the two share the same
// base dimensionality (spec.md §4.6). Affine target units invert
// their offset-to-base formula; otherwise a single scale division
// suffices, matching the "no avoidable rounding" numeric requirement.
func To[M quantity.Magnitude[M]](r *registry.Registry, q quantity.Quantity[M], targetUnits unitproduct.Product) (quantity.Quantity[M], error) {
	qRefUnits, qScale, err := r.ReduceUnits(q.Units)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	targetRefUnits, targetScale, err := r.ReduceUnits(targetUnits)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	if !qRefUnits.Equals(targetRefUnits) {
		return quantity.Quantity[M]{}, &registry.DimensionalityError{
			FromUnits: q.Units.String(),
			ToUnits:   targetUnits.String(),
			FromDim:   qRefUnits.String(),
			ToDim:     targetRefUnits.String(),
		}
	}

	if !q.HasMagnitude() {
		return quantity.Unspecified[M](targetUnits), nil
	}

	qOffset, qAffine := singleAffineAt(r, q.Units)
	targetOffset, targetAffine := singleAffineAt(r, targetUnits)

	if !qAffine && !targetAffine {
		return quantity.New(q.Magnitude.Scale(qScale/targetScale), targetUnits), nil
	}

	ref := q.Magnitude
	if qAffine {
		ref = ref.Offset(-qOffset).Scale(qScale)
	} else {
		ref = ref.Scale(qScale)
	}

	result := ref.Scale(1 / targetScale)
	if targetAffine {
		result = result.Offset(targetOffset)
	}
	return quantity.New(result, targetUnits), nil
}

// ToString converts q to the units named by targetExpr, parsed
// against r (e.g. "inch/second").
func ToString[M quantity.Magnitude[M]](r *registry.Registry, q quantity.Quantity[M], targetExpr string) (quantity.Quantity[M], error) {
	target, err := r.Parse(targetExpr)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	return To(r, q, target.Units)
}

// Dimensionless reports whether q reduces to the empty product via r
// — the broader of the two "no units" properties (see
// quantity.Quantity.Unitless for the narrower, registry-free one).
func Dimensionless[M quantity.Magnitude[M]](r *registry.Registry, q quantity.Quantity[M]) (bool, error) {
	reduced, _, err := r.ReduceUnits(q.Units)
	if err != nil {
		return false, err
	}
	return reduced.IsEmpty(), nil
}

// Add converts b into a's units and adds; a bare scalar may only
// combine with a dimensionless Quantity (spec.md §4.2).
func Add[M quantity.Magnitude[M]](r *registry.Registry, a, b quantity.Quantity[M]) (quantity.Quantity[M], error) {
	bInA, err := To(r, b, a.Units)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	result, ok := a.AddSameUnits(bInA)
	if !ok {
		return quantity.Quantity[M]{}, &registry.DimensionalityError{FromUnits: a.Units.String(), ToUnits: b.Units.String()}
	}
	return result, nil
}

// Sub is the subtractive counterpart of Add.
func Sub[M quantity.Magnitude[M]](r *registry.Registry, a, b quantity.Quantity[M]) (quantity.Quantity[M], error) {
	bInA, err := To(r, b, a.Units)
	if err != nil {
		return quantity.Quantity[M]{}, err
	}
	result, ok := a.SubSameUnits(bInA)
	if !ok {
		return quantity.Quantity[M]{}, &registry.DimensionalityError{FromUnits: a.Units.String(), ToUnits: b.Units.String()}
	}
	return result, nil
}

// AddInPlace mutates *a to a+b from the caller's point of view: *a's
// identity is preserved (same pointer), b is untouched, and the
// logical result matches Add (spec.md §4.2's in-place operator
// contract).
func AddInPlace[M quantity.Magnitude[M]](r *registry.Registry, a *quantity.Quantity[M], b quantity.Quantity[M]) error {
	result, err := Add(r, *a, b)
	if err != nil {
		return err
	}
	*a = result
	return nil
}

// SubInPlace is the subtractive counterpart of AddInPlace.
func SubInPlace[M quantity.Magnitude[M]](r *registry.Registry, a *quantity.Quantity[M], b quantity.Quantity[M]) error {
	result, err := Sub(r, *a, b)
	if err != nil {
		return err
	}
	*a = result
	return nil
}

// Equal reports whether a and b are numerically equal once b is
// converted into a's units — "0 of one unit equals 0 of any
// dimensionally-equal unit" (spec.md §8 invariant 4).
func Equal[M quantity.Magnitude[M]](r *registry.Registry, a, b quantity.Quantity[M]) (bool, error) {
	bInA, err := To(r, b, a.Units)
	if err != nil {
		return false, err
	}
	return a.Equals(bInA), nil
}

// Compare converts b into a's units and reports -1, 0, or 1 per
// a.Magnitude.Cmp.
func Compare[M quantity.Magnitude[M]](r *registry.Registry, a, b quantity.Quantity[M]) (int, error) {
	bInA, err := To(r, b, a.Units)
	if err != nil {
		return 0, err
	}
	return a.Magnitude.Cmp(bInA.Magnitude), nil
}

// CastFloat64 extracts q's magnitude as a float64, permitted only if
// q is dimensionless (spec.md §4.2's cast rule).
func CastFloat64[M quantity.Magnitude[M]](r *registry.Registry, q quantity.Quantity[M]) (float64, error) {
	dimless, err := Dimensionless(r, q)
	if err != nil {
		return 0, err
	}
	if !dimless {
		return 0, &registry.DimensionalityError{FromUnits: q.Units.String(), ToUnits: "dimensionless"}
	}
	return q.Magnitude.Float64(), nil
}
