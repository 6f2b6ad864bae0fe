package convert

import (
	"math"
	"testing"

	"github.com/fish2000/pint/quantity"
	"github.com/fish2000/pint/registry"
	"github.com/fish2000/pint/unitproduct"
)

func mustDefault(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault() error = %v", err)
	}
	return r
}

func almostEqual(t *testing.T, got, want, tolerance float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %v, want %v (± %v)", msg, got, want, tolerance)
	}
}

func TestParseThenConvertCentimeterPerSecondToInchPerSecond(t *testing.T) {
	r := mustDefault(t)
	q, err := r.Parse("2.54*centimeter/second")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if q.Magnitude != 2.54 {
		t.Errorf("magnitude = %v, want 2.54", q.Magnitude)
	}

	converted, err := ToString(r, q, "inch/second")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(converted.Magnitude), 1.0, 1e-9, "2.54 cm/s in inch/s")
}

func TestMillimeterEqualsMeter(t *testing.T) {
	r := mustDefault(t)
	mm, err := r.Parse("1000 * millimeter")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	m, err := r.Parse("1 * meter")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	eq, err := Equal(r, mm, m)
	if err != nil {
		t.Fatalf("Equal error = %v", err)
	}
	if !eq {
		t.Error("1000 millimeter should equal 1 meter")
	}
}

func TestMillimeterPerMinuteEqualsMillimeterPerSecondScaled(t *testing.T) {
	r := mustDefault(t)
	a, err := r.Parse("1000 * millimeter / minute")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	b, err := r.Parse("16.666666666666668 * millimeter / second")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	eq, err := Equal(r, a, b)
	if err != nil {
		t.Fatalf("Equal error = %v", err)
	}
	if !eq {
		t.Error("1000 millimeter/minute should equal 1000/60 millimeter/second")
	}
}

func TestAffineTemperatureConversions(t *testing.T) {
	r := mustDefault(t)

	zeroC, _ := r.Parse("0 * degC")
	k, err := ToString(r, zeroC, "kelvin")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(k.Magnitude), 273.15, 1e-9, "0 degC in kelvin")

	f32, _ := r.Parse("32 * degF")
	c, err := ToString(r, f32, "degC")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(c.Magnitude), 0, 1e-9, "32 degF in degC")

	c100, _ := r.Parse("100 * degC")
	f, err := ToString(r, c100, "degF")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(f.Magnitude), 212, 1e-9, "100 degC in degF")
}

func TestDegreeToRadianAndDimensionlessNotUnitless(t *testing.T) {
	r := mustDefault(t)

	deg360, _ := r.Parse("360 * degree")
	rad, err := ToString(r, deg360, "radian")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(rad.Magnitude), 2*math.Pi, 1e-9, "360 degree in radian")

	oneRad, _ := r.Parse("1 * radian")
	dimless, err := Dimensionless(r, oneRad)
	if err != nil {
		t.Fatalf("Dimensionless error = %v", err)
	}
	if !dimless {
		t.Error("radian should be dimensionless")
	}
	if oneRad.Unitless() {
		t.Error("radian should not be unitless (its literal product is not empty)")
	}
}

func TestAddingDifferentLengthUnits(t *testing.T) {
	r := mustDefault(t)

	oneCm, _ := r.Parse("1 * centimeter")
	oneIn, _ := r.Parse("1 * inch")

	sum, err := Add(r, oneCm, oneIn)
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}
	almostEqual(t, float64(sum.Magnitude), 3.54, 1e-9, "1 cm + 1 in, in centimeter")

	sum2, err := Add(r, oneIn, oneCm)
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}
	almostEqual(t, float64(sum2.Magnitude), 1+1/2.54, 1e-9, "1 in + 1 cm, in inch")
}

func TestAddMismatchedDimensionsFails(t *testing.T) {
	r := mustDefault(t)
	meters, _ := r.Parse("1 * meter")
	seconds, _ := r.Parse("1 * second")
	if _, err := Add(r, meters, seconds); err == nil {
		t.Fatal("expected a dimensionality error adding meter and second")
	}
}

func TestAddInPlacePreservesIdentityAndLeavesRightUntouched(t *testing.T) {
	r := mustDefault(t)
	a, _ := r.Parse("1 * centimeter")
	b, _ := r.Parse("1 * inch")
	bBefore := b

	if err := AddInPlace(r, &a, b); err != nil {
		t.Fatalf("AddInPlace error = %v", err)
	}
	almostEqual(t, float64(a.Magnitude), 3.54, 1e-9, "in-place 1 cm + 1 in")
	if b.Magnitude != bBefore.Magnitude || !b.Units.Equals(bBefore.Units) {
		t.Error("right operand must be unchanged by AddInPlace")
	}
}

func TestConvertRoundTripForNonAffineUnits(t *testing.T) {
	r := mustDefault(t)
	q, err := r.Parse("5 * inch / second")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	converted, err := ToString(r, q, "centimeter/second")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	back, err := ToString(r, converted, "inch/second")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, float64(back.Magnitude), float64(q.Magnitude), 1e-9, "round trip inch/second -> centimeter/second -> inch/second")
}

// TestDecimalConvertCentimeterPerSecondToInchPerSecond exercises the
// generic conversion path on the quantity.Decimal instantiation
// instead of quantity.Float64, proving To/ToReference reduce and
// convert identically regardless of which Magnitude backs the
// Quantity (spec.md §4.2).
func TestDecimalConvertCentimeterPerSecondToInchPerSecond(t *testing.T) {
	r := mustDefault(t)
	q := quantity.New(quantity.DecimalFromFloat(2.54), unitproduct.New(map[string]float64{"centimeter": 1, "second": -1}))

	converted, err := ToString(r, q, "inch/second")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, converted.Magnitude.Float64(), 1.0, 1e-9, "2.54 cm/s in inch/s (decimal)")
}

// TestDecimalAffineTemperatureConversions runs the degC<->degF/kelvin
// affine path (the branch of To/ToReference that needs both Offset
// and Scale) through quantity.Decimal.
func TestDecimalAffineTemperatureConversions(t *testing.T) {
	r := mustDefault(t)

	zeroC := quantity.New(quantity.DecimalFromFloat(0), unitproduct.Single("degC", 1))
	k, err := ToString(r, zeroC, "kelvin")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, k.Magnitude.Float64(), 273.15, 1e-9, "0 degC in kelvin (decimal)")

	c100 := quantity.New(quantity.DecimalFromFloat(100), unitproduct.Single("degC", 1))
	f, err := ToString(r, c100, "degF")
	if err != nil {
		t.Fatalf("ToString error = %v", err)
	}
	almostEqual(t, f.Magnitude.Float64(), 212, 1e-9, "100 degC in degF (decimal)")

	ref, err := ToReference(r, c100)
	if err != nil {
		t.Fatalf("ToReference error = %v", err)
	}
	almostEqual(t, ref.Magnitude.Float64(), 373.15, 1e-9, "100 degC to reference (kelvin, decimal)")
}

func TestCastFloat64RequiresDimensionless(t *testing.T) {
	r := mustDefault(t)
	meters, _ := r.Parse("1 * meter")
	if _, err := CastFloat64(r, meters); err == nil {
		t.Fatal("expected a dimensionality error casting meter to float64")
	}

	scalar := quantity.New(quantity.Float64(42), meters.Units.Div(meters.Units))
	v, err := CastFloat64(r, scalar)
	if err != nil {
		t.Fatalf("CastFloat64 error = %v", err)
	}
	if v != 42 {
		t.Errorf("v = %v, want 42", v)
	}
}
