package quantity

import (
	"testing"

	"github.com/fish2000/pint/unitproduct"
)

func TestArithmeticNonMutating(t *testing.T) {
	a := New(Float64(2), unitproduct.Single("meter", 1))
	b := New(Float64(3), unitproduct.Single("second", 1))

	c := a.Mul(b)

	if a.Magnitude != 2 {
		t.Errorf("a mutated: magnitude = %v", a.Magnitude)
	}
	if b.Magnitude != 3 {
		t.Errorf("b mutated: magnitude = %v", b.Magnitude)
	}
	if c.Magnitude != 6 {
		t.Errorf("c magnitude = %v, want 6", c.Magnitude)
	}
	want := unitproduct.New(map[string]float64{"meter": 1, "second": 1})
	if !c.Units.Equals(want) {
		t.Errorf("c units = %v, want %v", c.Units, want)
	}
}

func TestPowRequiresDimensionlessExponentAtCallSite(t *testing.T) {
	// Pow itself just forwards n; callers are responsible for ensuring
	// n came from a dimensionless Quantity (nothing in this module
	// checks it).
	a := New(Float64(2), unitproduct.Single("meter", 1))
	got := a.Pow(3)
	if got.Magnitude != 8 {
		t.Errorf("magnitude = %v, want 8", got.Magnitude)
	}
	if got.Units.Exponent("meter") != 3 {
		t.Errorf("exponent = %v, want 3", got.Units.Exponent("meter"))
	}
}

func TestFloorDiv(t *testing.T) {
	a := New(Float64(7), unitproduct.Single("meter", 1))
	b := New(Float64(2), unitproduct.Single("second", 1))

	got := a.FloorDiv(b)
	if got.Magnitude != 3 {
		t.Errorf("magnitude = %v, want floor(7/2) = 3", got.Magnitude)
	}
	want := unitproduct.New(map[string]float64{"meter": 1, "second": -1})
	if !got.Units.Equals(want) {
		t.Errorf("units = %v, want %v", got.Units, want)
	}

	neg := New(Float64(-7), unitproduct.Single("meter", 1))
	gotNeg := neg.FloorDiv(b)
	if gotNeg.Magnitude != -4 {
		t.Errorf("magnitude = %v, want floor(-7/2) = -4", gotNeg.Magnitude)
	}
}

func TestUnitlessVsEmpty(t *testing.T) {
	radian := New(Float64(1), unitproduct.Single("radian", 1))
	if radian.Unitless() {
		t.Error("radian's literal product is not empty, so it should not be unitless")
	}

	scalar := New(Float64(1), unitproduct.Empty)
	if !scalar.Unitless() {
		t.Error("a bare scalar should be unitless")
	}
}

func TestTruthy(t *testing.T) {
	zero := New(Float64(0), unitproduct.Single("meter", 1))
	nonzero := New(Float64(1), unitproduct.Single("meter", 1))
	if zero.Truthy() {
		t.Error("zero magnitude should not be truthy")
	}
	if !nonzero.Truthy() {
		t.Error("non-zero magnitude should be truthy")
	}
}

func TestAddSameUnitsRejectsMismatch(t *testing.T) {
	meters := New(Float64(1), unitproduct.Single("meter", 1))
	seconds := New(Float64(1), unitproduct.Single("second", 1))
	if _, ok := meters.AddSameUnits(seconds); ok {
		t.Error("expected AddSameUnits to reject differing units")
	}
}

func TestUnspecifiedMagnitude(t *testing.T) {
	q := Unspecified[Float64](unitproduct.Single("meter", 1))
	if q.HasMagnitude() {
		t.Error("expected HasMagnitude() == false")
	}
}
