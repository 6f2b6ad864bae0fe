package formatter

import (
	"testing"

	"github.com/fish2000/pint/quantity"
	"github.com/fish2000/pint/unitproduct"
)

func TestFormatSimpleProduct(t *testing.T) {
	f := New(Default())
	p := unitproduct.Single("meter", 1)
	if got := f.Format(p); got != "meter" {
		t.Errorf("Format(meter) = %q", got)
	}
}

func TestFormatNumeratorAndDenominator(t *testing.T) {
	f := New(Default())
	p := unitproduct.New(map[string]float64{"meter": 1, "second": -1})
	if got := f.Format(p); got != "meter / second" {
		t.Errorf("Format(meter/second) = %q", got)
	}
}

func TestFormatParenthesisesMultiTermDenominator(t *testing.T) {
	f := New(Default())
	p := unitproduct.New(map[string]float64{"meter": 1, "second": -1, "ampere": -1})
	got := f.Format(p)
	want := "meter / (ampere * second)"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatKnownSymbolCollapse(t *testing.T) {
	opts := Default()
	p := unitproduct.New(map[string]float64{"kilogram": 1, "meter": 1, "second": -2})
	opts.KnownSymbols = map[string]string{p.String(): "newton"}
	f := New(opts)
	if got := f.Format(p); got != "newton" {
		t.Errorf("Format with known symbol = %q, want newton", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	f := New(Default())
	q := quantity.New(quantity.Float64(2.54), unitproduct.New(map[string]float64{"centimeter": 1, "second": -1}))
	got := FormatQuantity(f, q)
	want := "2.54 centimeter / second"
	if got != want {
		t.Errorf("FormatQuantity = %q, want %q", got, want)
	}
}

func TestFormatDimensionless(t *testing.T) {
	f := New(Default())
	if got := f.Format(unitproduct.Empty); got != "dimensionless" {
		t.Errorf("Format(Empty) = %q", got)
	}
}
