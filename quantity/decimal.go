package quantity

import "github.com/shopspring/decimal"

// Decimal is a Magnitude implementation backed by
// github.com/shopspring/decimal, for callers that need exact decimal
// arithmetic instead of float64's binary rounding — grounded on
// CalcMark-go-calcmark's use of shopspring/decimal for every
// user-facing numeric quantity in its evaluator.
type Decimal struct {
	D decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal as a Magnitude.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{D: d} }

// DecimalFromFloat constructs a Decimal magnitude from a float64.
func DecimalFromFloat(v float64) Decimal { return Decimal{D: decimal.NewFromFloat(v)} }

func (d Decimal) Add(o Decimal) Decimal { return Decimal{d.D.Add(o.D)} }
func (d Decimal) Sub(o Decimal) Decimal { return Decimal{d.D.Sub(o.D)} }
func (d Decimal) Mul(o Decimal) Decimal { return Decimal{d.D.Mul(o.D)} }

func (d Decimal) Div(o Decimal) Decimal {
	return Decimal{d.D.DivRound(o.D, 34)}
}

func (d Decimal) Pow(exp float64) Decimal {
	return Decimal{d.D.Pow(decimal.NewFromFloat(exp))}
}

func (d Decimal) Neg() Decimal   { return Decimal{d.D.Neg()} }
func (d Decimal) Abs() Decimal   { return Decimal{d.D.Abs()} }
func (d Decimal) Round() Decimal { return Decimal{d.D.Round(0)} }
func (d Decimal) Floor() Decimal { return Decimal{d.D.Floor()} }

func (d Decimal) Cmp(o Decimal) int { return d.D.Cmp(o.D) }
func (d Decimal) IsZero() bool      { return d.D.IsZero() }

func (d Decimal) Scale(factor float64) Decimal {
	return Decimal{d.D.Mul(decimal.NewFromFloat(factor))}
}

func (d Decimal) Offset(delta float64) Decimal {
	return Decimal{d.D.Add(decimal.NewFromFloat(delta))}
}

func (d Decimal) Float64() float64 {
	f, _ := d.D.Float64()
	return f
}

func (d Decimal) String() string { return d.D.String() }
