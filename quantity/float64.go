package quantity

import "math"

// Float64 is the default Magnitude implementation: a thin wrapper
// around the host's double-precision real, matching spec.md's
// "out-of-the-box implementation for double precision".
type Float64 float64

func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }

func (f Float64) Pow(exp float64) Float64 {
	return Float64(math.Pow(float64(f), exp))
}

func (f Float64) Neg() Float64   { return -f }
func (f Float64) Abs() Float64   { return Float64(math.Abs(float64(f))) }
func (f Float64) Round() Float64 { return Float64(math.Round(float64(f))) }
func (f Float64) Floor() Float64 { return Float64(math.Floor(float64(f))) }

func (f Float64) Cmp(o Float64) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

func (f Float64) IsZero() bool { return f == 0 }

func (f Float64) Scale(factor float64) Float64 {
	return Float64(float64(f) * factor)
}

func (f Float64) Offset(delta float64) Float64 {
	return Float64(float64(f) + delta)
}

func (f Float64) Float64() float64 { return float64(f) }
