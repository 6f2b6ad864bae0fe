// Package quantity provides the Quantity type: a magnitude paired with
// a unitproduct.Product, generic over the numeric capability set a
// magnitude needs (add, sub, mul, div, pow, compare, abs, round).
package quantity

// Magnitude is the capability set a numeric type must provide to back
// a Quantity. M is the concrete magnitude type itself (the
// self-referencing constraint lets methods return the same concrete
// type rather than an interface).
//
// Scale and Offset take a plain float64 rather than M because they are
// always driven by registry-computed scale factors and affine offsets,
// which are host doubles regardless of which magnitude type the
// Quantity carries (see convert.ToReference).
type Magnitude[M any] interface {
	Add(M) M
	Sub(M) M
	Mul(M) M
	Div(M) M
	Pow(exp float64) M
	Neg() M
	Abs() M
	Round() M
	Floor() M
	Cmp(M) int
	IsZero() bool
	Scale(factor float64) M
	Offset(delta float64) M
	Float64() float64
}
