// Package exprparser tokenizes and evaluates a units expression
// ("2.54 * centimeter / second") into a Value, without depending on
// any particular unit registry. It is grounded on the teacher's
// token.go/tokenizer.go/ast.go/parser.go quartet (gurre-si), and keeps
// that package's decoupling trick: evaluation runs against a Resolver
// interface, not a concrete registry, so registry can depend on
// exprparser without exprparser depending back on registry.
package exprparser

import (
	"fmt"
	"math"

	"github.com/fish2000/pint/unitproduct"
)

// Value is the result of evaluating an expression: a plain scalar
// factor paired with a unit product. It is deliberately not a
// quantity.Quantity[M] — expression evaluation has no opinion on
// magnitude type; callers (registry) lift a Value into whichever
// Quantity[M] they need.
type Value struct {
	Factor float64
	Units  unitproduct.Product
}

func scalar(f float64) Value { return Value{Factor: f, Units: unitproduct.Empty} }

func (v Value) mul(o Value) Value {
	return Value{Factor: v.Factor * o.Factor, Units: v.Units.Mul(o.Units)}
}

func (v Value) div(o Value) Value {
	return Value{Factor: v.Factor / o.Factor, Units: v.Units.Div(o.Units)}
}

func (v Value) pow(n float64) Value {
	return Value{Factor: math.Pow(v.Factor, n), Units: v.Units.Pow(n)}
}

// Resolver resolves a bare identifier to its scalar factor (relative
// to base units) and its unit product. Registry is the sole
// implementer in this module.
type Resolver interface {
	Resolve(name string) (factor float64, units unitproduct.Product, err error)
}

// Node is one AST node, evaluated bottom-up against a Resolver.
type Node interface {
	Eval(r Resolver) (Value, error)
	String() string
}

// IdentNode is a bare unit name.
type IdentNode struct {
	Name string
}

func (n *IdentNode) Eval(r Resolver) (Value, error) {
	factor, units, err := r.Resolve(n.Name)
	if err != nil {
		return Value{}, err
	}
	return Value{Factor: factor, Units: units}, nil
}

func (n *IdentNode) String() string { return n.Name }

// NumberNode is a dimensionless numeric literal.
type NumberNode struct {
	Value float64
}

func (n *NumberNode) Eval(Resolver) (Value, error) { return scalar(n.Value), nil }
func (n *NumberNode) String() string               { return fmt.Sprintf("%g", n.Value) }

// BinaryNode is a '*' or '/' combination of two subexpressions.
type BinaryNode struct {
	Op    Kind
	Left  Node
	Right Node
}

func (n *BinaryNode) Eval(r Resolver) (Value, error) {
	left, err := n.Left.Eval(r)
	if err != nil {
		return Value{}, err
	}
	right, err := n.Right.Eval(r)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case Multiply:
		return left.mul(right), nil
	case Divide:
		return left.div(right), nil
	default:
		return Value{}, fmt.Errorf("unsupported binary operator %s", n.Op)
	}
}

func (n *BinaryNode) String() string {
	op := "*"
	if n.Op == Divide {
		op = "/"
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, op, n.Right)
}

// PowerNode raises Base to a (possibly non-integer, possibly
// negative) exponent.
type PowerNode struct {
	Base Node
	Exp  float64
}

func (n *PowerNode) Eval(r Resolver) (Value, error) {
	base, err := n.Base.Eval(r)
	if err != nil {
		return Value{}, err
	}
	return base.pow(n.Exp), nil
}

func (n *PowerNode) String() string { return fmt.Sprintf("%s^%g", n.Base, n.Exp) }

// GroupNode is a parenthesised subexpression.
type GroupNode struct {
	Inner Node
}

func (n *GroupNode) Eval(r Resolver) (Value, error) { return n.Inner.Eval(r) }
func (n *GroupNode) String() string                 { return fmt.Sprintf("(%s)", n.Inner) }
