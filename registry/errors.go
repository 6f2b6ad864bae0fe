package registry

import "fmt"

// UndefinedUnitError reports one or more names that did not resolve
// against a Registry, after prefix- and plural-stripping were
// exhausted. Message patterns follow spec.md §6 exactly, including the
// plural form for multi-name failures (e.g. an expression referencing
// two unknown identifiers at once).
type UndefinedUnitError struct {
	Names []string
}

func (e *UndefinedUnitError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("'%s' is not defined in the unit registry.", e.Names[0])
	}
	return fmt.Sprintf("%s are not defined in the unit registry.", quotedTuple(e.Names))
}

func quotedTuple(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}
	s := "("
	for i, q := range quoted {
		if i > 0 {
			s += ", "
		}
		s += q
	}
	return s + ")"
}

// DimensionalityError reports an operation that requires two
// dimensionally compatible unit products, given ones that are not, or
// an affine unit misused in a non-standalone position (§4.6).
type DimensionalityError struct {
	FromUnits, ToUnits string
	FromDim, ToDim     string // optional; empty omits the "(<dim>)" suffix
}

func (e *DimensionalityError) Error() string {
	if e.FromDim == "" && e.ToDim == "" {
		return fmt.Sprintf("Cannot convert from '%s' to '%s'.", e.FromUnits, e.ToUnits)
	}
	return fmt.Sprintf("Cannot convert from '%s' (%s) to '%s' (%s).", e.FromUnits, e.FromDim, e.ToUnits, e.ToDim)
}

// ParseError reports a syntactically invalid unit expression.
type ParseError struct {
	Expr string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse expression '%s': %s", e.Expr, e.Msg)
}

// DefinitionError reports a malformed or inconsistent definition
// encountered while loading a definition source.
type DefinitionError struct {
	Source string
	Line   int
	Name   string
	Msg    string
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s:%d: invalid definition: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: invalid definition for '%s': %s", e.Source, e.Line, e.Name, e.Msg)
}
