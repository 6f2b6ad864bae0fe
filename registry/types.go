package registry

import (
	"sync"

	"github.com/fish2000/pint/unitproduct"
)

// UnitDefinition is everything the Registry knows about one canonical
// unit name: how it reduces to base units (or that it is itself a
// base unit), its aliases, and its affine modifier if it is a
// temperature-like scale.
type UnitDefinition struct {
	Name    string
	Aliases []string

	// IsBase marks a unit declared with a bracketed dimension tag
	// (e.g. "meter = [length]"); Dimension holds that tag verbatim.
	IsBase    bool
	Dimension string

	// Expr is the raw right-hand side for a derived unit (e.g.
	// "0.0254 * meter"); empty for base units.
	Expr string

	// Affine units carry a non-zero Offset: reference = Scale*(local -
	// Offset)... see convert.ToReference for the exact formula. Scale
	// is this unit's own multiplicative factor (the non-affine part of
	// Expr), resolved once and cached below.
	Affine bool
	Offset float64

	Source string
	Line   int

	reduceOnce   sync.Once
	reducedUnits unitproduct.Product
	reducedScale float64
	reduceErr    error
}

// PrefixDefinition is a name-factor pair applied by concatenation
// ("kilo-" + "meter" -> "kilometer", factor 1000).
type PrefixDefinition struct {
	Name   string
	Factor float64
}
