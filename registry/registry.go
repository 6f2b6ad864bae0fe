// Package registry holds base units, derived units, and prefixes, and
// answers "given this spelling, what canonical unit (with what
// prefactor)?" (spec.md §4.4). It is the sole implementer of
// exprparser.Resolver, which keeps exprparser decoupled from any
// concrete registry implementation — grounded on the teacher's own
// Context/StandardContext split (gurre-si/ast.go, gurre-si/context.go).
package registry

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/fish2000/pint/definitions"
	"github.com/fish2000/pint/exprparser"
	"github.com/fish2000/pint/quantity"
	"github.com/fish2000/pint/unitproduct"
)

// Registry is built once from definition sources at startup, then
// effectively read-only: the only write after construction is the
// memoisation of prefixed canonical names, which goes through
// prefixedCache (a sync.Map) rather than the plain maps below, so
// concurrent readers need no locking (spec.md §5).
type Registry struct {
	units   map[string]*UnitDefinition
	aliases map[string]string

	prefixes    map[string]*PrefixDefinition
	prefixOrder []string // longest first; equal-length prefixes keep definition order

	prefixedCache sync.Map // prefixed canonical name -> *UnitDefinition

	definitionFiles []string
}

// New returns an empty Registry with no units loaded.
func New() *Registry {
	return &Registry{
		units:    make(map[string]*UnitDefinition),
		aliases:  make(map[string]string),
		prefixes: make(map[string]*PrefixDefinition),
	}
}

// NewDefault returns a Registry pre-loaded with the bundled default
// definitions (definitions.DefaultEnglish), analogous to pint's
// `UnitRegistry()` loading its bundled default_en.txt.
func NewDefault() (*Registry, error) {
	r := New()
	if err := r.LoadReader(strings.NewReader(definitions.DefaultEnglish), "default_en.txt"); err != nil {
		return nil, err
	}
	return r, nil
}

// DefinitionFiles returns the ordered list of sources this Registry
// was built from, so callers can replay the round-trip law
// (spec.md §8) per file.
func (r *Registry) DefinitionFiles() []string {
	return append([]string(nil), r.definitionFiles...)
}

// Load appends the definitions found in the file at path.
func (r *Registry) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.LoadReader(f, path)
}

// LoadReader appends the definitions read from r, tagging any errors
// with source. A malformed line is reported and skipped; already
// loaded units remain valid (spec.md §7's per-definition transactional
// granularity).
func (r *Registry) LoadReader(src io.Reader, source string) error {
	reader := definitions.NewReader(src, source)
	var errs []error
	for {
		def, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Str("source", source).Err(err).Msg("skipping malformed definition line")
			errs = append(errs, err)
			continue
		}
		if err := r.loadDefinition(def); err != nil {
			log.Warn().Str("source", source).Str("name", def.Name).Err(err).Msg("skipping invalid definition")
			errs = append(errs, err)
		}
	}
	r.definitionFiles = append(r.definitionFiles, source)
	r.rebuildPrefixOrder()
	return errors.Join(errs...)
}

func (r *Registry) loadDefinition(def definitions.Definition) error {
	if def.IsPrefix {
		return r.loadPrefix(def)
	}

	if _, exists := r.units[def.Name]; exists {
		return &DefinitionError{Source: def.Source, Line: def.Line, Name: def.Name, Msg: "duplicate unit definition"}
	}

	unitDef := &UnitDefinition{
		Name:    def.Name,
		Aliases: def.Aliases,
		IsBase:  def.IsBase,
		Source:  def.Source,
		Line:    def.Line,
	}
	if def.IsBase {
		unitDef.Dimension = def.Value
	} else {
		unitDef.Expr = def.Value
	}
	if offsetStr, ok := def.Modifiers["offset"]; ok {
		offset, err := strconv.ParseFloat(offsetStr, 64)
		if err != nil {
			return &DefinitionError{Source: def.Source, Line: def.Line, Name: def.Name, Msg: fmt.Sprintf("non-numeric offset %q", offsetStr)}
		}
		unitDef.Affine = true
		unitDef.Offset = offset
	}

	r.units[def.Name] = unitDef
	for _, alias := range def.Aliases {
		r.aliases[alias] = def.Name
	}
	return nil
}

func (r *Registry) loadPrefix(def definitions.Definition) error {
	name := strings.TrimSuffix(def.Name, "-")
	factor, err := strconv.ParseFloat(def.Value, 64)
	if err != nil {
		return &DefinitionError{Source: def.Source, Line: def.Line, Name: def.Name, Msg: fmt.Sprintf("non-numeric prefix factor %q", def.Value)}
	}
	if _, exists := r.prefixes[name]; exists {
		return &DefinitionError{Source: def.Source, Line: def.Line, Name: def.Name, Msg: "duplicate prefix definition"}
	}
	r.prefixes[name] = &PrefixDefinition{Name: name, Factor: factor}
	r.prefixOrder = append(r.prefixOrder, name)
	return nil
}

// rebuildPrefixOrder recomputes the longest-prefix-first scan order,
// a stable sort over prefixOrder so equal-length prefixes keep the
// order they were first defined in (spec.md §4.4 tie-break rule).
func (r *Registry) rebuildPrefixOrder() {
	sort.SliceStable(r.prefixOrder, func(i, j int) bool {
		return len(r.prefixOrder[i]) > len(r.prefixOrder[j])
	})
}

// lookupDef finds a UnitDefinition by exact canonical name, whether it
// was loaded directly or synthesised as a prefixed-canonical combo.
func (r *Registry) lookupDef(name string) (*UnitDefinition, bool) {
	if d, ok := r.units[name]; ok {
		return d, true
	}
	if v, ok := r.prefixedCache.Load(name); ok {
		return v.(*UnitDefinition), true
	}
	return nil, false
}

// lookupDirect implements resolve steps 1-2: exact canonical/alias
// match, then plural de-inflection retried against the same match.
func (r *Registry) lookupDirect(s string) (string, bool) {
	if _, ok := r.units[s]; ok {
		return s, true
	}
	if canon, ok := r.aliases[s]; ok {
		return canon, true
	}
	for _, candidate := range pluralCandidates(s) {
		if _, ok := r.units[candidate]; ok {
			return candidate, true
		}
		if canon, ok := r.aliases[candidate]; ok {
			return canon, true
		}
	}
	return "", false
}

// resolveCanonical implements the full 4-step algorithm from
// spec.md §4.4, returning the canonical (possibly prefixed-synthetic)
// name for spelling s. s is first NFC-normalised so that canonically
// equivalent spellings (precomposed vs combining-mark forms) resolve
// identically. NFC does not fold the micro sign (U+00B5) into the
// Greek mu (U+03BC); "µs" and "μs" both resolve only because the
// bundled definitions declare both "µ-" and "μ-" as prefixes.
func (r *Registry) resolveCanonical(rawSpelling string) (string, bool) {
	s := norm.NFC.String(rawSpelling)
	if canon, ok := r.lookupDirect(s); ok {
		return canon, true
	}

	for _, prefixName := range r.prefixOrder {
		if !strings.HasPrefix(s, prefixName) || len(s) <= len(prefixName) {
			continue
		}
		suffix := s[len(prefixName):]
		baseCanon, ok := r.lookupDirect(suffix)
		if !ok {
			continue
		}
		combined := prefixName + baseCanon
		if _, ok := r.lookupDef(combined); ok {
			return combined, true
		}
		if def, ok := r.synthesizePrefixed(prefixName, baseCanon, combined); ok {
			return def.Name, true
		}
	}
	return "", false
}

// synthesizePrefixed builds and memoises the UnitDefinition for a
// prefix+base combination the first time it is resolved (spec.md
// §4.4 step 3), so later lookups and reductions are O(1).
func (r *Registry) synthesizePrefixed(prefixName, baseCanon, combined string) (*UnitDefinition, bool) {
	baseDef, ok := r.lookupDef(baseCanon)
	if !ok {
		return nil, false
	}
	prefix, ok := r.prefixes[prefixName]
	if !ok {
		return nil, false
	}
	baseUnits, baseScale, err := r.reduceUnit(baseDef)
	if err != nil {
		return nil, false
	}

	def := &UnitDefinition{
		Name:   combined,
		Expr:   fmt.Sprintf("%s-%s", prefixName, baseCanon),
		Affine: baseDef.Affine,
		Offset: baseDef.Offset,
	}
	def.reduceOnce.Do(func() {
		def.reducedUnits = baseUnits
		def.reducedScale = prefix.Factor * baseScale
	})

	actual, _ := r.prefixedCache.LoadOrStore(combined, def)
	return actual.(*UnitDefinition), true
}

// Resolve implements exprparser.Resolver: every identifier resolves to
// a literal product of exactly its own (possibly prefixed) canonical
// name, with factor 1 — the scale relative to base units is only
// computed later, lazily, by ReduceUnits.
func (r *Registry) Resolve(name string) (float64, unitproduct.Product, error) {
	canon, ok := r.resolveCanonical(name)
	if !ok {
		return 0, unitproduct.Empty, &UndefinedUnitError{Names: []string{name}}
	}
	return 1, unitproduct.Single(canon, 1), nil
}

// reduceUnit lazily computes def's reduction to base units, caching
// the result on def itself (sync.Once) so repeated reductions of the
// same unit share work — mirrors the registry's own canonical-name
// memoisation, applied to reduction instead of name lookup.
func (r *Registry) reduceUnit(def *UnitDefinition) (unitproduct.Product, float64, error) {
	def.reduceOnce.Do(func() {
		if def.IsBase {
			def.reducedUnits = unitproduct.Single(def.Name, 1)
			def.reducedScale = 1
			return
		}
		val, err := exprparser.Eval(def.Expr, r)
		if err != nil {
			def.reduceErr = fmt.Errorf("reducing '%s': %w", def.Name, err)
			return
		}
		furtherUnits, furtherScale, err := r.ReduceUnits(val.Units)
		if err != nil {
			def.reduceErr = err
			return
		}
		def.reducedUnits = furtherUnits
		def.reducedScale = val.Factor * furtherScale
	})
	return def.reducedUnits, def.reducedScale, def.reduceErr
}

// ReduceUnits recursively rewrites every non-base unit in p by its
// definition until only base dimensions remain, returning the
// resulting product and the accumulated multiplicative scale factor.
// Per spec.md §4.4, an affine unit's own offset is never folded in
// here: an affine unit may only appear alone with exponent +1, and
// reduction returns its multiplicative part only; offset handling
// is left to package convert.
func (r *Registry) ReduceUnits(p unitproduct.Product) (unitproduct.Product, float64, error) {
	names := p.Names()
	for _, name := range names {
		def, ok := r.lookupDef(name)
		if !ok {
			// A prefixed canonical name not yet memoised (e.g. in a
			// Product built directly rather than parsed).
			if _, resolved := r.resolveCanonical(name); resolved {
				def, ok = r.lookupDef(name)
			}
		}
		if !ok {
			return unitproduct.Empty, 0, &UndefinedUnitError{Names: []string{name}}
		}
		if def.Affine && (len(names) != 1 || p.Exponent(name) != 1) {
			return unitproduct.Empty, 0, &DimensionalityError{
				FromUnits: p.String(),
				ToUnits:   "base units",
				FromDim:   "offset-unit not standalone",
				ToDim:     "offset-unit not standalone",
			}
		}
	}

	result := unitproduct.Empty
	scale := 1.0
	for _, name := range names {
		exp := p.Exponent(name)
		def, _ := r.lookupDef(name)
		reduced, unitScale, err := r.reduceUnit(def)
		if err != nil {
			return unitproduct.Empty, 0, err
		}
		result = result.Mul(reduced.Pow(exp))
		scale *= math.Pow(unitScale, exp)
	}
	return result, scale, nil
}

// Parse tokenises and evaluates expr against this Registry, returning
// a Quantity with a plain float64 magnitude (spec.md §4.5's "evaluate
// bottom-up, producing a Quantity"; callers needing a different
// Magnitude re-wrap the result).
func (r *Registry) Parse(expr string) (quantity.Quantity[quantity.Float64], error) {
	val, err := exprparser.Eval(expr, r)
	if err != nil {
		if _, ok := asUndefinedOrDimensionality(err); ok {
			return quantity.Quantity[quantity.Float64]{}, err
		}
		return quantity.Quantity[quantity.Float64]{}, &ParseError{Expr: expr, Msg: err.Error()}
	}
	return quantity.New(quantity.Float64(val.Factor), val.Units), nil
}

// Quantity is the registry-backed convenience Registry.unit(name) from
// spec.md §6: Quantity(1, name).
func (r *Registry) Quantity(name string) (quantity.Quantity[quantity.Float64], error) {
	canon, ok := r.resolveCanonical(name)
	if !ok {
		return quantity.Quantity[quantity.Float64]{}, &UndefinedUnitError{Names: []string{name}}
	}
	return quantity.New(quantity.Float64(1), unitproduct.Single(canon, 1)), nil
}

// Dimension returns the bracketed tag of a base unit's definition, or
// ("", false) if name is not a base unit of this Registry.
func (r *Registry) Dimension(name string) (string, bool) {
	def, ok := r.lookupDef(name)
	if !ok || !def.IsBase {
		return "", false
	}
	return def.Dimension, true
}

// AffineOffset reports a unit's affine offset, if it has one.
func (r *Registry) AffineOffset(name string) (float64, bool) {
	def, ok := r.lookupDef(name)
	if !ok || !def.Affine {
		return 0, false
	}
	return def.Offset, true
}

func asUndefinedOrDimensionality(err error) (error, bool) {
	var undef *UndefinedUnitError
	if errors.As(err, &undef) {
		return undef, true
	}
	var dim *DimensionalityError
	if errors.As(err, &dim) {
		return dim, true
	}
	return nil, false
}
