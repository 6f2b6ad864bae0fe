// Package definitions streams unit definitions out of a textual
// source: one (name, value, aliases, modifiers) tuple per line. It
// performs no semantic validation — that is the Registry's job — it
// is a pure, line-oriented tokeniser, grounded on the line format used
// throughout the retrieved pint tests (original_source) and shaped
// like the teacher's own pull-based Tokenizer (gurre-si/tokenizer.go).
package definitions

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Definition is one parsed line from a definition source.
type Definition struct {
	// Name is the unit or prefix name as written, including the
	// trailing "-" for prefix lines.
	Name string
	// Value is the raw right-hand side: an expression ("0.0254 *
	// meter"), a bracketed dimension tag ("[length]"), or a bare
	// number for prefix lines ("1000").
	Value string
	// Aliases are additional spellings for Name, in file order.
	Aliases []string
	// Modifiers holds recognized "key: value" pairs found after the
	// value and aliases, notably "offset" for affine units.
	Modifiers map[string]string

	IsBase   bool
	IsPrefix bool

	Source string
	Line   int
}

// Reader streams Definitions from an io.Reader, skipping blank lines
// and '#' comments.
type Reader struct {
	scanner *bufio.Scanner
	source  string
	line    int
}

// NewReader wraps r. source is a human-readable name for the input
// (typically a file path) used in DefinitionError messages.
func NewReader(r io.Reader, source string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), source: source}
}

// Next returns the next Definition, or io.EOF once the source is
// exhausted. A malformed line is returned as a non-nil, non-EOF error;
// callers may call Next again to continue past it.
func (r *Reader) Next() (Definition, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return r.parseLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return Definition{}, fmt.Errorf("%s:%d: %w", r.source, r.line, err)
	}
	return Definition{}, io.EOF
}

// All drains the Reader into a slice, stopping at the first malformed
// line. Use Next directly to skip malformed lines and keep reading.
func (r *Reader) All() ([]Definition, error) {
	var out []Definition
	for {
		def, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, def)
	}
}

func (r *Reader) parseLine(line string) (Definition, error) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return Definition{}, fmt.Errorf("%s:%d: missing '=' in definition line %q", r.source, r.line, line)
	}

	name := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])
	if name == "" {
		return Definition{}, fmt.Errorf("%s:%d: empty name in definition line %q", r.source, r.line, line)
	}
	if rhs == "" {
		return Definition{}, fmt.Errorf("%s:%d: empty value in definition line %q", r.source, r.line, line)
	}

	def := Definition{
		Name:     name,
		Modifiers: map[string]string{},
		IsPrefix: strings.HasSuffix(name, "-"),
		Source:   r.source,
		Line:     r.line,
	}

	parts := splitTopLevelComma(rhs)
	def.Value = strings.TrimSpace(parts[0])
	def.IsBase = strings.Contains(def.Value, "[") && strings.Contains(def.Value, "]")

	if def.IsPrefix {
		if _, err := strconv.ParseFloat(def.Value, 64); err != nil {
			return Definition{}, fmt.Errorf("%s:%d: prefix %q has non-numeric factor %q", r.source, r.line, name, def.Value)
		}
	}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, ok := splitModifier(part); ok {
			def.Modifiers[key] = value
			continue
		}
		def.Aliases = append(def.Aliases, part)
	}

	return def, nil
}

// splitTopLevelComma splits on commas that are not inside parentheses,
// so an expression like "specific_heat = 1 * J/(kg*K), shc" keeps its
// parenthesised denominator intact.
func splitTopLevelComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitModifier reports whether part is a "key: value" modifier, and
// if so, returns the trimmed key and value.
func splitModifier(part string) (key, value string, ok bool) {
	colon := strings.Index(part, ":")
	if colon < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(part[:colon])
	value = strings.TrimSpace(part[colon+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}
