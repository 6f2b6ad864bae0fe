package registry

import "strings"

// pluralCandidates returns, in try-order, the singular spellings a
// plural-looking name s might de-inflect to: dropping a trailing "s"
// or "es", turning a trailing "ies" into "y", and swapping the
// British "-re" ending for the American "-er" (so "centimetres" tries
// "centimetre" and then "centimeter"). Candidates are deduplicated but
// not validated against the Registry — that is the caller's job
// (resolve step 2, spec.md §4.4).
//
// The alias/plural spellings actually recognized are limited to what
// the bundled default definitions and original_source/tests/test_pint.py
// exercise (spec.md §9 leaves the general rule an open question; this
// is the resolved decision, recorded in DESIGN.md).
func pluralCandidates(s string) []string {
	var candidates []string
	add := func(c string) {
		if c == "" {
			return
		}
		for _, existing := range candidates {
			if existing == c {
				return
			}
		}
		candidates = append(candidates, c)
	}

	if strings.HasSuffix(s, "ies") {
		add(s[:len(s)-3] + "y")
	}
	if strings.HasSuffix(s, "es") {
		add(s[:len(s)-2])
	}
	if strings.HasSuffix(s, "s") {
		add(s[:len(s)-1])
	}

	base := append([]string(nil), candidates...)
	for _, c := range base {
		if swapped, ok := swapReEr(c); ok {
			add(swapped)
		}
	}
	if swapped, ok := swapReEr(s); ok {
		add(swapped)
	}

	return candidates
}

// swapReEr turns a British "-re" ending into the American "-er"
// ending (metre -> meter), reporting whether the swap applied.
func swapReEr(s string) (string, bool) {
	if strings.HasSuffix(s, "re") && len(s) > 2 {
		return s[:len(s)-2] + "er", true
	}
	return "", false
}
