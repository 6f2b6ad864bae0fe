package definitions

import _ "embed"

// DefaultEnglish is the bundled definition set, analogous to pint's
// own default_en.txt. registry.NewDefault loads it so callers
// get a usable set of units without supplying their own file.
//
//go:embed default_en.txt
var DefaultEnglish string
