package policy

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Units recognized as script bodies, embedded-script wrappers or
// template-generated scripts are skipped before any walking begins: no
// injection, no enforcement, no configuration touch.
var defaultExcludedUnitPatterns = []string{
	"script*",
	"*_script",
	"embedded_*",
	"*_template",
	"gsp_*",
}

// excludedUnit reports whether the unit name matches any exclusion
// pattern. Matching is case-insensitive; patterns use doublestar glob
// syntax.
func excludedUnit(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, lower); err == nil && ok {
			return true
		}
	}
	return false
}
