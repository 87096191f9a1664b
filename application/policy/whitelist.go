package policy

import "strings"

// Whitelisted reports whether the qualified name contains any whitelist
// entry as a substring. Substring matching, not exact or prefix, is the
// documented contract: whitelisting "Foo" also exempts "FooBar" and
// "NotFoo". Empty entries never match.
func Whitelisted(name string, whitelist []string) bool {
	for _, entry := range whitelist {
		if entry != "" && strings.Contains(name, entry) {
			return true
		}
	}
	return false
}
