package policy

import "github.com/typegate-dev/typegate/domain/entities"

// hasDisallowedExtensions reports whether any static-typing directive on
// the declaration lists an extension outside the allowed set. A declaration
// without the directive, or a directive with no extension arguments, never
// triggers. Every static directive on the declaration is inspected; one
// failing is enough. A nil extension list reads as "no extensions" rather
// than failing the pass.
func hasDisallowedExtensions(decl *entities.Declaration, allowed []string) bool {
	for _, ann := range decl.AnnotationsNamed(entities.DirectiveStatic) {
		for _, ext := range ann.Extensions {
			if !containsString(allowed, ext) {
				return true
			}
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
