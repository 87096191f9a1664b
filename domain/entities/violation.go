package entities

import (
	"fmt"
	"strings"
)

// ViolationKind identifies a policy violation.
type ViolationKind int

const (
	DynamicCompileDisallowed ViolationKind = iota
	ExtensionsLimited
	UntypedNotAllowed
)

// Violation is a single policy breach tied to the offending declaration.
// Violations are transient: produced, reported through the diagnostics
// sink, never stored by the engine.
type Violation struct {
	Kind ViolationKind
	Decl *Declaration

	// Allowed is the permitted extension set, set for ExtensionsLimited.
	Allowed []string
}

// Message renders the human-readable diagnostic text for the violation.
func (v Violation) Message() string {
	switch v.Kind {
	case DynamicCompileDisallowed:
		return fmt.Sprintf("dynamic compilation is disabled for %s %s", v.Decl.Kind, v.Decl.Name)
	case ExtensionsLimited:
		return fmt.Sprintf("%s %s uses a type-checking extension outside the allowed set [%s]",
			v.Decl.Kind, v.Decl.Name, strings.Join(v.Allowed, ", "))
	case UntypedNotAllowed:
		return fmt.Sprintf("untyped %s declarations are not allowed: %s", v.Decl.Kind, v.Decl.Name)
	}
	return fmt.Sprintf("policy violation on %s", v.Decl.Name)
}
