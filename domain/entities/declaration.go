// Package entities provides the core domain entities for the engine.
// These are the tree shapes the policy engine walks; producing them from
// source text is the host compiler's job.
package entities

// DeclarationKind identifies the kind of node in the declaration tree.
type DeclarationKind int

const (
	KindClass DeclarationKind = iota
	KindField
	KindMethod
	KindParameter
)

// String returns the lowercase kind name used in diagnostics.
func (k DeclarationKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindParameter:
		return "parameter"
	}
	return "unknown"
}

// Directive names recognized on declarations.
const (
	// DirectiveStatic requests static compilation. Its presence also marks
	// a declaration as already statically typed.
	DirectiveStatic = "staticCompile"

	// DirectiveDynamic marks a declaration as explicitly dynamic; injection
	// must never override it.
	DirectiveDynamic = "dynamicCompile"
)

// Annotation is a directive attached to a declaration: a name plus an
// optional list of string-valued extension arguments. A nil extension list
// is treated as empty everywhere.
type Annotation struct {
	Name       string
	Extensions []string
}

// MarkerKind classifies a declaration's compile-mode markers.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerStatic
	MarkerDynamic
)

// Declaration is a node in the syntax tree: a class, field, method or
// parameter. A class owns its fields and methods; a method owns its
// parameters. The engine mutates declarations only by adding annotations.
type Declaration struct {
	Kind        DeclarationKind
	Name        string // fully qualified
	Package     string // empty for the default package
	Annotations []Annotation

	// Untyped is set when a field or parameter has no explicit type, or a
	// method has an untyped return.
	Untyped bool

	Fields  []*Declaration
	Methods []*Declaration
	Params  []*Declaration
}

// Marker classifies the declaration's compile-mode markers. When both the
// static and the dynamic directive are present, the dynamic one wins: it is
// the stronger statement of intent and must not be overridden.
func (d *Declaration) Marker() MarkerKind {
	marker := MarkerNone
	for _, a := range d.Annotations {
		switch a.Name {
		case DirectiveDynamic:
			return MarkerDynamic
		case DirectiveStatic:
			marker = MarkerStatic
		}
	}
	return marker
}

// HasAnnotation reports whether an annotation with the given name is present.
func (d *Declaration) HasAnnotation(name string) bool {
	for _, a := range d.Annotations {
		if a.Name == name {
			return true
		}
	}
	return false
}

// AnnotationsNamed returns all annotations with the given name, in
// declaration order.
func (d *Declaration) AnnotationsNamed(name string) []Annotation {
	var out []Annotation
	for _, a := range d.Annotations {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}

// AddAnnotation appends an annotation to the declaration.
func (d *Declaration) AddAnnotation(a Annotation) {
	d.Annotations = append(d.Annotations, a)
}
