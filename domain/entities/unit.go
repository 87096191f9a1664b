package entities

// CompilationUnit is one unit handed to the engine by the host pipeline:
// a unit name plus its top-level classes in source order. Nested classes,
// closures and anonymous types are expected to be flattened into the
// top-level list by the tree producer.
type CompilationUnit struct {
	Name    string
	Classes []*Declaration
}
