package domain

// DefinitionKind classifies a structural definition found in a source file.
type DefinitionKind string

const (
	// KindFunction is a top-level function declaration.
	KindFunction DefinitionKind = "function"
	// KindMethod is a function declaration with a receiver.
	KindMethod DefinitionKind = "method"
	// KindType is a type declaration.
	KindType DefinitionKind = "type"
	// KindValue is a var or const declaration.
	KindValue DefinitionKind = "value"
)

// Definition describes one structural unit of a source file: where it starts,
// where it ends and what it is. It is the currency the registry hands to
// whoever needs to reconcile running code with its textual origin.
type Definition struct {
	// Kind is the definition's structural category.
	Kind DefinitionKind

	// Name is the definition's qualified name within its file,
	// e.g. "Parse" or "(*Loader).Resolve".
	Name string

	// Path is the file the definition lives in.
	Path string

	// StartLine and EndLine delimit the definition's source span, inclusive,
	// 1-based. StartLine is the declaration line, not its doc comment.
	StartLine int
	EndLine   int
}

// Contains reports whether the given line falls inside the definition's span.
func (d *Definition) Contains(line int) bool {
	return line >= d.StartLine && line <= d.EndLine
}
