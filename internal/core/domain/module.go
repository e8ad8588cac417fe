package domain

// ModuleSpec is the outcome of a module-resolution attempt: which module we
// were looking for and which file would back it. A resolution strategy that
// has no opinion returns nil instead of a spec.
type ModuleSpec struct {
	// Name is the module's import name, e.g. "app.handlers".
	Name string

	// Origin is the absolute path of the file that backs the module.
	Origin string

	// SourceBacked reports whether Origin is readable source text, as
	// opposed to a precompiled artifact. Only source-backed modules can be
	// snapshotted and tracked.
	SourceBacked bool
}

// Callable is a live, invocable unit of code carried by a loaded module. The
// registry uses it to walk back from running code to the definition it came
// from; the (file, line) pair returned by Origin is the bridge between the
// two.
type Callable interface {
	// Name is the callable's name within its module.
	Name() string

	// ModuleName is the import name of the module that defined the callable.
	ModuleName() string

	// Origin returns the file path and first line of the callable's
	// definition.
	Origin() (path string, line int)
}
