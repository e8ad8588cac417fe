// Package host implements the reference module host: a loader that resolves
// module names to source files through an ordered strategy chain and a table
// of currently loaded modules. Embedders with their own loading pipeline can
// supply any ports.ModuleHost/ports.Resolver instead; the registry only
// depends on those contracts.
package host

import (
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
)

// Module is a loaded source module: its import name, backing file and the
// callables discovered in it.
type Module struct {
	name      string
	path      string
	callables []domain.Callable
	imports   []string
}

var _ ports.Module = (*Module)(nil)

// NewModule assembles a module by hand. Embedders with their own loading
// machinery use it to mirror already-loaded code into a Table.
func NewModule(name, path string, callables ...domain.Callable) *Module {
	return &Module{name: name, path: path, callables: callables}
}

// Name returns the module's import name.
func (m *Module) Name() string { return m.name }

// Path returns the absolute path of the module's backing file.
func (m *Module) Path() string { return m.path }

// Callables returns the live callables defined by the module.
func (m *Module) Callables() []domain.Callable { return m.callables }

// Imports returns the import names of the modules this module depends on,
// restricted to those resolvable by the loader.
func (m *Module) Imports() []string { return m.imports }

// Function is a callable carried by a loaded module. Its origin is the
// (file, line) key the registry uses to reconcile it with source.
type Function struct {
	name   string
	module string
	path   string
	line   int
}

var _ domain.Callable = (*Function)(nil)

// NewFunction creates a callable with an explicit origin.
func NewFunction(name, module, path string, line int) *Function {
	return &Function{name: name, module: module, path: path, line: line}
}

// Name returns the function's name within its module.
func (f *Function) Name() string { return f.name }

// ModuleName returns the import name of the defining module.
func (f *Function) ModuleName() string { return f.module }

// Origin returns the file path and first line of the function's definition.
func (f *Function) Origin() (string, int) { return f.path, f.line }
