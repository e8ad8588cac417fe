// Package ports defines the interfaces between the registry core and the
// host environment it observes. The host supplies the module table and the
// resolution chain; the registry only reads them.
package ports

import "github.com/SummerStorm/jurigged/internal/core/domain"

// Module is a loaded unit of code as the host sees it: a name, the file that
// backs it and the callables it carries.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Module interface {
	// Name is the module's import name.
	Name() string

	// Path is the absolute path of the source file backing the module, or
	// empty for modules with no backing file.
	Path() string

	// Callables returns the live callables defined by the module.
	Callables() []domain.Callable
}

// ModuleHost is the authoritative view of which modules are currently loaded.
// The registry consults it before building per-file metadata, so that no
// metadata is ever built for a module that has since been unloaded.
type ModuleHost interface {
	// Lookup returns the live module with the given name, if loaded.
	Lookup(name string) (Module, bool)

	// Modules returns a snapshot of all currently loaded modules.
	Modules() []Module
}

// Strategy is one step of the module-resolution chain. A strategy that cannot
// or will not resolve the attempt returns (nil, nil): no opinion, let the
// chain proceed.
type Strategy interface {
	// FindSpec attempts to resolve a module name against the given search
	// roots. A nil search path means the strategy's own defaults.
	FindSpec(name string, searchPath []string) (*domain.ModuleSpec, error)
}

// Resolver owns the ordered strategy chain. Resolve walks the chain front to
// back and returns the first spec any strategy produces, or (nil, nil) when
// every strategy declines.
type Resolver interface {
	Resolve(name string, searchPath []string) (*domain.ModuleSpec, error)

	// Install inserts a strategy at the front of the chain, so it observes
	// every resolution attempt before any other strategy.
	Install(s Strategy)

	// Uninstall removes a previously installed strategy.
	Uninstall(s Strategy)
}
