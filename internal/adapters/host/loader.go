package host

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader owns the ordered resolution-strategy chain and loads modules through
// it. Resolution walks the chain front to back; the first strategy with an
// opinion wins. Loading a module parses its source, collects its callables
// and chases its resolvable imports, so one Load can fan out into nested
// resolution attempts on the same goroutine.
type Loader struct {
	mu         sync.Mutex
	strategies []ports.Strategy
	table      *Table
	log        ports.Logger
}

var _ ports.Resolver = (*Loader)(nil)

// NewLoader creates a loader over the given table with the given base
// strategies, kept in order at the back of the chain.
func NewLoader(table *Table, log ports.Logger, strategies ...ports.Strategy) *Loader {
	return &Loader{
		strategies: strategies,
		table:      table,
		log:        log,
	}
}

// Install inserts a strategy at the front of the chain.
func (l *Loader) Install(s ports.Strategy) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.strategies = append([]ports.Strategy{s}, l.strategies...)
}

// Uninstall removes a previously installed strategy.
func (l *Loader) Uninstall(s ports.Strategy) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, have := range l.strategies {
		if have == s {
			l.strategies = append(l.strategies[:i], l.strategies[i+1:]...)
			return
		}
	}
}

// Resolve walks the strategy chain and returns the first spec produced, or
// (nil, nil) when every strategy declines. The chain is copied before the
// walk so a strategy may re-enter Resolve without deadlocking.
func (l *Loader) Resolve(name string, searchPath []string) (*domain.ModuleSpec, error) {
	l.mu.Lock()
	chain := make([]ports.Strategy, len(l.strategies))
	copy(chain, l.strategies)
	l.mu.Unlock()

	for _, s := range chain {
		spec, err := s.FindSpec(name, searchPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "resolution strategy failed"), "module", name)
		}
		if spec != nil {
			return spec, nil
		}
	}
	return nil, nil
}

// Load resolves and loads the named module, along with any of its imports
// that resolve to source under the chain's roots. Loading an already loaded
// module returns the live instance.
func (l *Loader) Load(name string) (*Module, error) {
	return l.load(name, map[string]bool{})
}

func (l *Loader) load(name string, loading map[string]bool) (*Module, error) {
	if m, ok := l.table.Lookup(name); ok {
		return m.(*Module), nil
	}
	if loading[name] {
		return nil, zerr.With(domain.ErrImportCycle, "module", name)
	}
	loading[name] = true
	defer delete(loading, name)

	spec, err := l.Resolve(name, nil)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, zerr.With(domain.ErrModuleNotFound, "module", name)
	}
	if !spec.SourceBacked {
		return nil, zerr.With(zerr.With(domain.ErrNotSourceBacked, "module", name), "origin", spec.Origin)
	}

	m, err := l.build(spec)
	if err != nil {
		return nil, err
	}
	l.table.Insert(m)
	l.log.Debug("module loaded", "module", m.name, "path", m.path, "callables", len(m.callables))

	for _, dep := range m.imports {
		if l.table.Contains(dep) {
			continue
		}
		if _, err := l.load(dep, loading); err != nil {
			// Imports outside the chain's roots are not ours to load.
			if errors.Is(err, domain.ErrModuleNotFound) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to load import"), "importer", m.name)
		}
	}

	return m, nil
}

// build parses the module's source and assembles its callables.
func (l *Loader) build(spec *domain.ModuleSpec) (*Module, error) {
	src, err := os.ReadFile(spec.Origin) //nolint:gosec // Origin comes from the resolution chain
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read module source"), "path", spec.Origin)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, spec.Origin, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse module source"), "path", spec.Origin)
	}

	m := &Module{name: spec.Name, path: spec.Origin}
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		m.callables = append(m.callables, &Function{
			name:   funcName(fd),
			module: spec.Name,
			path:   spec.Origin,
			line:   fset.Position(fd.Pos()).Line,
		})
	}
	m.imports = resolvableImports(file)

	return m, nil
}

// funcName renders a declaration name, qualifying methods by receiver:
// "Parse", "(T).String", "(*Loader).Resolve".
func funcName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	return "(" + typeName(fd.Recv.List[0].Type) + ")." + fd.Name.Name
}

func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeName(t.X)
	case *ast.IndexExpr:
		return typeName(t.X)
	case *ast.IndexListExpr:
		return typeName(t.X)
	default:
		return ""
	}
}

// resolvableImports converts the file's import paths to dotted module names.
func resolvableImports(file *ast.File) []string {
	var out []string
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(p, "/", "."))
	}
	return out
}
