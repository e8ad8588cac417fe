package host

import (
	"sort"
	"sync"

	"github.com/SummerStorm/jurigged/internal/core/ports"
)

// Table is the authoritative set of currently loaded modules, keyed by import
// name. The loader inserts on load; Remove supports unloading so stale
// entries stop answering liveness checks.
type Table struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

var _ ports.ModuleHost = (*Table)(nil)

// NewTable creates an empty module table.
func NewTable() *Table {
	return &Table{modules: make(map[string]*Module)}
}

// Lookup returns the live module with the given name, if loaded.
func (t *Table) Lookup(name string) (ports.Module, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.modules[name]
	if !ok {
		return nil, false
	}
	return m, true
}

// Modules returns a snapshot of all loaded modules, ordered by name.
func (t *Table) Modules() []ports.Module {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.modules))
	for name := range t.modules {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ports.Module, 0, len(names))
	for _, name := range names {
		out = append(out, t.modules[name])
	}
	return out
}

// Contains reports whether a module with the given name is loaded.
func (t *Table) Contains(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.modules[name]
	return ok
}

// Remove unloads the module with the given name. Removing an unknown name is
// a no-op.
func (t *Table) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.modules, name)
}

// Insert adds or replaces a module. The loader inserts on load; embedders
// mirroring an external loading pipeline may insert directly.
func (t *Table) Insert(m *Module) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modules[m.name] = m
}
