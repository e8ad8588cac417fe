// Package codefile implements the per-file metadata entity: a line-indexed
// structural view of one source file, built from the snapshot captured at
// import time and bound to the live module backing the file.
package codefile

import (
	"sync"
	"time"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/SummerStorm/jurigged/internal/events"
	"go.trai.ch/zerr"
)

// CodeFile indexes the definitions of a single source file by line and keeps
// that index current across refreshes. The snapshot it was built from never
// changes; refreshes only replace the working index.
type CodeFile struct {
	path string
	snap domain.Snapshot

	mu        sync.RWMutex
	defs      []domain.Definition
	byStart   map[int]int
	spans     map[string]uint64
	callables map[int]domain.Callable
	module    ports.Module

	activity *events.Source[domain.CodeEvent]
}

var _ ports.CodeFile = (*CodeFile)(nil)

// New builds a CodeFile from a captured snapshot.
func New(path string, snap domain.Snapshot) (*CodeFile, error) {
	defs, spans, err := index(path, snap.Source)
	if err != nil {
		return nil, err
	}
	cf := &CodeFile{
		path:      path,
		snap:      snap,
		defs:      defs,
		byStart:   byStartLine(defs),
		spans:     spans,
		callables: make(map[int]domain.Callable),
		activity:  events.NewSource[domain.CodeEvent](),
	}
	return cf, nil
}

// Path returns the file this entity describes.
func (c *CodeFile) Path() string { return c.path }

// Snapshot returns the capture the entity was built from.
func (c *CodeFile) Snapshot() domain.Snapshot { return c.snap }

// Activity returns the entity's notification channel.
func (c *CodeFile) Activity() *events.Source[domain.CodeEvent] { return c.activity }

// Discover binds the entity to its live module and links each of the
// module's callables to the definition at its origin line. A Discovered
// event fires for every linked definition.
func (c *CodeFile) Discover(module ports.Module) error {
	if module.Path() != "" && module.Path() != c.path {
		err := zerr.With(zerr.New("module is backed by a different file"), "module", module.Name())
		err = zerr.With(err, "module_path", module.Path())
		return zerr.With(err, "path", c.path)
	}

	var linked []domain.Definition
	c.mu.Lock()
	c.module = module
	for _, fn := range module.Callables() {
		path, line := fn.Origin()
		if path != c.path {
			continue
		}
		if i, ok := c.byStart[line]; ok {
			c.callables[line] = fn
			linked = append(linked, c.defs[i])
		}
	}
	c.mu.Unlock()

	for _, d := range linked {
		c.activity.Emit(domain.CodeEvent{
			Kind:       domain.CodeEventDiscovered,
			Path:       c.path,
			Module:     c.snap.ModuleName,
			Definition: d,
		})
	}
	return nil
}

// DefinitionAt returns the definition starting at the given line, or, when no
// definition starts there, the one spanning it. Lines outside every span
// yield nil.
func (c *CodeFile) DefinitionAt(line int) *domain.Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i, ok := c.byStart[line]; ok {
		d := c.defs[i]
		return &d
	}
	for _, d := range c.defs {
		if d.Contains(line) {
			out := d
			return &out
		}
	}
	return nil
}

// Definitions returns all definitions in source order.
func (c *CodeFile) Definitions() []domain.Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// CallableAt returns the live callable linked to the definition starting at
// the given line, if discovery found one.
func (c *CodeFile) CallableAt(line int) domain.Callable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.callables[line]
}

// Refresh re-indexes the file against new content and reports every
// definition whose span was added, updated or removed relative to the
// previous index. Events fire on the entity's activity channel in source
// order, removals last.
func (c *CodeFile) Refresh(source string, modTime time.Time) ([]domain.CodeEvent, error) {
	defs, spans, err := index(c.path, source)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	oldDefs, oldSpans := c.defs, c.spans
	c.defs = defs
	c.byStart = byStartLine(defs)
	c.spans = spans
	c.mu.Unlock()

	var evs []domain.CodeEvent
	for _, d := range defs {
		prior, existed := oldSpans[d.Name]
		switch {
		case !existed:
			evs = append(evs, c.event(domain.CodeEventAdded, d))
		case prior != spans[d.Name]:
			evs = append(evs, c.event(domain.CodeEventUpdated, d))
		}
	}
	for _, d := range oldDefs {
		if _, still := spans[d.Name]; !still {
			evs = append(evs, c.event(domain.CodeEventRemoved, d))
		}
	}

	for _, ev := range evs {
		c.activity.Emit(ev)
	}
	return evs, nil
}

func (c *CodeFile) event(kind domain.CodeEventKind, d domain.Definition) domain.CodeEvent {
	return domain.CodeEvent{
		Kind:       kind,
		Path:       c.path,
		Module:     c.snap.ModuleName,
		Definition: d,
	}
}

func byStartLine(defs []domain.Definition) map[int]int {
	m := make(map[int]int, len(defs))
	for i, d := range defs {
		m[d.StartLine] = i
	}
	return m
}

// Factory builds CodeFile entities for the registry.
type Factory struct{}

var _ ports.CodeFileFactory = Factory{}

// New implements ports.CodeFileFactory.
func (Factory) New(path string, snap domain.Snapshot) (ports.CodeFile, error) {
	return New(path, snap)
}
