// Package registry implements the process-wide table that maps loaded modules
// to cached source snapshots and lazily built per-file metadata. It is the
// bridge between two time domains: the module as it was originally imported
// and the code as it is currently running.
package registry

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/SummerStorm/jurigged/internal/events"
	"go.trai.ch/zerr"
)

// Registry coordinates two tables keyed by absolute file path: a precache of
// raw source snapshots captured the moment a module is first seen, and a
// cache of per-file metadata built lazily on first demand. A path lives in at
// most one of the two; promotion from precache to cache happens once and is
// never undone.
type Registry struct {
	mu       sync.Mutex
	precache map[string]domain.Snapshot
	cache    map[string]ports.CodeFile

	host     ports.ModuleHost
	resolver ports.Resolver
	files    ports.CodeFileFactory
	reader   ports.SourceReader
	log      ports.Logger

	// PrecacheActivity emits once per captured snapshot. It retains history
	// so observers attached after startup still see every capture.
	PrecacheActivity *events.Source[domain.PrecacheEvent]

	// Activity aggregates the code events of every promoted file into a
	// single stream.
	Activity *events.Source[domain.CodeEvent]
}

// New creates an empty registry bound to its host environment.
func New(
	host ports.ModuleHost,
	resolver ports.Resolver,
	files ports.CodeFileFactory,
	reader ports.SourceReader,
	log ports.Logger,
) *Registry {
	return &Registry{
		precache:         make(map[string]domain.Snapshot),
		cache:            make(map[string]ports.CodeFile),
		host:             host,
		resolver:         resolver,
		files:            files,
		reader:           reader,
		log:              log,
		PrecacheActivity: events.NewSourceWithHistory[domain.PrecacheEvent](),
		Activity:         events.NewSource[domain.CodeEvent](),
	}
}

// Prepare snapshots the given file before it can be modified. It is
// idempotent: once a path is known, in either table, a later call is a no-op.
// Only the underlying file read can fail; that failure propagates and is not
// cached, so a later call may still succeed.
func (r *Registry) Prepare(moduleName, path string) error {
	path = filepath.Clean(path)

	r.mu.Lock()
	if _, ok := r.precache[path]; ok {
		r.mu.Unlock()
		return nil
	}
	if _, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	source, modTime, hash, err := r.reader.ReadSource(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to snapshot source file"), "path", path)
	}

	r.mu.Lock()
	// A concurrent Prepare may have won the race; first capture stands.
	_, inPre := r.precache[path]
	_, inCache := r.cache[path]
	if inPre || inCache {
		r.mu.Unlock()
		return nil
	}
	r.precache[path] = domain.Snapshot{
		ModuleName: moduleName,
		Source:     source,
		ModTime:    modTime,
		Hash:       hash,
	}
	r.mu.Unlock()

	r.PrecacheActivity.Emit(domain.PrecacheEvent{Module: moduleName, Path: path})
	return nil
}

// Get returns the metadata entity for the given file, building it on first
// demand from the precache snapshot. It returns nil when the path was never
// prepared, when its module is no longer loaded, or when the snapshot cannot
// be indexed. Once built, the same path always yields the same entity.
func (r *Registry) Get(path string) ports.CodeFile {
	path = filepath.Clean(path)

	r.mu.Lock()
	if cf, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return cf
	}
	snap, ok := r.precache[path]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	module, live := r.host.Lookup(snap.ModuleName)
	if !live {
		// The module vanished since capture. Keep the snapshot; it becomes
		// promotable again if the module is reloaded under the same name.
		r.log.Debug("module no longer loaded, not promoting", "module", snap.ModuleName, "path", path)
		return nil
	}

	// The snapshot stays authoritative even if the file changed on disk
	// between capture and first demand, but a drifted mtime is worth a note.
	if now, err := r.reader.Stat(path); err == nil && !now.Equal(snap.ModTime) {
		r.log.Warn("file changed since snapshot, promoting captured version",
			"path", path, "captured", snap.ModTime, "current", now)
	}

	cf, err := r.files.New(path, snap)
	if err != nil {
		r.log.Error("failed to index source file", "path", path, "error", err)
		return nil
	}

	// Forward the file's events onto the registry-wide stream before
	// discovery so external observers see one unified feed from the start.
	cf.Activity().Register(r.Activity.Emit)

	if err := cf.Discover(module); err != nil {
		r.log.Error("failed to bind file to live module", "path", path, "error", err)
		return nil
	}

	r.mu.Lock()
	if prior, ok := r.cache[path]; ok {
		// Someone else promoted while we were building; theirs stands.
		r.mu.Unlock()
		return prior
	}
	delete(r.precache, path)
	r.cache[path] = cf
	r.mu.Unlock()

	return cf
}

// Snapshot returns the captured source for a path, whether it still sits in
// the precache or has been promoted.
func (r *Registry) Snapshot(path string) (domain.Snapshot, bool) {
	path = filepath.Clean(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if snap, ok := r.precache[path]; ok {
		return snap, true
	}
	if cf, ok := r.cache[path]; ok {
		return cf.Snapshot(), true
	}
	return domain.Snapshot{}, false
}

// AutoRegister prepares every currently loaded module whose file passes the
// filter, then installs a Sniffer at the front of the resolution chain so
// modules imported later are prepared the same way. The returned sniffer can
// be uninstalled by the caller. A nil filter accepts source files under the
// working directory tree.
func (r *Registry) AutoRegister(filter ports.PathFilter) *Sniffer {
	if filter == nil {
		filter = workingDirFilter()
	}

	prep := func(moduleName, path string) {
		if moduleName == "" || path == "" || !filter(path) {
			return
		}
		if err := r.Prepare(moduleName, path); err != nil {
			r.log.Error("failed to prepare module source", "module", moduleName, "path", path, "error", err)
		}
	}

	for _, m := range r.host.Modules() {
		prep(m.Name(), m.Path())
	}

	sniffer := NewSniffer(r.resolver, prep, r.log)
	sniffer.Install()
	return sniffer
}

// Find looks up the definition at the given file and line. Both results
// degrade to nil; a line between definitions yields (file, nil) and an
// unknown path yields (nil, nil). It never fails.
func (r *Registry) Find(path string, line int) (ports.CodeFile, *domain.Definition) {
	cf := r.Get(path)
	if cf == nil {
		return nil, nil
	}
	return cf, cf.DefinitionAt(line)
}

// FindFunction walks back from a live callable to the definition it
// originated from. It accepts either a domain.Callable carried by a loaded
// module or a plain Go function value; anything else yields (nil, nil) with
// no side effects. The origin file is prepared on the way, covering callables
// whose defining module was never scanned.
func (r *Registry) FindFunction(v any) (ports.CodeFile, *domain.Definition) {
	moduleName, path, line, ok := callableOrigin(v)
	if !ok {
		return nil, nil
	}

	if err := r.Prepare(moduleName, path); err != nil {
		r.log.Debug("failed to prepare callable origin", "path", path, "error", err)
	}
	return r.Find(path, line)
}

// callableOrigin extracts (module, file, first line) from a live callable.
func callableOrigin(v any) (module, path string, line int, ok bool) {
	switch fn := v.(type) {
	case nil:
		return "", "", 0, false
	case domain.Callable:
		path, line = fn.Origin()
		return fn.ModuleName(), path, line, path != ""
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Func || rv.IsNil() {
			return "", "", 0, false
		}
		pc := rv.Pointer()
		rf := runtime.FuncForPC(pc)
		if rf == nil {
			return "", "", 0, false
		}
		path, line = rf.FileLine(rf.Entry())
		return funcModule(rf.Name()), path, line, path != ""
	}
}

// funcModule derives a module name from a runtime function name like
// "pkg/path.Func" or "pkg/path.(*T).Method".
func funcModule(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		dir, rest := name[:i+1], name[i+1:]
		if j := strings.Index(rest, "."); j >= 0 {
			return dir + rest[:j]
		}
		return name
	}
	if j := strings.Index(name, "."); j >= 0 {
		return name[:j]
	}
	return name
}
