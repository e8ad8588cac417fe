// Package app implements the application layer: it boots the module host,
// auto-registers loaded modules with the registry and runs the watch loop
// that feeds file changes to the patch collaborator.
package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/SummerStorm/jurigged/internal/adapters/fs"
	"github.com/SummerStorm/jurigged/internal/adapters/host"    //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/SummerStorm/jurigged/internal/registry"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the registry, the module host and the watch service together.
type App struct {
	settings domain.Settings
	loader   *host.Loader
	registry *registry.Registry
	watcher  ports.Watcher
	patcher  ports.Patcher
	reader   ports.SourceReader
	log      ports.Logger
}

// New creates an App from its collaborators.
func New(
	settings domain.Settings,
	loader *host.Loader,
	reg *registry.Registry,
	w ports.Watcher,
	patcher ports.Patcher,
	reader ports.SourceReader,
	log ports.Logger,
) *App {
	return &App{
		settings: settings,
		loader:   loader,
		registry: reg,
		watcher:  w,
		patcher:  patcher,
		reader:   reader,
		log:      log,
	}
}

// Registry exposes the registry for observers and tests.
func (a *App) Registry() *registry.Registry { return a.registry }

// WithSettings replaces the app's settings before Run. It returns the app
// for chaining.
func (a *App) WithSettings(settings domain.Settings) *App {
	a.settings = settings
	return a
}

// Run loads the named modules, snapshots everything already loaded, installs
// the import sniffer and watches for edits until ctx is cancelled.
func (a *App) Run(ctx context.Context, modules []string) error {
	for _, name := range modules {
		if _, err := a.loader.Load(name); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load module"), "module", name)
		}
	}

	sniffer := a.registry.AutoRegister(a.filter())
	defer sniffer.Uninstall()

	if len(a.settings.WatchRoots) == 0 {
		return domain.ErrNoWatchRoots
	}
	if err := a.watcher.Start(ctx, a.settings.WatchRoots...); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer a.watcher.Close() //nolint:errcheck // Best effort close on shutdown

	debouncer := watcher.NewDebouncer(a.settings.DebounceWindow, a.onChanged)

	a.log.Info("watching for source changes",
		"roots", a.settings.WatchRoots, "window", a.settings.DebounceWindow)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				debouncer.Flush()
				return nil
			case ev, ok := <-a.watcher.Events():
				if !ok {
					debouncer.Flush()
					return nil
				}
				if ev.Removed {
					a.log.Debug("tracked path removed", "path", ev.Path)
					continue
				}
				debouncer.Add(ev.Path)
			}
		}
	})
	return g.Wait()
}

// onChanged receives a debounced batch of changed paths and routes each
// tracked one through the registry to the patch collaborator.
func (a *App) onChanged(paths []string) {
	for _, path := range paths {
		a.reconcile(filepath.Clean(path))
	}
}

func (a *App) reconcile(path string) {
	cf := a.registry.Get(path)
	if cf == nil {
		return
	}

	source, modTime, _, err := a.reader.ReadSource(path)
	if err != nil {
		a.log.Warn("failed to read changed file", "path", path, "error", err)
		return
	}

	regions, err := cf.Refresh(source, modTime)
	if err != nil {
		// Mid-edit syntax errors are routine; the next save gets another try.
		a.log.Debug("changed file does not parse yet", "path", path, "error", err)
		return
	}

	change := domain.ChangeSet{
		Path:         path,
		Module:       cf.Snapshot().ModuleName,
		Before:       cf.Snapshot(),
		After:        source,
		AfterModTime: modTime,
		Regions:      regions,
	}
	if err := a.patcher.Apply(change); err != nil {
		a.log.Error("failed to apply change", "path", path, "error", err)
	}
}

// filter builds the tracking filter from settings, rooted at the working
// directory.
func (a *App) filter() ports.PathFilter {
	cwd, err := os.Getwd()
	if err != nil {
		a.log.Warn("failed to resolve working directory", "error", err)
		return nil
	}
	return fs.GlobFilter(cwd, a.settings.Include, a.settings.Exclude)
}
