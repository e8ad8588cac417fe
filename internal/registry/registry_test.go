package registry_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SummerStorm/jurigged/internal/adapters/codefile"
	"github.com/SummerStorm/jurigged/internal/adapters/fs"
	"github.com/SummerStorm/jurigged/internal/adapters/host"
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/SummerStorm/jurigged/internal/core/ports/mocks"
	"github.com/SummerStorm/jurigged/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const appSource = `package app

import "strings"

func Greet(name string) string {
	return "hello " + strings.ToUpper(name)
}

func Add(a, b int) int {
	return a + b
}
`

// Line numbers inside appSource.
const (
	greetLine = 5
	addLine   = 9
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// recordLogger captures messages per level so tests can assert on logging
// side effects without a real handler.
type recordLogger struct {
	mu    sync.Mutex
	warns []string
	errs  []string
}

func (l *recordLogger) Debug(string, ...any) {}
func (l *recordLogger) Info(string, ...any)  {}

func (l *recordLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, msg)
}

func TestRegistry_GetUnknownPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations on any collaborator: an unknown path must resolve to
	// nil without touching the host or the file system.
	r := registry.New(
		mocks.NewMockModuleHost(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockCodeFileFactory(ctrl),
		mocks.NewMockSourceReader(ctrl),
		nopLogger{},
	)

	assert.Nil(t, r.Get("/no/such/file.go"))

	cf, def := r.Find("/no/such/file.go", 10)
	assert.Nil(t, cf)
	assert.Nil(t, def)
}

func TestRegistry_PrepareIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "app.go")
	mtime := time.Now()

	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadSource(path).Return(appSource, mtime, uint64(42), nil).Times(1)

	r := registry.New(
		mocks.NewMockModuleHost(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockCodeFileFactory(ctrl),
		reader,
		nopLogger{},
	)

	require.NoError(t, r.Prepare("app", path))
	require.NoError(t, r.Prepare("app", path))
	require.NoError(t, r.Prepare("other.name", path))

	snap, ok := r.Snapshot(path)
	require.True(t, ok)
	assert.Equal(t, "app", snap.ModuleName)
	assert.Equal(t, appSource, snap.Source)
	assert.Equal(t, uint64(42), snap.Hash)
	assert.True(t, mtime.Equal(snap.ModTime))

	// History replays the single capture to a late observer.
	var seen []domain.PrecacheEvent
	r.PrecacheActivity.Register(func(ev domain.PrecacheEvent) {
		seen = append(seen, ev)
	})
	require.Len(t, seen, 1)
	assert.Equal(t, "app", seen[0].Module)
	assert.Equal(t, path, seen[0].Path)
}

func TestRegistry_PrepareRetriesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "app.go")
	mtime := time.Now()

	reader := mocks.NewMockSourceReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().ReadSource(path).Return("", time.Time{}, uint64(0), zerr.New("permission denied")),
		reader.EXPECT().ReadSource(path).Return(appSource, mtime, uint64(7), nil),
	)

	r := registry.New(
		mocks.NewMockModuleHost(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockCodeFileFactory(ctrl),
		reader,
		nopLogger{},
	)

	require.Error(t, r.Prepare("app", path))
	if _, ok := r.Snapshot(path); ok {
		t.Fatal("failed capture must not be stored")
	}

	require.NoError(t, r.Prepare("app", path))
	snap, ok := r.Snapshot(path)
	require.True(t, ok)
	assert.Equal(t, appSource, snap.Source)
}

// promotedRegistry wires a registry over a real module table and code-file
// factory, with one prepared module ready to promote.
func promotedRegistry(t *testing.T, log ports.Logger, statTime time.Time) (*registry.Registry, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	path := filepath.Join(t.TempDir(), "app.go")
	mtime := time.Now()

	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadSource(path).Return(appSource, mtime, uint64(1), nil)
	if statTime.IsZero() {
		statTime = mtime
	}
	reader.EXPECT().Stat(path).Return(statTime, nil).AnyTimes()

	table := host.NewTable()
	table.Insert(host.NewModule("app", path,
		host.NewFunction("Greet", "app", path, greetLine),
		host.NewFunction("Add", "app", path, addLine),
	))

	r := registry.New(table, mocks.NewMockResolver(ctrl), codefile.Factory{}, reader, log)
	require.NoError(t, r.Prepare("app", path))
	return r, path
}

func TestRegistry_GetPromotesOnce(t *testing.T) {
	r, path := promotedRegistry(t, nopLogger{}, time.Time{})

	var events []domain.CodeEvent
	r.Activity.Register(func(ev domain.CodeEvent) {
		events = append(events, ev)
	})

	cf := r.Get(path)
	require.NotNil(t, cf)
	assert.Same(t, cf, r.Get(path), "promotion must yield a stable entity")

	// The capture survives promotion.
	snap, ok := r.Snapshot(path)
	require.True(t, ok)
	assert.Equal(t, appSource, snap.Source)

	// Discovery events for both linked callables reached the registry-wide
	// stream, in source order.
	require.Len(t, events, 2)
	assert.Equal(t, domain.CodeEventDiscovered, events[0].Kind)
	assert.Equal(t, "Greet", events[0].Definition.Name)
	assert.Equal(t, "Add", events[1].Definition.Name)
}

func TestRegistry_GetStaleModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "app.go")
	mtime := time.Now()

	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadSource(path).Return(appSource, mtime, uint64(1), nil)
	reader.EXPECT().Stat(path).Return(mtime, nil).AnyTimes()

	table := host.NewTable()
	r := registry.New(table, mocks.NewMockResolver(ctrl), codefile.Factory{}, reader, nopLogger{})
	require.NoError(t, r.Prepare("app", path))

	// Module not loaded: no promotion, but the snapshot stays available.
	assert.Nil(t, r.Get(path))
	_, ok := r.Snapshot(path)
	assert.True(t, ok)

	// Module appears under the same name: promotable again.
	table.Insert(host.NewModule("app", path))
	assert.NotNil(t, r.Get(path))
}

func TestRegistry_GetModTimeDrift(t *testing.T) {
	log := &recordLogger{}
	r, path := promotedRegistry(t, log, time.Now().Add(time.Hour))

	cf := r.Get(path)
	require.NotNil(t, cf)

	// The captured snapshot wins over whatever is on disk now.
	assert.Equal(t, appSource, cf.Snapshot().Source)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "changed since snapshot")
}

func TestRegistry_Find(t *testing.T) {
	r, path := promotedRegistry(t, nopLogger{}, time.Time{})

	cf, def := r.Find(path, greetLine)
	require.NotNil(t, cf)
	require.NotNil(t, def)
	assert.Equal(t, "Greet", def.Name)
	assert.Equal(t, domain.KindFunction, def.Kind)

	// A line inside a span finds the spanning definition.
	_, def = r.Find(path, greetLine+1)
	require.NotNil(t, def)
	assert.Equal(t, "Greet", def.Name)

	// A line between definitions degrades to (file, nil).
	cf, def = r.Find(path, greetLine+3)
	assert.NotNil(t, cf)
	assert.Nil(t, def)
}

func TestRegistry_FindFunctionRejectsNonCallables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No reader expectations: rejected values must cause no file reads.
	r := registry.New(
		mocks.NewMockModuleHost(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockCodeFileFactory(ctrl),
		mocks.NewMockSourceReader(ctrl),
		nopLogger{},
	)

	for _, v := range []any{nil, 42, "Greet", struct{}{}, []int{1}, (func())(nil)} {
		cf, def := r.FindFunction(v)
		assert.Nil(t, cf)
		assert.Nil(t, def)
	}
}

func TestRegistry_FindFunctionFromCallable(t *testing.T) {
	r, path := promotedRegistry(t, nopLogger{}, time.Time{})

	cf, def := r.FindFunction(host.NewFunction("Add", "app", path, addLine))
	require.NotNil(t, cf)
	require.NotNil(t, def)
	assert.Equal(t, "Add", def.Name)
	assert.Equal(t, addLine, def.StartLine)
}

func TestRegistry_FindFunctionPreparesOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "app.go")
	mtime := time.Now()

	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadSource(path).Return(appSource, mtime, uint64(1), nil).Times(1)
	reader.EXPECT().Stat(path).Return(mtime, nil).AnyTimes()

	table := host.NewTable()
	table.Insert(host.NewModule("app", path, host.NewFunction("Greet", "app", path, greetLine)))

	r := registry.New(table, mocks.NewMockResolver(ctrl), codefile.Factory{}, reader, nopLogger{})

	// Never prepared up front: the callable's origin is captured on the way.
	cf, def := r.FindFunction(host.NewFunction("Greet", "app", path, greetLine))
	require.NotNil(t, cf)
	require.NotNil(t, def)
	assert.Equal(t, "Greet", def.Name)
}

func TestRegistry_FindFunctionPlainGoFunc(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var prepared string
	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadSource(gomock.Any()).DoAndReturn(
		func(path string) (string, time.Time, uint64, error) {
			prepared = path
			return "", time.Time{}, uint64(0), zerr.New("not readable in test")
		})

	r := registry.New(
		mocks.NewMockModuleHost(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockCodeFileFactory(ctrl),
		reader,
		nopLogger{},
	)

	// The runtime resolves a plain function value to this very test file.
	cf, def := r.FindFunction(TestRegistry_FindFunctionPlainGoFunc)
	assert.Nil(t, cf)
	assert.Nil(t, def)
	assert.Equal(t, "registry_test.go", filepath.Base(prepared))
}

// writeModule lays out <root>/<dotted path>.go with the given source.
func writeModule(t *testing.T, root, name, source string) string {
	t.Helper()
	rel := filepath.FromSlash(name) + ".go"
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}

func TestRegistry_AutoRegister(t *testing.T) {
	root := t.TempDir()

	mainPath := writeModule(t, root, "app/main", `package main

import (
	"app/skipme"
	"app/util"
)

func Run() { util.Twice(skipme.One()) }
`)
	utilPath := writeModule(t, root, "app/util", `package util

func Twice(n int) int { return n * 2 }
`)
	skipPath := writeModule(t, root, "app/skipme", `package skipme

func One() int { return 1 }
`)
	otherPath := writeModule(t, root, "app/other", `package other

func Noop() {}
`)
	latePath := writeModule(t, root, "app/late", `package late

func Late() {}
`)

	table := host.NewTable()
	loader := host.NewLoader(table, nopLogger{}, host.NewPathStrategy(root))
	r := registry.New(table, loader, codefile.Factory{}, fs.NewReader(), nopLogger{})

	// app.other is already loaded before auto-registration starts.
	_, err := loader.Load("app.other")
	require.NoError(t, err)

	filter := func(path string) bool { return path != skipPath }
	sniffer := r.AutoRegister(filter)
	defer sniffer.Uninstall()

	// Loading app.main fans out into nested resolutions for its imports;
	// each one passes through the sniffer exactly once.
	_, err = loader.Load("app.main")
	require.NoError(t, err)

	var seen []domain.PrecacheEvent
	r.PrecacheActivity.Register(func(ev domain.PrecacheEvent) {
		seen = append(seen, ev)
	})

	byPath := map[string]string{}
	for _, ev := range seen {
		byPath[ev.Path] = ev.Module
	}
	assert.Equal(t, map[string]string{
		otherPath: "app.other",
		mainPath:  "app.main",
		utilPath:  "app.util",
	}, byPath)
	assert.Len(t, seen, 3, "each capture fires exactly once")

	// The filtered module was loaded but never captured.
	assert.True(t, table.Contains("app.skipme"))
	_, ok := r.Snapshot(skipPath)
	assert.False(t, ok)

	// Captured modules promote on demand.
	cf, def := r.Find(utilPath, 3)
	require.NotNil(t, cf)
	require.NotNil(t, def)
	assert.Equal(t, "Twice", def.Name)

	// After uninstalling, later imports go unobserved.
	sniffer.Uninstall()
	_, err = loader.Load("app.late")
	require.NoError(t, err)
	_, ok = r.Snapshot(latePath)
	assert.False(t, ok)
}

func TestRegistry_AutoRegisterDefaultFilter(t *testing.T) {
	t.Chdir(t.TempDir())

	inside := writeModule(t, ".", "pkg/mod", `package mod

func F() {}
`)

	table := host.NewTable()
	table.Insert(host.NewModule("pkg.mod", inside))
	table.Insert(host.NewModule("outside", filepath.Join(string(filepath.Separator), "elsewhere", "mod.go")))

	loader := host.NewLoader(table, nopLogger{}, host.NewPathStrategy("."))
	r := registry.New(table, loader, codefile.Factory{}, fs.NewReader(), nopLogger{})

	sniffer := r.AutoRegister(nil)
	defer sniffer.Uninstall()

	_, ok := r.Snapshot(inside)
	assert.True(t, ok, "file under the working directory is captured")
	_, ok = r.Snapshot(filepath.Join(string(filepath.Separator), "elsewhere", "mod.go"))
	assert.False(t, ok, "file outside the working directory is skipped")
}
