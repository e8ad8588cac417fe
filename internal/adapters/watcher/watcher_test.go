package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SummerStorm/jurigged/internal/adapters/watcher"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// waitFor drains the event channel until an event for path arrives.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %s", path)
			}
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", path)
		}
	}
}

func TestWatcher_NoRoots(t *testing.T) {
	w, err := watcher.New(nopLogger{})
	require.NoError(t, err)
	defer w.Close()

	require.Error(t, w.Start(t.Context()))
}

func TestWatcher_WriteAndRemove(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.go")
	require.NoError(t, os.WriteFile(path, []byte("package mod\n"), 0o600))

	w, err := watcher.New(nopLogger{})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	require.NoError(t, os.WriteFile(path, []byte("package mod\n\nfunc F() {}\n"), 0o600))
	ev := waitFor(t, w.Events(), path)
	assert.False(t, ev.Removed)

	require.NoError(t, os.Remove(path))
	ev = waitFor(t, w.Events(), path)
	assert.True(t, ev.Removed)
}

func TestWatcher_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.New(nopLogger{})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o750))

	// The new directory joins the watch set asynchronously; retry the write
	// until an event for it comes through.
	path := filepath.Join(sub, "mod.go")
	done := make(chan ports.WatchEvent, 1)
	go func() {
		done <- waitFor(t, w.Events(), path)
	}()
	for i := 0; i < 50; i++ {
		require.NoError(t, os.WriteFile(path, []byte("package mod\n"), 0o600))
		select {
		case ev := <-done:
			assert.False(t, ev.Removed)
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
	t.Fatal("no event for file in newly created directory")
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.New(nopLogger{})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, root))

	cancel()
	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "event channel closes when the context ends")
	case <-time.After(5 * time.Second):
		t.Fatal("event channel did not close after cancel")
	}
}
