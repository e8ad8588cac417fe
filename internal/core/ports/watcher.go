package ports

import "context"

// WatchEvent is a single file-system change observed under a watch root.
type WatchEvent struct {
	// Path is the absolute path of the changed file.
	Path string

	// Removed reports whether the file was deleted or renamed away rather
	// than written.
	Removed bool
}

// Watcher observes directories for source file changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given roots recursively. Watching stops when
	// ctx is cancelled.
	Start(ctx context.Context, roots ...string) error

	// Events returns the channel on which changes are delivered.
	Events() <-chan WatchEvent

	// Close releases the underlying watch descriptors.
	Close() error
}
