package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when no resolution strategy can locate a module.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrNotSourceBacked is returned when a module resolves to a precompiled
	// artifact that cannot be loaded from source.
	ErrNotSourceBacked = zerr.New("module is not source backed")

	// ErrImportCycle is returned when loading a module would recurse into itself.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrNoWatchRoots is returned when the watch service is started without
	// any directory to watch.
	ErrNoWatchRoots = zerr.New("no watch roots configured")
)
