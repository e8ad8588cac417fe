// Package domain contains the core value types shared across the registry,
// the module host and the adapters.
package domain

import "time"

// Snapshot is an immutable capture of a source file, taken the first time the
// file is seen by the registry. It represents the source as it existed when
// its module was imported, before any later edit could touch it.
type Snapshot struct {
	// ModuleName is the name of the module the file was loaded as.
	ModuleName string

	// Source is the full file content at capture time.
	Source string

	// ModTime is the file's modification time at capture time.
	ModTime time.Time

	// Hash is the xxhash digest of Source, so collaborators can compare
	// versions without holding both texts.
	Hash uint64
}
