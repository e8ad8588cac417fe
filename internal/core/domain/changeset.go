package domain

import "time"

// ChangeSet is what the registry hands to the patch collaborator when a
// tracked file changes on disk: the file, the version it was imported as and
// the regions whose text moved. The patch engine decides what to do with it.
type ChangeSet struct {
	// Path is the changed file.
	Path string

	// Module is the import name of the module backed by Path.
	Module string

	// Before is the snapshot the module was imported from.
	Before Snapshot

	// After is the file's current content.
	After string

	// AfterModTime is the file's modification time for After.
	AfterModTime time.Time

	// Regions are the definitions whose spans were added, updated or removed
	// between Before and After.
	Regions []CodeEvent
}
