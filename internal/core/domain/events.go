package domain

// PrecacheEvent announces that a source snapshot was captured for a module.
type PrecacheEvent struct {
	Module string
	Path   string
}

// CodeEventKind classifies a code-level event emitted by a tracked file.
type CodeEventKind string

const (
	// CodeEventDiscovered fires when a tracked file is bound to its live module.
	CodeEventDiscovered CodeEventKind = "discovered"
	// CodeEventAdded fires when a refresh finds a definition that was not
	// present in the previous version of the file.
	CodeEventAdded CodeEventKind = "added"
	// CodeEventUpdated fires when a refresh finds a definition whose source
	// span differs from the previous version.
	CodeEventUpdated CodeEventKind = "updated"
	// CodeEventRemoved fires when a refresh no longer finds a previously
	// known definition.
	CodeEventRemoved CodeEventKind = "removed"
)

// CodeEvent is a code-level event for one definition of one tracked file.
// It names the file, the module backing it and the definition concerned;
// interpreting the change is someone else's job.
type CodeEvent struct {
	Kind       CodeEventKind
	Path       string
	Module     string
	Definition Definition
}
