package ports

import (
	"time"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/events"
)

// CodeFile is the per-file metadata entity: a line-indexed structural view of
// one source file, built from a registry snapshot and bound to the live
// module that file backs.
//
//go:generate go run go.uber.org/mock/mockgen -source=codefile.go -destination=mocks/mock_codefile.go -package=mocks
type CodeFile interface {
	// Path is the file this entity describes.
	Path() string

	// Snapshot returns the capture the entity was built from. It never
	// changes, even after Refresh.
	Snapshot() domain.Snapshot

	// Discover binds the entity to the live module backing its file,
	// associating callables with the definitions they originate from.
	Discover(module Module) error

	// DefinitionAt returns the definition that starts at or spans the given
	// line, or nil when the line is not bound to any definition.
	DefinitionAt(line int) *domain.Definition

	// Definitions returns all definitions in source order.
	Definitions() []domain.Definition

	// Refresh re-indexes the entity against new file content and emits a
	// code event for every definition whose span was added, updated or
	// removed relative to the previous content. It returns those events.
	Refresh(source string, modTime time.Time) ([]domain.CodeEvent, error)

	// Activity is the entity's own notification channel for code events.
	Activity() *events.Source[domain.CodeEvent]
}

// CodeFileFactory builds CodeFile entities from captured snapshots. The
// registry calls it at most once per path.
type CodeFileFactory interface {
	New(path string, snap domain.Snapshot) (CodeFile, error)
}
