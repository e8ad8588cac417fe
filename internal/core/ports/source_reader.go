package ports

import (
	"time"

	"github.com/SummerStorm/jurigged/internal/core/domain"
)

// SourceReader reads source files for snapshotting. Wrapping the file system
// behind a port keeps the registry testable without touching disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_reader.go -destination=mocks/mock_source_reader.go -package=mocks
type SourceReader interface {
	// ReadSource returns the file's full text, modification time and content
	// digest.
	ReadSource(path string) (source string, modTime time.Time, hash uint64, err error)

	// Stat returns the file's current modification time without reading it.
	Stat(path string) (time.Time, error)
}

// PathFilter restricts which files the registry tracks. It receives an
// absolute file path and reports whether the file should be prepared.
type PathFilter func(path string) bool

// Patcher is the external collaborator that turns a change set into an
// applied code change. This subsystem only decides which file, which version
// and which line ranges are relevant; Apply does the rest.
type Patcher interface {
	Apply(change domain.ChangeSet) error
}
