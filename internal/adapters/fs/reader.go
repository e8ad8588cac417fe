// Package fs implements the file-system facing adapters: snapshot reading
// with content digests and the path filters that decide which files are
// tracked.
package fs

import (
	"os"
	"time"

	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader against the real file system.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSource returns the file's full text, modification time and xxhash
// digest in one pass.
func (r *Reader) ReadSource(path string) (string, time.Time, uint64, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the resolution chain
	if err != nil {
		return "", time.Time{}, 0, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", time.Time{}, 0, zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", path)
	}
	return string(data), info.ModTime(), xxhash.Sum64(data), nil
}

// Stat returns the file's current modification time.
func (r *Reader) Stat(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), nil
}
