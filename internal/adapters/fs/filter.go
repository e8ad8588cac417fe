package fs

import (
	"path/filepath"
	"strings"

	"github.com/SummerStorm/jurigged/internal/core/ports"
)

// UnderDir returns a filter accepting Go source files inside root's tree.
func UnderDir(root string) ports.PathFilter {
	root = filepath.Clean(root)
	return func(path string) bool {
		if filepath.Ext(path) != ".go" {
			return false
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		return rel == "." || !strings.HasPrefix(rel, "..")
	}
}

// GlobFilter builds a filter from include and exclude glob patterns, matched
// against the path's base name and its root-relative form. Exclusion wins;
// an empty include list accepts everything under root.
func GlobFilter(root string, include, exclude []string) ports.PathFilter {
	under := UnderDir(root)
	return func(path string) bool {
		if !under(path) {
			return false
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		if matchAny(exclude, rel) {
			return false
		}
		if len(include) == 0 {
			return true
		}
		return matchAny(include, rel)
	}
}

func matchAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)
	for _, p := range patterns {
		if ok, err := filepath.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
