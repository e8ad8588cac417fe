package host

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"go.trai.ch/zerr"
)

// PathStrategy resolves dotted module names against a list of root
// directories, the way a path-based finder does: "app.handlers" becomes
// <root>/app/handlers.go. A compiled plugin artifact (.so) at the same
// location resolves too, but is not source backed.
type PathStrategy struct {
	roots []string
}

var _ ports.Strategy = (*PathStrategy)(nil)

// NewPathStrategy creates a strategy searching the given roots in order.
func NewPathStrategy(roots ...string) *PathStrategy {
	return &PathStrategy{roots: roots}
}

// FindSpec resolves name against the search path, falling back to the
// strategy's own roots when searchPath is nil. It returns (nil, nil) when the
// module is not found under any root.
func (p *PathStrategy) FindSpec(name string, searchPath []string) (*domain.ModuleSpec, error) {
	roots := searchPath
	if roots == nil {
		roots = p.roots
	}

	rel := strings.ReplaceAll(name, ".", string(filepath.Separator))
	for _, root := range roots {
		if spec, err := p.probe(name, filepath.Join(root, rel)); spec != nil || err != nil {
			return spec, err
		}
	}
	return nil, nil
}

func (p *PathStrategy) probe(name, base string) (*domain.ModuleSpec, error) {
	for _, c := range []struct {
		ext    string
		source bool
	}{
		{".go", true},
		{".so", false},
	} {
		candidate := base + c.ext
		info, err := os.Stat(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to probe module candidate"), "path", candidate)
		}
		if info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to absolutize module origin")
		}
		return &domain.ModuleSpec{Name: name, Origin: abs, SourceBacked: c.source}, nil
	}
	return nil, nil
}
