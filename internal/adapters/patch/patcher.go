// Package patch holds the in-tree stand-in for the external patch engine.
// The registry's job ends at handing over a change set; applying it is the
// engine's. LogPatcher just narrates what would be patched.
package patch

import (
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
)

var _ ports.Patcher = (*LogPatcher)(nil)

// LogPatcher implements ports.Patcher by logging each change set.
type LogPatcher struct {
	log ports.Logger
}

// NewLogPatcher creates a LogPatcher.
func NewLogPatcher(log ports.Logger) *LogPatcher {
	return &LogPatcher{log: log}
}

// Apply logs the change set and succeeds.
func (p *LogPatcher) Apply(change domain.ChangeSet) error {
	for _, region := range change.Regions {
		p.log.Info("code change detected",
			"module", change.Module,
			"path", change.Path,
			"kind", region.Kind,
			"definition", region.Definition.Name,
			"lines", region.Definition.StartLine,
			"lines_end", region.Definition.EndLine,
		)
	}
	if len(change.Regions) == 0 {
		p.log.Debug("file changed without structural impact", "path", change.Path)
	}
	return nil
}
