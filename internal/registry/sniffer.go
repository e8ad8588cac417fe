package registry

import (
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
)

// ReportFunc receives the (module name, origin path) of every source-backed
// resolution the sniffer observes.
type ReportFunc func(moduleName, path string)

// Sniffer is a resolution strategy that only sniffs for attempted imports.
// Installed at the front of the chain, it sees every resolution attempt, asks
// the chain itself where the module would come from, reports source-backed
// destinations, and then always declines so the rest of the chain does the
// actual work. It never alters a resolution's outcome.
type Sniffer struct {
	resolver ports.Resolver
	report   ReportFunc
	log      ports.Logger

	// working guards against self-recursion: resolving the attempt to learn
	// its destination walks the chain again, through this very strategy. The
	// flag is thread-confined; the host's loading pipeline runs resolution
	// on the importing goroutine, so only reentry, not concurrent access,
	// needs preventing.
	working bool
}

var _ ports.Strategy = (*Sniffer)(nil)

// NewSniffer creates a sniffer that reports resolutions to report. Report
// failures are logged through log and never escape into the import pipeline.
func NewSniffer(resolver ports.Resolver, report ReportFunc, log ports.Logger) *Sniffer {
	return &Sniffer{resolver: resolver, report: report, log: log}
}

// Install places the sniffer at the front of the resolution chain.
func (s *Sniffer) Install() {
	s.resolver.Install(s)
}

// Uninstall removes the sniffer from the resolution chain.
func (s *Sniffer) Uninstall() {
	s.resolver.Uninstall(s)
}

// FindSpec observes one resolution attempt. It always returns (nil, nil), no
// opinion, so module construction is deferred to the rest of the chain.
func (s *Sniffer) FindSpec(name string, searchPath []string) (*domain.ModuleSpec, error) {
	if s.working {
		return nil, nil
	}
	s.working = true
	defer func() { s.working = false }()

	spec, err := s.resolver.Resolve(name, searchPath)
	if err != nil || spec == nil {
		return nil, nil
	}
	if spec.SourceBacked && spec.Name != "" && spec.Origin != "" {
		s.reportSafely(spec)
	}
	return nil, nil
}

// reportSafely invokes the report callback; a panicking callback must never
// be the reason an import fails.
func (s *Sniffer) reportSafely(spec *domain.ModuleSpec) {
	defer func() {
		if p := recover(); p != nil {
			s.log.Error("error reporting resolved module", "module", spec.Name, "panic", p)
		}
	}()
	s.report(spec.Name, spec.Origin)
}
