package domain

import "time"

// Settings is the runtime configuration for the watch service, loaded from
// jurigged.yaml or assembled from CLI flags.
type Settings struct {
	// WatchRoots are the directories watched for source edits.
	WatchRoots []string

	// ModuleRoots are the directories module names are resolved against.
	ModuleRoots []string

	// Include and Exclude are glob patterns applied to file paths when
	// deciding which modules to track. An empty Include list accepts
	// everything under the working directory.
	Include []string
	Exclude []string

	// DebounceWindow is how long to coalesce file events before reacting.
	DebounceWindow time.Duration

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string
}

// DefaultSettings returns the settings used when no config file is present:
// watch and resolve under the working directory, 50ms debounce, info logging.
func DefaultSettings() Settings {
	return Settings{
		WatchRoots:     []string{"."},
		ModuleRoots:    []string{"."},
		DebounceWindow: 50 * time.Millisecond,
		LogLevel:       "info",
	}
}
