package config

// File represents the structure of the jurigged.yaml configuration file.
type File struct {
	Version string   `yaml:"version"`
	Watch   WatchDTO `yaml:"watch"`
	Modules ModsDTO  `yaml:"modules"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	Log     LogDTO   `yaml:"log"`
}

// WatchDTO configures the file watcher.
type WatchDTO struct {
	Roots      []string `yaml:"roots"`
	DebounceMS int      `yaml:"debounceMs"`
}

// ModsDTO configures module resolution.
type ModsDTO struct {
	Roots []string `yaml:"roots"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level string `yaml:"level"`
}
