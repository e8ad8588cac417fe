// Package config provides the configuration loader for the watch service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// Load reads settings from the given path. A missing file yields the
// defaults; a malformed one is an error.
func (l *FileLoader) Load(path string) (domain.Settings, error) {
	return Load(path)
}

// Load reads a configuration file and returns the resulting settings, with
// defaults filled in for everything the file does not set.
func Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if len(file.Watch.Roots) > 0 {
		settings.WatchRoots = file.Watch.Roots
	}
	if file.Watch.DebounceMS > 0 {
		settings.DebounceWindow = time.Duration(file.Watch.DebounceMS) * time.Millisecond
	}
	if len(file.Modules.Roots) > 0 {
		settings.ModuleRoots = file.Modules.Roots
	}
	settings.Include = file.Include
	settings.Exclude = file.Exclude
	if file.Log.Level != "" {
		settings.LogLevel = file.Log.Level
	}

	return settings, nil
}
