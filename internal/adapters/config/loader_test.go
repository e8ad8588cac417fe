package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SummerStorm/jurigged/internal/adapters/config"
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "jurigged.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurigged.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1"
watch:
  roots:
    - ./src
    - ./lib
  debounceMs: 200
modules:
  roots:
    - ./src
include:
  - "*.go"
exclude:
  - "*_gen.go"
log:
  level: debug
`), 0o600))

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./src", "./lib"}, settings.WatchRoots)
	assert.Equal(t, []string{"./src"}, settings.ModuleRoots)
	assert.Equal(t, []string{"*.go"}, settings.Include)
	assert.Equal(t, []string{"*_gen.go"}, settings.Exclude)
	assert.Equal(t, 200*time.Millisecond, settings.DebounceWindow)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurigged.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))

	settings, err := config.Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.WatchRoots, settings.WatchRoots)
	assert.Equal(t, defaults.ModuleRoots, settings.ModuleRoots)
	assert.Equal(t, defaults.DebounceWindow, settings.DebounceWindow)
	assert.Equal(t, "warn", settings.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurigged.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
