package wiring_test

import (
	"testing"

	"github.com/SummerStorm/jurigged/internal/app"
	"github.com/SummerStorm/jurigged/internal/core/domain"
	_ "github.com/SummerStorm/jurigged/internal/wiring"
	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of
	// the interface used in Dep[T]. Since multiple distinct nodes here
	// implement interfaces from the shared ports package, the inference does
	// not fit this architecture.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

// TestGraftExecute runs the full node graph and checks that every component
// the CLI consumes comes out wired.
func TestGraftExecute(t *testing.T) {
	t.Chdir(t.TempDir())

	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, components)

	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Registry)
	assert.Equal(t, domain.DefaultSettings(), components.Settings)
}
