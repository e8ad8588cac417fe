// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/SummerStorm/jurigged/internal/adapters/codefile"
	_ "github.com/SummerStorm/jurigged/internal/adapters/config"
	_ "github.com/SummerStorm/jurigged/internal/adapters/fs"
	_ "github.com/SummerStorm/jurigged/internal/adapters/host"
	_ "github.com/SummerStorm/jurigged/internal/adapters/logger"
	_ "github.com/SummerStorm/jurigged/internal/adapters/patch"
	_ "github.com/SummerStorm/jurigged/internal/adapters/watcher"
	// Register core and app nodes.
	_ "github.com/SummerStorm/jurigged/internal/app"
	_ "github.com/SummerStorm/jurigged/internal/registry"
)
