package app

import (
	"context"

	"github.com/SummerStorm/jurigged/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/host"    //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/patch"   //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/SummerStorm/jurigged/internal/registry"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application with the collaborators the CLI
// needs direct access to.
type Components struct {
	App      *App
	Logger   ports.Logger
	Registry *registry.Registry
	Settings domain.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			host.LoaderNodeID,
			registry.NodeID,
			watcher.NodeID,
			patch.NodeID,
			fs.ReaderNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, registry.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Registry: reg, Settings: settings}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[*host.Loader](ctx)
	if err != nil {
		return nil, err
	}
	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	patcher, err := graft.Dep[ports.Patcher](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(settings, loader, reg, w, patcher, reader, log), nil
}
