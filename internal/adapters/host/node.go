package host

import (
	"context"

	"github.com/SummerStorm/jurigged/internal/adapters/config"
	"github.com/SummerStorm/jurigged/internal/adapters/logger"
	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	TableNodeID  graft.ID = "adapter.host.table"
	LoaderNodeID graft.ID = "adapter.host.loader"
)

func init() {
	graft.Register(graft.Node[*Table]{
		ID:        TableNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Table, error) {
			return NewTable(), nil
		},
	})

	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{TableNodeID, config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			table, err := graft.Dep[*Table](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(table, log, NewPathStrategy(settings.ModuleRoots...)), nil
		},
	})
}
