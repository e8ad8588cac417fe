package registry

import (
	"context"
	"os"

	"github.com/SummerStorm/jurigged/internal/adapters/codefile" //nolint:depguard // Wired at the node level
	"github.com/SummerStorm/jurigged/internal/adapters/fs"       //nolint:depguard // Wired at the node level
	"github.com/SummerStorm/jurigged/internal/adapters/host"     //nolint:depguard // Wired at the node level
	"github.com/SummerStorm/jurigged/internal/adapters/logger"   //nolint:depguard // Wired at the node level
	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "core.registry"

// workingDirFilter is the AutoRegister default: Go source files under the
// current working directory tree.
func workingDirFilter() ports.PathFilter {
	cwd, err := os.Getwd()
	if err != nil {
		return func(string) bool { return false }
	}
	return fs.UnderDir(cwd)
}

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			host.TableNodeID,
			host.LoaderNodeID,
			codefile.NodeID,
			fs.ReaderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			table, err := graft.Dep[*host.Table](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*host.Loader](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.CodeFileFactory](ctx)
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
			return New(table, loader, files, reader, log), nil
		},
	})
}
