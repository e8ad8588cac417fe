package codefile

import (
	"context"

	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.codefile_factory"

func init() {
	graft.Register(graft.Node[ports.CodeFileFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CodeFileFactory, error) {
			return Factory{}, nil
		},
	})
}
