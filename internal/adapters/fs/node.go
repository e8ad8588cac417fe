package fs

import (
	"context"

	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/grindlemire/graft"
)

const ReaderNodeID graft.ID = "adapter.fs.reader"

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})
}
