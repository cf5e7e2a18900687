package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pymod2pkg/internal/core/ports"
)

// NodeID is the unique identifier for the distribution provider Graft node.
// The detector has no dependencies.
const NodeID graft.ID = "adapter.distribution"

func init() {
	graft.Register(graft.Node[ports.DistributionProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DistributionProvider, error) {
			return NewDistribution(), nil
		},
	})
}
