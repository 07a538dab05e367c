package dataset

import (
	"github.com/graphlearn/graphlearn/graph"
)

// Cycle5 is the catalog name of the 5-node directed cycle used by the
// message-passing demo.
const Cycle5 = "cycle5"

func init() {
	register(Cycle5, func() (*Dataset, error) {
		g, err := graph.New(5, graph.EdgeList{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
		if err != nil {
			return nil, err
		}
		g.Labels = []int32{0, 0, 0, 0, 0}
		if err := g.Valid(); err != nil {
			return nil, err
		}
		return &Dataset{
			Name:       Cycle5,
			Graph:      g,
			NumClasses: 1,
		}, nil
	})
}
