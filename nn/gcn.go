package nn

import (
	"math/rand"

	"github.com/graphlearn/graphlearn/graph"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// GCNConv is one graph convolution over a fixed edge list: the input
// features are mean-aggregated from each node's neighbors, then
// linearly transformed.
type GCNConv struct {
	lin   *Linear
	edges graph.EdgeList
	degs  []float64
}

// NewGCNConv builds a convolution over the given edges. The edge list
// is validated once here so that Forward cannot fail.
func NewGCNConv(in, out, numNodes int, edges graph.EdgeList, rnd *rand.Rand) (*GCNConv, error) {
	if err := edges.Valid(numNodes); err != nil {
		return nil, errors.Wrapf(err, "building graph convolution")
	}
	degs := make([]float64, numNodes)
	for _, e := range edges {
		degs[e[1]]++
	}
	return &GCNConv{
		lin:   NewLinear(in, out, rnd),
		edges: edges,
		degs:  degs,
	}, nil
}

// Forward aggregates then transforms
func (c *GCNConv) Forward(x *mat.Dense) *mat.Dense {
	agg, err := graph.MeanAggregate(x, c.edges)
	if err != nil {
		// edges were validated at construction
		panic(err)
	}
	return c.lin.Forward(agg)
}

// Backward routes the linear layer's input gradient back through the
// aggregation: the mean operator is linear, so its gradient is the
// transposed scatter with the same 1/degree weights.
func (c *GCNConv) Backward(grad *mat.Dense) *mat.Dense {
	dagg := c.lin.Backward(grad)

	n, d := dagg.Dims()
	dx := mat.NewDense(n, d, nil)
	for _, e := range c.edges {
		src, dst := int(e[0]), int(e[1])
		out := dx.RawRowView(src)
		in := dagg.RawRowView(dst)
		w := 1 / c.degs[dst]
		for j := range out {
			out[j] += w * in[j]
		}
	}
	return dx
}

// Params returns the underlying linear layer's params
func (c *GCNConv) Params() []*Param {
	return c.lin.Params()
}
