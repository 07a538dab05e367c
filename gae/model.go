// Package gae trains a graph autoencoder for link prediction: a stack
// of graph convolutions encodes each node into a low-dimensional
// embedding, and a dot-product decoder scores how likely two nodes
// are to be connected.
package gae

import (
	"math"
	"math/rand"

	"github.com/graphlearn/graphlearn/graph"
	"github.com/graphlearn/graphlearn/nn"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Model is the encoder: GCNConv layers with tanh between them, the
// last one linear so the embedding space is unbounded.
type Model struct {
	layers []nn.Layer
}

// NewModel builds the encoder stack for a fixed edge list
func NewModel(cfg Config, numFeatures, numNodes int, edges graph.EdgeList, rnd *rand.Rand) (*Model, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}

	var layers []nn.Layer
	in := numFeatures
	for i := 0; i < cfg.Layers; i++ {
		out := cfg.HiddenDim
		last := i == cfg.Layers-1
		if last {
			out = cfg.OutputDim
		}
		conv, err := nn.NewGCNConv(in, out, numNodes, edges, rnd)
		if err != nil {
			return nil, errors.Wrapf(err, "building layer %d", i)
		}
		layers = append(layers, conv)
		if !last {
			layers = append(layers, &nn.Tanh{})
		}
		in = out
	}
	return &Model{layers: layers}, nil
}

// Encode runs the feature matrix through the stack and returns one
// embedding row per node
func (m *Model) Encode(x *mat.Dense) *mat.Dense {
	h := x
	for _, l := range m.layers {
		h = l.Forward(h)
	}
	return h
}

// Backward propagates an embedding gradient back through the stack,
// accumulating into the layer params
func (m *Model) Backward(grad *mat.Dense) {
	for i := len(m.layers) - 1; i >= 0; i-- {
		grad = m.layers[i].Backward(grad)
	}
}

// Params collects the trainable params of every layer
func (m *Model) Params() []*nn.Param {
	var params []*nn.Param
	for _, l := range m.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// Score decodes one node pair: sigmoid of the dot product of the two
// embedding rows. For identical embeddings this is the sigmoid of the
// row's sum of squares.
func Score(z *mat.Dense, u, v graph.NodeID) float64 {
	zu := z.RawRowView(int(u))
	zv := z.RawRowView(int(v))
	var s float64
	for j := range zu {
		s += zu[j] * zv[j]
	}
	return sigmoid(s)
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// softplus is log(1+exp(x)) without overflowing for large x
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}
