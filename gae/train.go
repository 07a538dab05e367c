package gae

import (
	"fmt"
	"math/rand"

	"github.com/graphlearn/graphlearn/graph"
	"github.com/graphlearn/graphlearn/nn"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sbwhitecap/tqdm"
	"github.com/sbwhitecap/tqdm/iterators"
	"gonum.org/v1/gonum/mat"
)

// defaultSeed keeps runs reproducible when the caller does not supply
// its own source
const defaultSeed = 1234

// TrainParams bundles the run-scoped collaborators for training
type TrainParams struct {
	// Rand seeds both the layer init and the negative sampler.
	Rand *rand.Rand
	// Optimizer defaults to Adam at the config's learning rate.
	Optimizer nn.Optimizer
	// Progress draws a tqdm bar over the epochs.
	Progress bool
}

// Result of a training run
type Result struct {
	// Embeddings holds one row per node, computed with the final
	// weights.
	Embeddings *mat.Dense
	// History holds the loss of every epoch in order.
	History []float64
	Model   *Model
}

// Train fits a graph autoencoder to the graph's edges for a fixed
// number of epochs, full batch, resampling the negative pairs every
// epoch. There is no convergence check: the loop always runs all
// configured epochs.
func Train(g *graph.Graph, cfg Config, params TrainParams) (*Result, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	if len(g.Edges) == 0 {
		return nil, errors.New("cannot train link prediction on a graph with no edges")
	}

	rnd := params.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(defaultSeed))
	}

	x := g.Features()
	_, numFeatures := x.Dims()
	model, err := NewModel(cfg, numFeatures, g.NumNodes, g.Edges, rnd)
	if err != nil {
		return nil, err
	}

	opt := params.Optimizer
	if opt == nil {
		opt = nn.NewAdam(cfg.LearningRate)
	}

	sampler := Sampler{Rand: rnd}
	pos := g.Edges
	history := make([]float64, 0, cfg.Epochs)

	epoch := func() {
		z := model.Encode(x)
		neg := sampler.Sample(g.NumNodes, len(pos))
		loss, dz := LinkLoss(z, pos, neg)

		nn.ZeroGrads(model.Params())
		model.Backward(dz)
		opt.Step(model.Params())

		history = append(history, loss)
	}

	if params.Progress {
		err := tqdm.With(iterators.Interval(0, cfg.Epochs), "training", func(interface{}) (brk bool) {
			epoch()
			return
		})
		if err != nil {
			return nil, errors.Wrapf(err, "epoch loop")
		}
	} else {
		for i := 0; i < cfg.Epochs; i++ {
			epoch()
		}
	}

	return &Result{
		Embeddings: model.Encode(x),
		History:    history,
		Model:      model,
	}, nil
}

// Summary describes the loss history in one line
func (r *Result) Summary() string {
	if len(r.History) == 0 {
		return "no epochs run"
	}
	min, _ := stats.Min(r.History)
	mean, _ := stats.Mean(r.History)
	return fmt.Sprintf("epochs=%d first=%.4f final=%.4f min=%.4f mean=%.4f",
		len(r.History), r.History[0], r.History[len(r.History)-1], min, mean)
}
