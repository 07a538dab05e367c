package gae

import (
	"math/rand"

	"github.com/graphlearn/graphlearn/graph"
)

// Sampler draws uniform random node pairs as negative examples for
// the link-prediction loss. Pairs are not checked against the true
// edge list; a sampled pair that happens to be a real edge is kept.
type Sampler struct {
	Rand *rand.Rand
}

// Sample draws count pairs over numNodes nodes
func (s Sampler) Sample(numNodes, count int) graph.EdgeList {
	pairs := make(graph.EdgeList, count)
	for i := range pairs {
		pairs[i] = [2]int32{
			int32(s.Rand.Intn(numNodes)),
			int32(s.Rand.Intn(numNodes)),
		}
	}
	return pairs
}
