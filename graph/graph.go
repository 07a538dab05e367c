package graph

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NodeID identifies a node in a graph
type NodeID int32

// Graph is a static graph: a fixed node count, a directed edge list,
// an optional dense feature matrix and optional integer class labels.
// Undirected graphs store both directions of each edge.
// Builders fill the fields once (re-running Valid if they set Feats or
// Labels after New); nothing mutates a Graph after it is handed out.
type Graph struct {
	NumNodes int
	Edges    EdgeList

	// Feats has one row per node. If nil, Features returns
	// the one-hot identity.
	Feats *mat.Dense

	// Labels holds one class label per node, may be nil.
	Labels []int32
}

// New builds a graph and validates it
func New(numNodes int, edges EdgeList) (*Graph, error) {
	g := &Graph{
		NumNodes: numNodes,
		Edges:    edges.Sorted(),
	}
	if err := g.Valid(); err != nil {
		return nil, err
	}
	return g, nil
}

// Valid returns nil if the edge list, features and labels are
// consistent with the node count
func (g *Graph) Valid() error {
	if g.NumNodes <= 0 {
		return errors.Errorf("graph must have at least one node, got %d", g.NumNodes)
	}
	if err := g.Edges.Valid(g.NumNodes); err != nil {
		return err
	}
	if g.Feats != nil {
		r, _ := g.Feats.Dims()
		if r != g.NumNodes {
			return errors.Errorf("feature matrix has %d rows for %d nodes", r, g.NumNodes)
		}
	}
	if g.Labels != nil && len(g.Labels) != g.NumNodes {
		return errors.Errorf("got %d labels for %d nodes", len(g.Labels), g.NumNodes)
	}
	return nil
}

// Features returns the node feature matrix, defaulting to the
// one-hot identity when none was provided
func (g *Graph) Features() *mat.Dense {
	if g.Feats != nil {
		return g.Feats
	}
	x := mat.NewDense(g.NumNodes, g.NumNodes, nil)
	for i := 0; i < g.NumNodes; i++ {
		x.Set(i, i, 1)
	}
	return x
}

// Neighbors returns the sources of the edges pointing at id, in
// ascending order
func (g *Graph) Neighbors(id NodeID) []NodeID {
	var ns []NodeID
	for _, e := range g.Edges {
		if NodeID(e[1]) == id {
			ns = append(ns, NodeID(e[0]))
		}
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	return ns
}

// InDegrees returns the number of incoming edges per node
func (g *Graph) InDegrees() []int {
	degs := make([]int, g.NumNodes)
	for _, e := range g.Edges {
		degs[e[1]]++
	}
	return degs
}
