package graph

import (
	"sort"

	"github.com/pkg/errors"
)

// EdgeList is a directed edge list stored as (source, dest) pairs
type EdgeList [][2]int32

// Sorted returns a copy sorted by source then dest
func (e EdgeList) Sorted() EdgeList {
	s := make(EdgeList, len(e))
	copy(s, e)
	sort.Slice(s, func(i, j int) bool {
		if s[i][0] == s[j][0] {
			return s[i][1] < s[j][1]
		}
		return s[i][0] < s[j][0]
	})
	return s
}

// Valid returns nil if every endpoint is in [0, numNodes)
func (e EdgeList) Valid(numNodes int) error {
	for _, p := range e {
		for _, id := range p {
			if id < 0 || int(id) >= numNodes {
				return errors.Errorf("edge (%d,%d) out of range for %d nodes", p[0], p[1], numNodes)
			}
		}
	}
	return nil
}

// Sources returns the source column of the list
func (e EdgeList) Sources() []int32 {
	srcs := make([]int32, len(e))
	for i, p := range e {
		srcs[i] = p[0]
	}
	return srcs
}

// Dests returns the dest column of the list
func (e EdgeList) Dests() []int32 {
	dsts := make([]int32, len(e))
	for i, p := range e {
		dsts[i] = p[1]
	}
	return dsts
}

// Undirected mirrors each pair, dedupes and sorts, so that both
// directions of every edge are present exactly once
func Undirected(pairs EdgeList) EdgeList {
	seen := make(map[[2]int32]bool, 2*len(pairs))
	var out EdgeList
	for _, p := range pairs {
		for _, q := range [][2]int32{p, {p[1], p[0]}} {
			if seen[q] {
				continue
			}
			seen[q] = true
			out = append(out, q)
		}
	}
	return out.Sorted()
}
