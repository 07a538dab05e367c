package graph

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MeanAggregate runs one message-passing step: each node's new row is
// the unweighted arithmetic mean of its in-neighbors' rows, the node's
// own row excluded. Nodes with no incoming edges get a zero row.
func MeanAggregate(x *mat.Dense, edges EdgeList) (*mat.Dense, error) {
	n, d := x.Dims()
	if err := edges.Valid(n); err != nil {
		return nil, errors.Wrapf(err, "aggregating over invalid edges")
	}

	out := mat.NewDense(n, d, nil)
	degs := make([]float64, n)
	for _, e := range edges {
		src, dst := e[0], e[1]
		degs[dst]++
		row := out.RawRowView(int(dst))
		msg := x.RawRowView(int(src))
		for j := range row {
			row[j] += msg[j]
		}
	}
	for i := 0; i < n; i++ {
		if degs[i] == 0 {
			continue
		}
		row := out.RawRowView(i)
		for j := range row {
			row[j] /= degs[i]
		}
	}
	return out, nil
}
