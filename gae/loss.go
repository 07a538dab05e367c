package gae

import (
	"github.com/graphlearn/graphlearn/graph"
	"gonum.org/v1/gonum/mat"
)

// LinkLoss is the mean binary cross-entropy of the decoder over the
// true edges (label 1) and the sampled pairs (label 0), computed on
// logits. It returns the scalar loss and the gradient with respect to
// the embeddings.
func LinkLoss(z *mat.Dense, pos, neg graph.EdgeList) (float64, *mat.Dense) {
	n, d := z.Dims()
	dz := mat.NewDense(n, d, nil)
	total := float64(len(pos) + len(neg))

	var loss float64
	score := func(pairs graph.EdgeList, positive bool) {
		for _, e := range pairs {
			u, v := int(e[0]), int(e[1])
			zu := z.RawRowView(u)
			zv := z.RawRowView(v)
			var s float64
			for j := range zu {
				s += zu[j] * zv[j]
			}

			var g float64
			if positive {
				loss += softplus(-s)
				g = sigmoid(s) - 1
			} else {
				loss += softplus(s)
				g = sigmoid(s)
			}
			g /= total

			du := dz.RawRowView(u)
			dv := dz.RawRowView(v)
			for j := range du {
				du[j] += g * zv[j]
				dv[j] += g * zu[j]
			}
		}
	}
	score(pos, true)
	score(neg, false)

	return loss / total, dz
}
