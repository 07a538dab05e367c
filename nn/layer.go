// Package nn holds the small set of trainable layers the graph
// autoencoder is built from. Gradients flow explicitly: Forward caches
// what Backward needs, Backward accumulates into parameter gradients
// and returns the gradient with respect to its input.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is one step of a model
type Layer interface {
	Forward(x *mat.Dense) *mat.Dense
	Backward(grad *mat.Dense) *mat.Dense
	Params() []*Param
}

// Param is a trainable value with its accumulated gradient
type Param struct {
	Value *mat.Dense
	Grad  *mat.Dense

	// Adam moment buffers, allocated on first use
	m, v *mat.Dense
}

func newParam(value *mat.Dense) *Param {
	r, c := value.Dims()
	return &Param{
		Value: value,
		Grad:  mat.NewDense(r, c, nil),
	}
}

// ZeroGrads clears the accumulated gradients of all params
func ZeroGrads(params []*Param) {
	for _, p := range params {
		p.Grad.Zero()
	}
}
