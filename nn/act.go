package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tanh is an elementwise tanh activation
type Tanh struct {
	y *mat.Dense // output cached by Forward
}

// Forward applies tanh elementwise
func (t *Tanh) Forward(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	y := mat.NewDense(r, c, nil)
	y.Apply(func(_, _ int, v float64) float64 {
		return math.Tanh(v)
	}, x)
	t.y = y
	return y
}

// Backward scales the incoming gradient by 1 - tanh²
func (t *Tanh) Backward(grad *mat.Dense) *mat.Dense {
	r, c := grad.Dims()
	dx := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		g := grad.RawRowView(i)
		y := t.y.RawRowView(i)
		out := dx.RawRowView(i)
		for j := range out {
			out[j] = g[j] * (1 - y[j]*y[j])
		}
	}
	return dx
}

// Params returns nil, tanh has nothing to train
func (t *Tanh) Params() []*Param {
	return nil
}
