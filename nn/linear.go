package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Linear is a fully connected layer: y = x·W + b
type Linear struct {
	W *Param
	B *Param

	x *mat.Dense // input cached by Forward
}

// NewLinear builds a Glorot-initialized linear layer
func NewLinear(in, out int, rnd *rand.Rand) *Linear {
	return &Linear{
		W: newParam(glorot(in, out, rnd)),
		B: newParam(mat.NewDense(1, out, nil)),
	}
}

// Forward computes x·W + b
func (l *Linear) Forward(x *mat.Dense) *mat.Dense {
	l.x = x
	n, _ := x.Dims()
	_, out := l.W.Value.Dims()

	y := mat.NewDense(n, out, nil)
	y.Mul(x, l.W.Value)
	b := l.B.Value.RawRowView(0)
	for i := 0; i < n; i++ {
		row := y.RawRowView(i)
		for j := range row {
			row[j] += b[j]
		}
	}
	return y
}

// Backward accumulates dW = xᵀ·grad and db = column sums of grad, and
// returns dx = grad·Wᵀ
func (l *Linear) Backward(grad *mat.Dense) *mat.Dense {
	var dw mat.Dense
	dw.Mul(l.x.T(), grad)
	l.W.Grad.Add(l.W.Grad, &dw)

	n, _ := grad.Dims()
	db := l.B.Grad.RawRowView(0)
	for i := 0; i < n; i++ {
		row := grad.RawRowView(i)
		for j := range row {
			db[j] += row[j]
		}
	}

	in, _ := l.W.Value.Dims()
	dx := mat.NewDense(n, in, nil)
	dx.Mul(grad, l.W.Value.T())
	return dx
}

// Params returns the weight and bias
func (l *Linear) Params() []*Param {
	return []*Param{l.W, l.B}
}

// glorot draws an in×out matrix uniformly from
// [-sqrt(6/(in+out)), sqrt(6/(in+out))]
func glorot(in, out int, rnd *rand.Rand) *mat.Dense {
	limit := math.Sqrt(6 / float64(in+out))
	data := make([]float64, in*out)
	for i := range data {
		data[i] = rnd.Float64()*2*limit - limit
	}
	return mat.NewDense(in, out, data)
}
