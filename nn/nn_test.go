package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/graphlearn/graphlearn/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	fdStep = 1e-6
	fdTol  = 1e-5
)

// halfSumSquares is the scalar loss the gradient checks use:
// L = 0.5·ΣY², so dL/dY = Y.
func halfSumSquares(y *mat.Dense) float64 {
	var s float64
	r, c := y.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := y.At(i, j)
			s += v * v
		}
	}
	return 0.5 * s
}

// checkGrad compares an analytic gradient against central finite
// differences of loss() with respect to every entry of value.
func checkGrad(t *testing.T, name string, value, analytic *mat.Dense, loss func() float64) {
	t.Helper()
	r, c := value.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			orig := value.At(i, j)
			value.Set(i, j, orig+fdStep)
			up := loss()
			value.Set(i, j, orig-fdStep)
			down := loss()
			value.Set(i, j, orig)

			numeric := (up - down) / (2 * fdStep)
			require.InDelta(t, numeric, analytic.At(i, j), fdTol, "%s[%d,%d]", name, i, j)
		}
	}
}

func TestLinearForward(t *testing.T) {
	l := NewLinear(2, 1, rand.New(rand.NewSource(1)))
	l.W.Value.Set(0, 0, 2)
	l.W.Value.Set(1, 0, -1)
	l.B.Value.Set(0, 0, 0.5)

	y := l.Forward(mat.NewDense(2, 2, []float64{1, 1, 3, 0}))
	assert.InDelta(t, 1.5, y.At(0, 0), 1e-12)
	assert.InDelta(t, 6.5, y.At(1, 0), 1e-12)
}

func TestLinearGradients(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	l := NewLinear(3, 2, rnd)
	x := randomDense(4, 3, rnd)

	loss := func() float64 { return halfSumSquares(l.Forward(x)) }

	y := l.Forward(x)
	ZeroGrads(l.Params())
	dx := l.Backward(y)

	checkGrad(t, "W", l.W.Value, l.W.Grad, loss)
	checkGrad(t, "B", l.B.Value, l.B.Grad, loss)
	checkGrad(t, "x", x, dx, loss)
}

func TestGCNConvGradients(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	edges := graph.Undirected(graph.EdgeList{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
	conv, err := NewGCNConv(3, 2, 4, edges, rnd)
	require.NoError(t, err)
	x := randomDense(4, 3, rnd)

	loss := func() float64 { return halfSumSquares(conv.Forward(x)) }

	y := conv.Forward(x)
	ZeroGrads(conv.Params())
	dx := conv.Backward(y)

	checkGrad(t, "W", conv.lin.W.Value, conv.lin.W.Grad, loss)
	checkGrad(t, "B", conv.lin.B.Value, conv.lin.B.Grad, loss)
	checkGrad(t, "x", x, dx, loss)
}

func TestGCNConvRejectsBadEdges(t *testing.T) {
	_, err := NewGCNConv(3, 2, 4, graph.EdgeList{{0, 9}}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestTanhGradients(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	act := &Tanh{}
	x := randomDense(3, 3, rnd)

	loss := func() float64 { return halfSumSquares(act.Forward(x)) }

	y := act.Forward(x)
	dx := act.Backward(y)
	require.Nil(t, act.Params())

	checkGrad(t, "x", x, dx, loss)
}

func TestSGDStep(t *testing.T) {
	p := newParam(mat.NewDense(1, 1, []float64{1}))
	p.Grad.Set(0, 0, 0.5)

	SGD{LR: 0.1}.Step([]*Param{p})
	assert.InDelta(t, 0.95, p.Value.At(0, 0), 1e-12)
}

func TestAdamFirstStep(t *testing.T) {
	p := newParam(mat.NewDense(1, 1, []float64{1}))
	p.Grad.Set(0, 0, 0.5)

	a := NewAdam(0.01)
	a.Step([]*Param{p})

	// with bias correction the first update moves by almost exactly LR
	assert.InDelta(t, 0.99, p.Value.At(0, 0), 1e-6)
}

func TestZeroGrads(t *testing.T) {
	p := newParam(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	p.Grad.Set(1, 1, 3)
	ZeroGrads([]*Param{p})
	assert.Equal(t, 0.0, p.Grad.At(1, 1))
}

func TestGlorotBoundsAndSeed(t *testing.T) {
	a := glorot(10, 20, rand.New(rand.NewSource(42)))
	b := glorot(10, 20, rand.New(rand.NewSource(42)))

	limit := math.Sqrt(6. / 30)
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.True(t, math.Abs(a.At(i, j)) <= limit)
			require.Equal(t, a.At(i, j), b.At(i, j))
		}
	}
}

func randomDense(r, c int, rnd *rand.Rand) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rnd.NormFloat64()
	}
	return mat.NewDense(r, c, data)
}
