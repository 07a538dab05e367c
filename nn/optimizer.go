package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Optimizer applies one update step to a set of params
type Optimizer interface {
	Step(params []*Param)
}

// SGD is plain gradient descent
type SGD struct {
	LR float64
}

// Step subtracts LR times the gradient from each param
func (s SGD) Step(params []*Param) {
	for _, p := range params {
		r, c := p.Value.Dims()
		for i := 0; i < r; i++ {
			w := p.Value.RawRowView(i)
			g := p.Grad.RawRowView(i)
			for j := 0; j < c; j++ {
				w[j] -= s.LR * g[j]
			}
		}
	}
}

// Adam tracks first and second gradient moments per param
type Adam struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64

	t int
}

// NewAdam builds an Adam optimizer with the standard defaults
func NewAdam(lr float64) *Adam {
	return &Adam{
		LR:    lr,
		Beta1: 0.9,
		Beta2: 0.999,
		Eps:   1e-8,
	}
}

// Step applies one bias-corrected Adam update
func (a *Adam) Step(params []*Param) {
	a.t++
	c1 := 1 - math.Pow(a.Beta1, float64(a.t))
	c2 := 1 - math.Pow(a.Beta2, float64(a.t))

	for _, p := range params {
		r, c := p.Value.Dims()
		if p.m == nil {
			p.m = mat.NewDense(r, c, nil)
			p.v = mat.NewDense(r, c, nil)
		}
		for i := 0; i < r; i++ {
			w := p.Value.RawRowView(i)
			g := p.Grad.RawRowView(i)
			m := p.m.RawRowView(i)
			v := p.v.RawRowView(i)
			for j := 0; j < c; j++ {
				m[j] = a.Beta1*m[j] + (1-a.Beta1)*g[j]
				v[j] = a.Beta2*v[j] + (1-a.Beta2)*g[j]*g[j]
				mhat := m[j] / c1
				vhat := v[j] / c2
				w[j] -= a.LR * mhat / (math.Sqrt(vhat) + a.Eps)
			}
		}
	}
}
