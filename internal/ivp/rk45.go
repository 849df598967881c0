// Package ivp integrates initial-value problems over a caller-supplied
// evaluation grid with an embedded Cash-Karp Runge-Kutta 4(5) scheme and
// proportional step control. Consecutive grid points are integrated as
// independent directed segments, so descending and non-monotonic grids are
// honored literally.
package ivp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Derivative evaluates dydx at (x, y). Any error aborts the integration and
// propagates to the Solve caller unchanged.
type Derivative func(x float64, y, dydx []float64) error

// Failure reports a step failure of the solver itself: step-size underflow,
// step budget exhaustion or a non-finite state.
type Failure struct {
	X      float64
	Reason string
}

func (e *Failure) Error() string {
	return fmt.Sprintf("ivp: %s at x = %g", e.Reason, e.X)
}

// Cash-Karp tableau.
var (
	ckNodes  = [6]float64{0., 1. / 5., 3. / 10., 3. / 5., 1., 7. / 8.}
	ckMatrix = [6][5]float64{
		{},
		{1. / 5.},
		{3. / 40., 9. / 40.},
		{3. / 10., -9. / 10., 6. / 5.},
		{-11. / 54., 5. / 2., -70. / 27., 35. / 27.},
		{1631. / 55296., 175. / 512., 575. / 13824., 44275. / 110592., 253. / 4096.},
	}
	ckOrder5 = [6]float64{37. / 378., 0., 250. / 621., 125. / 594., 0., 512. / 1771.}
	ckOrder4 = [6]float64{2825. / 27648., 0., 18575. / 48384., 13525. / 55296., 277. / 14336., 1. / 4.}
)

// Solver holds the step control configuration. The zero value is unusable;
// use NewSolver for the fixed documented defaults.
type Solver struct {
	RelTol   float64
	AbsTol   float64
	MaxSteps int // per grid segment
}

func NewSolver() *Solver {
	return &Solver{
		RelTol:   1.e-8,
		AbsTol:   1.e-10,
		MaxSteps: 1_000_000,
	}
}

// Solve integrates y' = f(x, y) from (xs[0], y0) through every grid point,
// returning one state row per element of xs, in grid order. The first row is
// a copy of y0. Repeated grid points yield repeated rows.
func (s *Solver) Solve(f Derivative, y0 []float64, xs []float64) ([][]float64, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	dim := len(y0)
	out := make([][]float64, len(xs))
	y := append([]float64(nil), y0...)
	out[0] = append([]float64(nil), y...)

	var k [6][]float64
	for stage := range k {
		k[stage] = make([]float64, dim)
	}
	yStage := make([]float64, dim)
	yNext := make([]float64, dim)
	yEmbedded := make([]float64, dim)

	for i := 1; i < len(xs); i++ {
		x, target := xs[i-1], xs[i]
		h := target - x
		if h == 0 {
			out[i] = append([]float64(nil), y...)
			continue
		}
		direction := 1.
		if h < 0 {
			direction = -1.
		}
		for step := 0; (target-x)*direction > 0; step++ {
			if step >= s.MaxSteps {
				return nil, &Failure{X: x, Reason: "step budget exhausted"}
			}
			if math.Abs(h) <= 1.e-15*math.Max(math.Abs(x), math.Abs(target)) {
				return nil, &Failure{X: x, Reason: "step size underflow"}
			}
			if (x+h-target)*direction > 0 {
				h = target - x
			}

			for stage := 0; stage < 6; stage++ {
				copy(yStage, y)
				for m := 0; m < stage; m++ {
					floats.AddScaled(yStage, h*ckMatrix[stage][m], k[m])
				}
				if err := f(x+ckNodes[stage]*h, yStage, k[stage]); err != nil {
					return nil, err
				}
			}
			copy(yNext, y)
			copy(yEmbedded, y)
			for stage := 0; stage < 6; stage++ {
				floats.AddScaled(yNext, h*ckOrder5[stage], k[stage])
				floats.AddScaled(yEmbedded, h*ckOrder4[stage], k[stage])
			}

			errNorm := 0.
			for j := 0; j < dim; j++ {
				if math.IsNaN(yNext[j]) || math.IsInf(yNext[j], 0) {
					return nil, &Failure{X: x, Reason: "state is not finite"}
				}
				scale := s.AbsTol + s.RelTol*math.Max(math.Abs(y[j]), math.Abs(yNext[j]))
				errNorm = math.Max(errNorm, math.Abs(yNext[j]-yEmbedded[j])/scale)
			}
			if errNorm <= 1 {
				x += h
				copy(y, yNext)
			}
			factor := 5.
			if errNorm > 0 {
				factor = math.Min(5., math.Max(0.2, 0.9*math.Pow(errNorm, -0.2)))
			}
			h *= factor
		}
		out[i] = append([]float64(nil), y...)
	}
	return out, nil
}
