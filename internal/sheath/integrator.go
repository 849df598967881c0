package sheath

import (
	"github.com/wildstyl3r/blowout/internal/ivp"
)

// Trajectory holds one State per requested xi sample, in request order.
type Trajectory []State

// Radii returns the radius column of the trajectory.
func (tr Trajectory) Radii() []float64 {
	radii := make([]float64, len(tr))
	for i := range tr {
		radii[i] = tr[i].R
	}
	return radii
}

// Slopes returns the dr/dxi column of the trajectory.
func (tr Trajectory) Slopes() []float64 {
	slopes := make([]float64, len(tr))
	for i := range tr {
		slopes[i] = tr[i].U
	}
	return slopes
}

// Integrator produces bubble-wall trajectories by feeding the sheath model's
// derivative to the ivp solver. Step control stays with the solver; failures
// propagate to the caller unchanged, with no retry.
type Integrator struct {
	model  *Model
	solver *ivp.Solver
}

func NewIntegrator(params Parameters) (*Integrator, error) {
	model, err := NewModel(params)
	if err != nil {
		return nil, err
	}
	return &Integrator{model: model, solver: ivp.NewSolver()}, nil
}

// Model exposes the underlying derivative model.
func (in *Integrator) Model() *Model { return in.model }

// ComputeBubble integrates the wall radius over xiSamples starting from
// (r0, 0) at xiSamples[0]. The grid is honored literally, whatever its
// ordering, and one State is returned per sample.
func (in *Integrator) ComputeBubble(xiSamples []float64, r0 float64) (Trajectory, error) {
	rhs := func(xi float64, y, dydx []float64) error {
		dr, du, err := in.model.Derivative(xi, State{R: y[0], U: y[1]})
		if err != nil {
			return err
		}
		dydx[0] = dr
		dydx[1] = du
		return nil
	}
	states, err := in.solver.Solve(rhs, []float64{r0, 0.}, xiSamples)
	if err != nil {
		return nil, err
	}
	trajectory := make(Trajectory, len(states))
	for i, y := range states {
		trajectory[i] = State{R: y[0], U: y[1]}
	}
	return trajectory, nil
}
