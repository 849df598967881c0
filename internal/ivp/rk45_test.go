package ivp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func decay(x float64, y, dydx []float64) error {
	dydx[0] = -y[0]
	return nil
}

func TestExponentialDecay(t *testing.T) {
	xs := floats.Span(make([]float64, 31), 0., 3.)
	states, err := NewSolver().Solve(decay, []float64{1.}, xs)
	require.NoError(t, err)
	require.Len(t, states, len(xs))
	for i, x := range xs {
		assert.InDelta(t, math.Exp(-x), states[i][0], 1.e-7, "x = %g", x)
	}
}

func TestHarmonicOscillator(t *testing.T) {
	oscillator := func(x float64, y, dydx []float64) error {
		dydx[0] = y[1]
		dydx[1] = -y[0]
		return nil
	}
	xs := floats.Span(make([]float64, 41), 0., 4.*math.Pi)
	states, err := NewSolver().Solve(oscillator, []float64{1., 0.}, xs)
	require.NoError(t, err)
	for i, x := range xs {
		assert.InDelta(t, math.Cos(x), states[i][0], 1.e-6)
		assert.InDelta(t, -math.Sin(x), states[i][1], 1.e-6)
	}
}

func TestDescendingGrid(t *testing.T) {
	xs := floats.Span(make([]float64, 21), 2., 0.)
	states, err := NewSolver().Solve(decay, []float64{1.}, xs)
	require.NoError(t, err)
	// integrating y' = -y backwards from x=2 grows the solution
	for i, x := range xs {
		assert.InDelta(t, math.Exp(2.-x), states[i][0], 1.e-6)
	}
}

func TestRepeatedGridPoints(t *testing.T) {
	xs := []float64{0., 1., 1., 2.}
	states, err := NewSolver().Solve(decay, []float64{1.}, xs)
	require.NoError(t, err)
	assert.Equal(t, states[1][0], states[2][0])
	assert.InDelta(t, math.Exp(-2.), states[3][0], 1.e-7)
}

func TestBlowupFails(t *testing.T) {
	// y' = y^2 with y(0)=1 has a pole at x=1
	riccati := func(x float64, y, dydx []float64) error {
		dydx[0] = y[0] * y[0]
		return nil
	}
	_, err := NewSolver().Solve(riccati, []float64{1.}, []float64{0., 2.})
	var failure *Failure
	require.Error(t, err)
	assert.True(t, errors.As(err, &failure))
}

func TestDerivativeErrorPropagates(t *testing.T) {
	boom := errors.New("bad state")
	failing := func(x float64, y, dydx []float64) error {
		if x > 0.5 {
			return boom
		}
		dydx[0] = 1.
		return nil
	}
	_, err := NewSolver().Solve(failing, []float64{0.}, []float64{0., 1.})
	assert.ErrorIs(t, err, boom)
}

func TestFirstRowIsInitialState(t *testing.T) {
	states, err := NewSolver().Solve(decay, []float64{0.25}, []float64{1.})
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, 0.25, states[0][0])
}
