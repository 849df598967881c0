// Package sheath models the wall of a blowout-regime plasma bubble as a thin
// electron sheath of constant width, driven by a Gaussian electron bunch. The
// wall radius obeys a second-order nonlinear ODE in the co-moving coordinate
// xi = ct - z, integrated by Integrator over a caller-chosen grid.
//
// Lengths and densities are in plasma units (lengths in skin depths, the
// drive bunch by electron count), matching the normalization of the closure.
package sheath

import (
	"math"

	"github.com/wildstyl3r/blowout/internal/plasma"
)

// Parameters of a sheath scenario. All must be strictly positive.
type Parameters struct {
	Delta          float64 // sheath width
	SigmaXi        float64 // rms drive-bunch length
	DriveElectrons float64 // N_b, drive-bunch electron count
}

func (p Parameters) check() error {
	if err := plasma.CheckPositive("sheath width", p.Delta); err != nil {
		return err
	}
	if err := plasma.CheckPositive("drive-bunch rms length", p.SigmaXi); err != nil {
		return err
	}
	return plasma.CheckPositive("drive-bunch electron count", p.DriveElectrons)
}

// State is the ODE state vector: the bubble-wall radius and its slope wrt xi.
type State struct {
	R float64
	U float64 // dr/dxi
}

// Model evaluates the right-hand side of the sheath closure:
//
//	A(r) r'' = lambda(xi)/r - C(r) r - B(r) r r'^2
//
// with A, B, C built from beta(r) = f(r) g(r) - 1 and its first two
// derivatives, chained through a(r) = 1 + delta/r.
type Model struct {
	params Parameters
}

func NewModel(params Parameters) (*Model, error) {
	if err := params.check(); err != nil {
		return nil, err
	}
	return &Model{params: params}, nil
}

// LineDensity returns the Gaussian longitudinal charge density of the drive
// bunch at xi, in electrons per unit length.
func (m *Model) LineDensity(xi float64) float64 {
	sigma := m.params.SigmaXi
	return m.params.DriveElectrons / math.Sqrt(2.*math.Pi*sigma*sigma) *
		math.Exp(-xi*xi/(2.*sigma*sigma))
}

func (m *Model) a(r float64) float64 { return 1. + m.params.Delta/r }

// da and d2a are derivatives of a wrt r.
func (m *Model) da(r float64) float64  { return -m.params.Delta / (r * r) }
func (m *Model) d2a(r float64) float64 { return 2. * m.params.Delta / (r * r * r) }

func (m *Model) f(r float64) float64 {
	a := m.a(r)
	lna := math.Log(a)
	return a * a * lna * lna
}

func (m *Model) g(r float64) float64 {
	a := m.a(r)
	return 1. / (a*a - 1.)
}

// df, dg, d2f, d2g are derivatives wrt a.
func (m *Model) df(r float64) float64 {
	f := m.f(r)
	return 2. * (math.Sqrt(f) + f/m.a(r))
}

func (m *Model) dg(r float64) float64 {
	g := m.g(r)
	return -2. * m.a(r) * g * g
}

func (m *Model) d2f(r float64) float64 {
	a := m.a(r)
	f := m.f(r)
	return m.df(r)*(1./math.Sqrt(f)+2./a) - 2.*f/(a*a)
}

func (m *Model) d2g(r float64) float64 {
	a := m.a(r)
	g := m.g(r)
	return 2. * g * g * (4.*a*a*g - 1.)
}

// Beta is the sheath field closure beta(r) = f(r) g(r) - 1.
func (m *Model) Beta(r float64) float64 {
	return m.f(r)*m.g(r) - 1.
}

// BetaPrime is d beta/dr = (df g + f dg) da/dr.
func (m *Model) BetaPrime(r float64) float64 {
	return (m.df(r)*m.g(r) + m.f(r)*m.dg(r)) * m.da(r)
}

// BetaDblPrime is d^2 beta/dr^2, chained through a(r):
//
//	(d2f g + 2 df dg + f d2g) a'^2 + (df g + f dg) a''
func (m *Model) BetaDblPrime(r float64) float64 {
	wrtA2 := m.d2f(r)*m.g(r) + 2.*m.df(r)*m.dg(r) + m.f(r)*m.d2g(r)
	wrtA := m.df(r)*m.g(r) + m.f(r)*m.dg(r)
	da := m.da(r)
	return wrtA2*da*da + wrtA*m.d2a(r)
}

// A is the inertia coefficient of the wall equation. Positive for radii up
// to a couple of skin depths, the range a trajectory traverses.
func (m *Model) A(r float64) float64 {
	return 1. + r*r*(0.25+0.5*m.Beta(r)+0.125*r*m.BetaPrime(r))
}

func (m *Model) B(r float64) float64 {
	return 0.5 + 0.75*(m.Beta(r)+r*m.BetaPrime(r)) + 0.125*r*r*m.BetaDblPrime(r)
}

func (m *Model) C(r float64) float64 {
	denom := 1. + 0.25*m.Beta(r)*r*r
	return 0.25 * (1. + 1./(denom*denom))
}

// Derivative returns (dr/dxi, du/dxi) at the given position and state.
// DomainError if the radius is not strictly positive or the closure produces
// a non-finite value.
func (m *Model) Derivative(xi float64, state State) (drDxi, duDxi float64, err error) {
	r, u := state.R, state.U
	if err := plasma.CheckPositive("bubble radius", r); err != nil {
		return 0, 0, err
	}
	duDxi = (m.LineDensity(xi)/r - m.C(r)*r - m.B(r)*r*u*u) / m.A(r)
	if math.IsNaN(duDxi) || math.IsInf(duDxi, 0) {
		return 0, 0, &plasma.DomainError{Quantity: "du/dxi", Value: duDxi, Reason: "is not finite"}
	}
	return u, duDxi, nil
}
