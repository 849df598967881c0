// Package wake implements the closed-form bubble-wake relations of Lebedev,
// Burov and Nagaitsev (PRAB 2017), valid in the strong-bubble regime
// rb_max * k_pe >> 1.
//
// The published relations are written in Gaussian units. They are evaluated
// here with SI inputs by attaching one factor of 1/(4 pi e0) to each power of
// e appearing in a field or power expression; pure charge counting (N = Q/e)
// uses the SI elementary charge unchanged.
package wake

import (
	"math"

	"github.com/wildstyl3r/blowout/internal/constants"
	"github.com/wildstyl3r/blowout/internal/plasma"
)

// eGauss is the elementary charge carrying its Gaussian-to-SI conversion
// factor [V m].
var eGauss = constants.ElectronCharge * constants.CoulombConstant

// BeamPlasma bundles the scenario parameters the LBN relations share.
type BeamPlasma struct {
	PlasmaDensity float64 // n_pe [m^-3]
	BeamLength    float64 // total drive-beam length [m]
	BeamElectrons float64 // number of drive-beam electrons
}

func (p BeamPlasma) check() error {
	if err := plasma.CheckPositive("plasma density", p.PlasmaDensity); err != nil {
		return err
	}
	if err := plasma.CheckPositive("beam length", p.BeamLength); err != nil {
		return err
	}
	return plasma.CheckPositive("beam electron count", p.BeamElectrons)
}

// MaxRadius returns the maximum bubble radius rb_max [m]:
//
//	rb_max = 2^(7/8) (N/(pi n_pe))^(3/8) / L^(1/8)
func MaxRadius(p BeamPlasma) (float64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	return math.Pow(2., 7./8.) *
		math.Pow(p.BeamElectrons/(math.Pi*p.PlasmaDensity), 3./8.) /
		math.Pow(p.BeamLength, 1./8.), nil
}

// BeamPlasmaPower returns the power transferred from the drive beam to the
// plasma [W].
func BeamPlasmaPower(nPe, rbMax float64) (float64, error) {
	if err := plasma.CheckPositive("plasma density", nPe); err != nil {
		return 0, err
	}
	if err := plasma.CheckPositive("rb_max", rbMax); err != nil {
		return 0, err
	}
	halfRing := 0.5 * math.Pi * nPe * eGauss * rbMax * rbMax
	return constants.SpeedOfLight * halfRing * halfRing, nil
}

// EzOnAxis returns the on-axis longitudinal electric field [V/m] from the
// local bubble radius and its slope wrt xi = ct - z. The calculation is
// local and holds with or without beam charge overhead.
func EzOnAxis(nPe, rb, drbDxi float64) (float64, error) {
	if err := plasma.CheckPositive("plasma density", nPe); err != nil {
		return 0, err
	}
	if err := plasma.CheckPositive("bubble radius", rb); err != nil {
		return 0, err
	}
	return -2. * math.Pi * nPe * eGauss * rb * drbDxi, nil
}

// SlopeNoBeam returns |drb/dxi| behind the drive beam:
//
//	drb/dxi = sqrt(((rb_max/rb)^4 - 1)/2)
//
// The relation fixes only the magnitude; physically the slope is negative in
// the front half of the bubble and positive in the back half, and the caller
// must pick the branch. DomainError if rb exceeds rb_max (negative radicand).
func SlopeNoBeam(rb, rbMax float64) (float64, error) {
	if err := plasma.CheckPositive("bubble radius", rb); err != nil {
		return 0, err
	}
	if err := plasma.CheckPositive("rb_max", rbMax); err != nil {
		return 0, err
	}
	ratio := rbMax / rb
	radicand := (ratio*ratio*ratio*ratio - 1.) / 2.
	if radicand < 0 {
		return 0, &plasma.DomainError{Quantity: "(rb_max/rb)^4 - 1", Value: 2. * radicand, Reason: "is negative: rb exceeds rb_max"}
	}
	return math.Sqrt(radicand), nil
}

// EzOnAxisNoBeam composes SlopeNoBeam and EzOnAxis. The slope magnitude is
// used, so the result carries the sign ambiguity of SlopeNoBeam: the
// returned field is the negative branch, and the caller flips the sign for
// the half of the bubble where the wall contracts.
func EzOnAxisNoBeam(nPe, rb, rbMax float64) (float64, error) {
	slope, err := SlopeNoBeam(rb, rbMax)
	if err != nil {
		return 0, err
	}
	return EzOnAxis(nPe, rb, slope)
}

// Halfwidth returns the bubble halfwidth xi_b = 0.847 rb_max [m].
func Halfwidth(rbMax float64) (float64, error) {
	if err := plasma.CheckPositive("rb_max", rbMax); err != nil {
		return 0, err
	}
	return 0.847 * rbMax, nil
}

// LocalRadius returns the bubble radius at xi = ct - z:
//
//	rb(xi) = rb_max (1 - ((xi - xi_b)/xi_b)^2)^(1/3)
//
// and zero outside (0, 2 xi_b), where the bubble is closed.
func LocalRadius(xi, rbMax float64) (float64, error) {
	xiB, err := Halfwidth(rbMax)
	if err != nil {
		return 0, err
	}
	if xi <= 0 || xi >= 2.*xiB {
		return 0, nil
	}
	excursion := (xi - xiB) / xiB
	return rbMax * math.Cbrt(1.-excursion*excursion), nil
}

// DecelFieldAlongBeam returns the decelerating on-axis field along the drive
// beam [V/m], assumed constant over the beam length.
func DecelFieldAlongBeam(p BeamPlasma) (float64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	s2 := p.BeamElectrons / (p.PlasmaDensity * p.BeamLength * p.BeamLength * p.BeamLength)
	return math.Pi * p.PlasmaDensity * p.BeamLength * eGauss *
		(math.Sqrt(1.+8.*s2/math.Pi) - 1.), nil
}
