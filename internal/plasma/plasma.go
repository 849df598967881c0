// Package plasma provides quantities derived from the electron plasma
// density: frequency, wavenumber, wavelength and the validity diagnostics of
// the blowout ("strong bubble") regime.
package plasma

import (
	"math"

	"github.com/wildstyl3r/blowout/internal/constants"
)

// Frequency returns the electron plasma frequency [rad/s].
func Frequency(nPe float64) (float64, error) {
	if err := CheckPositive("plasma density", nPe); err != nil {
		return 0, err
	}
	return math.Sqrt(nPe * constants.ElectronCharge * constants.ElectronCharge /
		(constants.ElectronMass * constants.FreeSpacePermittivityE0)), nil
}

// Wavenumber returns the plasma wavenumber k_pe = omega_pe/c [rad/m].
func Wavenumber(nPe float64) (float64, error) {
	om, err := Frequency(nPe)
	if err != nil {
		return 0, err
	}
	return om / constants.SpeedOfLight, nil
}

// Wavelength returns the plasma wavelength 2 pi / k_pe [m].
func Wavelength(nPe float64) (float64, error) {
	k, err := Wavenumber(nPe)
	if err != nil {
		return 0, err
	}
	return 2. * math.Pi / k, nil
}

// DensityRatio returns the peak drive-beam density over the plasma density.
// The blowout regime requires this to be >> 1.
func DensityRatio(nPe, beamRmsR, beamRmsZ, beamTotQ float64) (float64, error) {
	for _, q := range []struct {
		name  string
		value float64
	}{
		{"plasma density", nPe},
		{"beam rms radius", beamRmsR},
		{"beam rms length", beamRmsZ},
		{"beam charge", beamTotQ},
	} {
		if err := CheckPositive(q.name, q.value); err != nil {
			return 0, err
		}
	}
	rmsVolume := math.Pi * beamRmsZ * beamRmsR * beamRmsR
	peakDensity := beamTotQ / constants.ElectronCharge / rmsVolume
	return peakDensity / nPe, nil
}

// StrongBubbleChecks returns the two validity ratios of the strong-bubble
// asymptotics: rb_max*k_pe and the scaled beam density N/(n_pe L^3).
// Both must be large for the LBN relations to hold.
func StrongBubbleChecks(nPe, rbMax, beamTotZ, beamNumPtcl float64) (radiusCheck, densityCheck float64, err error) {
	k, err := Wavenumber(nPe)
	if err != nil {
		return 0, 0, err
	}
	if err := CheckPositive("beam length", beamTotZ); err != nil {
		return 0, 0, err
	}
	return rbMax * k, beamNumPtcl / (nPe * beamTotZ * beamTotZ * beamTotZ), nil
}
