package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario")
	require.NoError(t, os.WriteFile(path+".toml", []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
OutputDir = "out"

[Scenarios.facet2]
PlasmaDensity = 4e16
`)
	cfg, meta := LoadConfig(path)
	require.Contains(t, cfg.Scenarios, "facet2")
	parameters := cfg.Scenarios["facet2"]

	assert.True(t, meta.IsDefined("Scenarios", "facet2", "PlasmaDensity"))
	// default units: cm^-3 in, so 4e16 cm^-3 becomes 4e22 m^-3
	assert.InEpsilon(t, 4.e22, parameters.PlasmaDensity, 1.e-12)
	// 3 nC default charge
	assert.InEpsilon(t, 3.e-9, parameters.BeamTotalCharge, 1.e-12)
	assert.Zero(t, parameters.BeamRmsLength)
	assert.Equal(t, 0.5, parameters.RmsLengthSkinDepths)
	assert.Equal(t, 4., parameters.BeamLengthFactor)
	assert.Equal(t, 0.5, parameters.SheathWidth)
	assert.Equal(t, 1., parameters.DriveRmsLength)
	assert.Equal(t, 4., parameters.DriveElectrons)
	assert.Equal(t, 1., parameters.InitialRadius)
	assert.Equal(t, -2., parameters.XiMin)
	assert.Equal(t, 2., parameters.XiMax)
	assert.Equal(t, 41, parameters.XiSamples)
	assert.Equal(t, 200, parameters.ProfileSamples)
	assert.False(t, parameters.MakeDir)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestLoadConfigDeclaredUnits(t *testing.T) {
	path := writeConfig(t, `
InputUnits = ["mm", "m^-3", "pC"]

[Scenarios.lab]
PlasmaDensity = 4e22
BeamTotalCharge = 3000.0
BeamRmsLength = 0.0133
XiSamples = 81
`)
	cfg, _ := LoadConfig(path)
	parameters := cfg.Scenarios["lab"]
	assert.InEpsilon(t, 4.e22, parameters.PlasmaDensity, 1.e-12)
	assert.InEpsilon(t, 3.e-9, parameters.BeamTotalCharge, 1.e-12)
	assert.InEpsilon(t, 1.33e-5, parameters.BeamRmsLength, 1.e-12)
	assert.Equal(t, 81, parameters.XiSamples)
	// output units fall back to input units
	assert.Equal(t, cfg.InputUnits, cfg.OutputUnits)
}

func TestSIRoundTrip(t *testing.T) {
	units := []string{"um", "cm^-3", "nC"}
	classes := []UnitElement{{Class: Length, Power: 1}}
	si := SI(97.2, classes, units, true)
	assert.InEpsilon(t, 97.2e-6, si, 1.e-12)
	assert.InEpsilon(t, 97.2, SI(si, classes, units, false), 1.e-12)

	// negative powers invert
	perVolume := []UnitElement{{Class: Length, Power: -3}}
	assert.InEpsilon(t, 1.e18, SI(1., perVolume, units, true), 1.e-12)
}
