package plasma

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nPe = 4.e22 // [m^-3], 4e16 cm^-3 reference plasma

func TestDerivedQuantities(t *testing.T) {
	om, err := Frequency(nPe)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1282920462361254e13, om, 1.e-12)

	k, err := Wavenumber(nPe)
	require.NoError(t, err)
	assert.InEpsilon(t, 37635.771552202474, k, 1.e-12)

	lambda, err := Wavelength(nPe)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.6694716351077144e-4, lambda, 1.e-12)
}

func TestDensityRatio(t *testing.T) {
	k, err := Wavenumber(nPe)
	require.NoError(t, err)
	ratio, err := DensityRatio(nPe, 0.4/k, 0.5/k, 3.e-9)
	require.NoError(t, err)
	assert.InEpsilon(t, 99.2918222, ratio, 1.e-6)
	// blowout regime requires a large ratio
	assert.Greater(t, ratio, 10.)
}

func TestDomainErrors(t *testing.T) {
	var domainErr *DomainError
	_, err := Frequency(0)
	require.Error(t, err)
	assert.True(t, errors.As(err, &domainErr))
	_, err = Wavelength(-1.)
	require.Error(t, err)
	_, err = DensityRatio(nPe, 0., 1.e-5, 3.e-9)
	require.Error(t, err)
	_, _, err = StrongBubbleChecks(nPe, 1.e-4, 0., 1.e10)
	require.Error(t, err)
}

func TestDomainErrorMessage(t *testing.T) {
	err := CheckPositive("bubble radius", -2.)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bubble radius")
	assert.Contains(t, err.Error(), "-2")
}
