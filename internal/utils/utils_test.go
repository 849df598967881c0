package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgmax(t *testing.T) {
	assert.Equal(t, 2, Argmax([]float64{1., 3., 7., 2.}))
	assert.Equal(t, 0, Argmax([]int{5, 5, 5}))
}

func TestMeanAndVariance(t *testing.T) {
	mean, variance := MeanAndVariance([]float64{2., 4., 4., 4., 5., 5., 7., 9.}, false)
	assert.InDelta(t, 5., mean, 1.e-12)
	assert.InDelta(t, 4., variance, 1.e-12)

	_, unbiased := MeanAndVariance([]float64{1., 2., 3.}, true)
	assert.InDelta(t, 1., unbiased, 1.e-12)
}

func TestTernarySearchMax(t *testing.T) {
	peak := TernarySearchMax(func(x float64) float64 { return -(x - 0.3) * (x - 0.3) }, -1., 1., 1.e-10)
	assert.InDelta(t, 0.3, peak, 1.e-8)
}

func TestBinarySearch(t *testing.T) {
	below, above := BinarySearch(func(x float64) bool { return x*x >= 2. }, 0., 2., 1.e-10)
	assert.LessOrEqual(t, below, math.Sqrt2)
	assert.GreaterOrEqual(t, above, math.Sqrt2)
	assert.InDelta(t, math.Sqrt2, above, 1.e-9)
}

func TestIntersect(t *testing.T) {
	match := Intersect([]string{"um", "mm"}, []string{"cm^-3", "mm"})
	if assert.NotNil(t, match) {
		assert.Equal(t, "mm", *match)
	}
	assert.Nil(t, Intersect([]string{"um"}, []string{"nC"}))
}
