package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurrogatePriorPrediction(t *testing.T) {
	surrogate := NewSurrogate()

	mean, variance := surrogate.Predict([]float64{0.5})
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 1.0, variance)
}

func TestSurrogatePredictAtObservation(t *testing.T) {
	surrogate := NewSurrogate()
	surrogate.Update([]float64{0.5}, 3)

	mean, variance := surrogate.Predict([]float64{0.5})
	assert.InDelta(t, 3, mean, 1e-9)
	assert.InDelta(t, 0, variance, 1e-9)
}

func TestSurrogateFallsBackToPriorFarAway(t *testing.T) {
	surrogate := NewSurrogate()
	surrogate.Update([]float64{0, 0}, 5)

	// All kernel weights vanish this far out.
	mean, variance := surrogate.Predict([]float64{100, 100})
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 1.0, variance)
}

func TestSurrogateMeanInterpolates(t *testing.T) {
	surrogate := NewSurrogate()
	surrogate.Update([]float64{0}, 1)
	surrogate.Update([]float64{1}, 3)

	// Halfway between two symmetric observations the weighted mean is their
	// average.
	mean, _ := surrogate.Predict([]float64{0.5})
	assert.InDelta(t, 2, mean, 1e-9)
}

func TestSurrogateSigma(t *testing.T) {
	surrogate := NewSurrogate()
	assert.Equal(t, 1.0, surrogate.Sigma())

	surrogate.SetSigma(0.25)
	assert.Equal(t, 0.25, surrogate.Sigma())
}

func TestSurrogatePredictPanicsOnDimensionMismatch(t *testing.T) {
	surrogate := NewSurrogate()
	surrogate.Update([]float64{0, 0}, 1)

	assert.Panics(t, func() {
		surrogate.Predict([]float64{0})
	})
}

func TestSurrogateUpdateCopiesPoint(t *testing.T) {
	surrogate := NewSurrogate()

	x := []float64{0.5}
	surrogate.Update(x, 2)

	x[0] = 100

	mean, _ := surrogate.Predict([]float64{0.5})
	assert.InDelta(t, 2, mean, 1e-9)
}

func TestSurrogateResultFindsBowlMinimum(t *testing.T) {
	space, err := NewSpace(Real{Low: -1, High: 1}, Real{Low: -1, High: 1})
	require.NoError(t, err)
	space.Seed(42)

	surrogate := NewSurrogate()
	surrogate.SetSigma(0.5)

	for _, x := range space.LHS(200) {
		surrogate.Update(x, sphereScore(x))
	}

	result := NewSurrogateResult(surrogate, space)

	x, value := result.ExpectedMinimum()
	require.Len(t, x, 2)

	// The smoothed bowl bottoms out near the origin.
	assert.InDelta(t, 0, x[0], 0.5)
	assert.InDelta(t, 0, x[1], 0.5)
	assert.Less(t, value, 0.6)
	assert.GreaterOrEqual(t, value, 0.0)
}

func TestSurrogateResultLoss(t *testing.T) {
	// End to end: train a surrogate on noisy observations of a system and
	// score its expected minimum.
	system := newSphereSystem(t, SystemConfig{TrueMin: f64ptr(0), Seed: 42}, "proportional")

	space := system.Space()
	surrogate := NewSurrogate()
	surrogate.SetSigma(0.5)

	for _, x := range space.LHS(200) {
		surrogate.Update(x, system.GetScore(x))
	}

	loss := system.ResultLoss(NewSurrogateResult(surrogate, space))

	// The expected minimum lands near the origin, so the noiseless score
	// there stays well below the bowl's rim.
	assert.GreaterOrEqual(t, loss, 0.0)
	assert.Less(t, loss, 0.5)
}
