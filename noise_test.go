package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// signalList covers small, large and fractional signals.
func signalList() []float64 {
	return []float64{1, 7, 43, 1212.21}
}

// longSignalList is the sample used to fit noise distributions: half of the
// signals at 1, half at 10, so signal-dependent effects would show up in the
// fit.
func longSignalList() []float64 {
	signals := make([]float64, 2000)

	for i := range signals {
		if i < 1000 {
			signals[i] = 1
		} else {
			signals[i] = 10
		}
	}

	return signals
}

// assertNoiseDist fits the collected noise values and checks they follow a
// zero-mean distribution with the expected spread, within 10%.
func assertNoiseDist(t *testing.T, noise []float64, size float64) {
	t.Helper()

	mean, spread := stat.MeanStdDev(noise, nil)

	assert.InDelta(t, 0, mean, 0.1*size)
	assert.InDelta(t, size, spread, 0.1*size)
}

func TestZeroNoiseIdentity(t *testing.T) {
	model := ZeroNoise{}

	for _, signal := range signalList() {
		assert.Equal(t, signal, model.Apply(nil, signal))
		assert.Equal(t, signal, model.Apply([]float64{3, -4}, signal))
	}
}

func TestAdditiveNoiseConstantSampler(t *testing.T) {
	model, err := NewAdditiveNoiseFrom(func() float64 { return 2 })
	require.NoError(t, err)

	for _, signal := range signalList() {
		assert.Equal(t, signal+2, model.Apply(nil, signal))
	}
}

func TestMultiplicativeNoiseConstantSampler(t *testing.T) {
	for _, level := range []float64{1, 2, 3} {
		model, err := NewMultiplicativeNoiseFrom(func() float64 { return level })
		require.NoError(t, err)

		for _, signal := range signalList() {
			assert.InDelta(t, level, model.Apply(nil, signal)/signal-1, 1e-12)
		}
	}
}

func TestAdditiveNoiseDefaultDistribution(t *testing.T) {
	model := NewSeededAdditiveNoise(DefaultNoiseSize, 42)

	var noise []float64
	for _, signal := range longSignalList() {
		noise = append(noise, model.Apply(nil, signal)-signal)
	}

	assertNoiseDist(t, noise, DefaultNoiseSize)
}

func TestAdditiveNoiseSizes(t *testing.T) {
	for _, size := range []float64{1, 2, 47} {
		model := NewSeededAdditiveNoise(size, 42)

		var noise []float64
		for _, signal := range longSignalList() {
			noise = append(noise, model.Apply(nil, signal)-signal)
		}

		assertNoiseDist(t, noise, size)
	}
}

func TestMultiplicativeNoiseDefaultDistribution(t *testing.T) {
	model := NewSeededMultiplicativeNoise(DefaultRelativeNoiseSize, 42)

	// Relative noise: noisy/signal - 1 recovers the raw draw.
	var noise []float64
	for _, signal := range longSignalList() {
		noise = append(noise, model.Apply(nil, signal)/signal-1)
	}

	assertNoiseDist(t, noise, DefaultRelativeNoiseSize)
}

func TestMultiplicativeNoiseGivenSize(t *testing.T) {
	model := NewSeededMultiplicativeNoise(0.1, 42)

	var noise []float64
	for _, signal := range longSignalList() {
		noise = append(noise, model.Apply(nil, signal)/signal-1)
	}

	assertNoiseDist(t, noise, 0.1)
}

func TestDataDependentNoiseEchoesPoint(t *testing.T) {
	// The selected model adds the first coordinate of the point itself.
	model, err := NewDataDependentNoise(func(x []float64) NoiseModel {
		add, err := NewAdditiveNoiseFrom(func() float64 { return x[0] })
		if err != nil {
			panic(err)
		}

		return add
	})
	require.NoError(t, err)

	for _, offset := range []float64{1, 2, 3} {
		for _, signal := range signalList() {
			assert.Equal(t, signal+offset, model.Apply([]float64{offset}, signal))
		}
	}
}

func TestDataDependentNoiseSwitches(t *testing.T) {
	// Zero noise at points whose first coordinate is zero, default additive
	// noise everywhere else. The additive model is shared so its sampling
	// sequence spans all calls.
	additive := NewSeededAdditiveNoise(DefaultNoiseSize, 7)

	model, err := NewDataDependentNoise(func(x []float64) NoiseModel {
		if x[0] == 0 {
			return ZeroNoise{}
		}

		return additive
	})
	require.NoError(t, err)

	quiet := []float64{0, 10, 5}
	for _, signal := range longSignalList() {
		assert.Equal(t, signal, model.Apply(quiet, signal))
	}

	loud := []float64{1, 27, 53.4}

	var noise []float64
	for _, signal := range longSignalList() {
		noise = append(noise, model.Apply(loud, signal)-signal)
	}

	assertNoiseDist(t, noise, DefaultNoiseSize)
}

func TestSeededNoiseReproducible(t *testing.T) {
	first := NewSeededAdditiveNoise(1, 42)
	second := NewSeededAdditiveNoise(1, 42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Apply(nil, 0), second.Apply(nil, 0))
	}
}

func TestNoiseConstructorsRejectNil(t *testing.T) {
	_, err := NewAdditiveNoiseFrom(nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewMultiplicativeNoiseFrom(nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDataDependentNoise(nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestApplyDoesNotMutatePoint(t *testing.T) {
	x := []float64{1, 2, 3}

	model := NewSeededAdditiveNoise(1, 42)
	model.Apply(x, 10)

	assert.Equal(t, []float64{1, 2, 3}, x)
}
