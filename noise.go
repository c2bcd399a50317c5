package bench

import (
	"fmt"

	"golang.org/x/exp/rand"
)

//////
// Const, vars, types.
//////

const (
	// DefaultNoiseSize is the standard deviation of the default additive
	// noise distribution.
	DefaultNoiseSize = 1.0

	// DefaultRelativeNoiseSize is the standard deviation of the default
	// multiplicative (relative) noise distribution.
	DefaultRelativeNoiseSize = 0.01
)

// SampleFunc draws a single noise value. The default samplers draw from a
// zero-mean normal distribution; callers may supply any zero-argument source,
// for example a constant for deterministic tests.
type SampleFunc func() float64

// NoiseSelector maps an evaluation point to the noise model that should
// perturb the observation at that point. It is invoked fresh on every call,
// so its result may legitimately vary between points.
type NoiseSelector func(x []float64) NoiseModel

// NoiseModel perturbs a deterministic score into a noisy observation. It is
// the strategy a ModelSystem uses to simulate real-world measurement
// uncertainty on top of a noiseless score function.
//
// Contract:
// - Apply is a pure function of (x, signal) plus external randomness
// - Apply must not mutate x
// - All validation happens at construction time, never inside Apply
//
// Only the named variants (ZeroNoise, AdditiveNoise, MultiplicativeNoise,
// DataDependentNoise) implement the interface; there is no constructible
// "base" model.
type NoiseModel interface {
	// Apply returns the perturbed version of signal, the noiseless score
	// at point x.
	Apply(x []float64, signal float64) float64
}

// ZeroNoise returns every signal unchanged. It is the noise model of choice
// for benchmarks that need a perfectly reproducible objective.
type ZeroNoise struct{}

// AdditiveNoise adds an independent draw from its sampler to every signal:
//
//	noisy = signal + sample()
//
// The noise level does not depend on the signal, which models a constant
// measurement uncertainty.
type AdditiveNoise struct {
	sample SampleFunc
}

// MultiplicativeNoise scales every signal by one plus an independent draw
// from its sampler:
//
//	noisy = signal * (1 + sample())
//
// The noise level is proportional to the signal, which models relative
// measurement uncertainty.
type MultiplicativeNoise struct {
	sample SampleFunc
}

// DataDependentNoise delegates to the noise model chosen by its selector for
// the point being evaluated. The selector is re-evaluated on every call and
// its result is never cached, so noise characteristics can change across the
// parameter space:
//
//	// No noise at the origin, default additive noise everywhere else.
//	model, _ := NewDataDependentNoise(func(x []float64) NoiseModel {
//	    if x[0] == 0 {
//	        return ZeroNoise{}
//	    }
//	    return NewAdditiveNoise(DefaultNoiseSize)
//	})
//
// The delegation is a single level of indirection. A selector may itself
// return a DataDependentNoise, but nothing in this package does.
type DataDependentNoise struct {
	choose NoiseSelector
}

//////
// Methods.
//////

// Apply returns signal unchanged.
func (ZeroNoise) Apply(_ []float64, signal float64) float64 {
	return signal
}

// Apply returns signal plus one draw from the sampler.
func (n *AdditiveNoise) Apply(_ []float64, signal float64) float64 {
	return signal + n.sample()
}

// Apply returns signal scaled by one plus one draw from the sampler.
func (n *MultiplicativeNoise) Apply(_ []float64, signal float64) float64 {
	return signal * (1 + n.sample())
}

// Apply selects the model for x and delegates to it.
func (n *DataDependentNoise) Apply(x []float64, signal float64) float64 {
	return n.choose(x).Apply(x, signal)
}

//////
// Factories.
//////

// NewAdditiveNoise returns an AdditiveNoise drawing from a zero-mean normal
// distribution with the given standard deviation. The draws consume the
// process-global random source; use NewSeededAdditiveNoise for reproducible
// runs.
func NewAdditiveNoise(size float64) *AdditiveNoise {
	return &AdditiveNoise{sample: normalSampler(size, nil)}
}

// NewSeededAdditiveNoise is NewAdditiveNoise with an independently seeded
// random source, so that separate model instances produce reproducible,
// non-interfering noise sequences.
func NewSeededAdditiveNoise(size float64, seed uint64) *AdditiveNoise {
	return &AdditiveNoise{sample: normalSampler(size, rand.NewSource(seed))}
}

// NewAdditiveNoiseFrom returns an AdditiveNoise drawing from a caller-supplied
// sampler instead of the default normal distribution. A nil sampler fails
// with ErrConfiguration.
func NewAdditiveNoiseFrom(sample SampleFunc) (*AdditiveNoise, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: additive noise requires a sample function", ErrConfiguration)
	}

	return &AdditiveNoise{sample: sample}, nil
}

// NewMultiplicativeNoise returns a MultiplicativeNoise drawing from a
// zero-mean normal distribution with the given relative standard deviation.
// The draws consume the process-global random source; use
// NewSeededMultiplicativeNoise for reproducible runs.
func NewMultiplicativeNoise(size float64) *MultiplicativeNoise {
	return &MultiplicativeNoise{sample: normalSampler(size, nil)}
}

// NewSeededMultiplicativeNoise is NewMultiplicativeNoise with an
// independently seeded random source.
func NewSeededMultiplicativeNoise(size float64, seed uint64) *MultiplicativeNoise {
	return &MultiplicativeNoise{sample: normalSampler(size, rand.NewSource(seed))}
}

// NewMultiplicativeNoiseFrom returns a MultiplicativeNoise drawing from a
// caller-supplied sampler. A nil sampler fails with ErrConfiguration.
func NewMultiplicativeNoiseFrom(sample SampleFunc) (*MultiplicativeNoise, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: multiplicative noise requires a sample function", ErrConfiguration)
	}

	return &MultiplicativeNoise{sample: sample}, nil
}

// NewDataDependentNoise returns a DataDependentNoise using the given
// selector. A nil selector fails with ErrConfiguration.
func NewDataDependentNoise(choose NoiseSelector) (*DataDependentNoise, error) {
	if choose == nil {
		return nil, fmt.Errorf("%w: data-dependent noise requires a selector", ErrConfiguration)
	}

	return &DataDependentNoise{choose: choose}, nil
}
