package bench

import (
	"math"
	"sync"
)

//////
// Const, vars, types.
//////

// expectedMinCandidatesPerDim is the Latin hypercube budget used when
// extracting the expected minimum from a surrogate: 20 candidates per
// dimension of the space.
const expectedMinCandidatesPerDim = 20

// Surrogate is a thread-safe kernel-regression model over score
// observations. Optimizers use it to predict the score and its uncertainty
// at untested points; SurrogateResult uses it to extract an expected
// minimum for loss scoring.
//
// The model is a Nadaraya-Watson estimator under an RBF kernel: the
// predicted mean is the kernel-weighted average of observed scores, and the
// variance shrinks toward zero near dense observations. Memory grows
// linearly with the number of observations.
type Surrogate struct {
	// mu protects all fields below.
	mu sync.RWMutex

	// x holds the observed points. Inner slices all share one length.
	x [][]float64

	// y holds the observed scores, parallel to x.
	y []float64

	// sigma is the kernel width. Larger values smooth more; smaller values
	// keep influence local.
	sigma float64
}

// SurrogateResult implements Result on top of a Surrogate: the expected
// minimum is the lowest posterior mean over a fresh Latin hypercube batch of
// candidate points.
type SurrogateResult struct {
	surrogate *Surrogate
	space     *Space
}

//////
// Methods.
//////

// Update adds one observation to the model. The point is copied, so the
// caller may reuse its slice.
func (s *Surrogate) Update(x []float64, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]float64, len(x))
	copy(cp, x)

	s.x = append(s.x, cp)
	s.y = append(s.y, y)
}

// Len returns the number of observations.
func (s *Surrogate) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.y)
}

// Predict estimates the score and the prediction uncertainty at x.
//
// With no observations, or at points beyond the reach of every kernel, it
// returns the prior (0, 1). Variance is clamped to [0, 1]: 1 far from all
// observations, approaching 0 where they are dense.
func (s *Surrogate) Predict(x []float64) (mean, variance float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.x) == 0 {
		return 0, 1
	}

	k := make([]float64, len(s.x))

	var total float64

	for i := range s.x {
		k[i] = rbfKernel(x, s.x[i], s.sigma)
		total += k[i]
	}

	// All kernels vanished: x is far outside the observed region, fall back
	// to the prior.
	if total < 1e-12 {
		return 0, 1
	}

	for i := range k {
		mean += k[i] * s.y[i]
	}

	mean /= total

	variance = 1 - total*total/float64(len(s.x))
	if variance < 0 {
		variance = 0
	}

	return mean, variance
}

// SetSigma updates the kernel width. It affects all subsequent predictions;
// sigma must be positive.
func (s *Surrogate) SetSigma(sigma float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sigma = sigma
}

// Sigma returns the current kernel width.
func (s *Surrogate) Sigma() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sigma
}

// ExpectedMinimum scans a fresh Latin hypercube batch of candidates (20 per
// dimension) through the surrogate's posterior mean and returns the best
// one. The extraction re-samples on every call, so repeated calls on a
// seeded space are reproducible only if the space is reseeded in between.
func (r *SurrogateResult) ExpectedMinimum() ([]float64, float64) {
	candidates := r.space.LHS(expectedMinCandidatesPerDim * r.space.NDims())

	bestX := candidates[0]
	bestMean, _ := r.surrogate.Predict(candidates[0])

	for _, c := range candidates[1:] {
		mean, _ := r.surrogate.Predict(c)

		if mean < bestMean {
			bestMean = mean
			bestX = c
		}
	}

	return bestX, bestMean
}

//////
// Factories.
//////

// NewSurrogate returns an empty Surrogate with kernel width 1, suitable for
// inputs on a roughly unit scale. Adjust with SetSigma for wider or narrower
// spaces.
func NewSurrogate() *Surrogate {
	return &Surrogate{
		sigma: 1.0, // Default kernel width.
	}
}

// NewSurrogateResult wraps a trained surrogate and the space it was trained
// over into a Result.
func NewSurrogateResult(surrogate *Surrogate, space *Space) *SurrogateResult {
	return &SurrogateResult{
		surrogate: surrogate,
		space:     space,
	}
}

// rbfKernel is the radial basis function kernel: 1 for identical points,
// decaying exponentially with squared distance. Panics if the vectors have
// different lengths.
func rbfKernel(x1, x2 []float64, sigma float64) float64 {
	if len(x1) != len(x2) {
		panic("input vectors must have the same length")
	}

	var sum float64

	for i := range x1 {
		diff := x1[i] - x2[i]

		sum += diff * diff
	}

	return math.Exp(-sum / (2 * sigma * sigma))
}
