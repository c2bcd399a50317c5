package bench

import "fmt"

//////
// Const, vars, types.
//////

// boundsSamplesPerDim is the Latin hypercube budget used when estimating
// missing true bounds: 10 points per dimension of the space.
const boundsSamplesPerDim = 10

// ScoreFunc is the deterministic objective being benchmarked. It must be a
// pure function of the point; all stochasticity is injected afterwards by a
// NoiseModel.
type ScoreFunc func(x []float64) float64

// SystemConfig holds the optional knobs of a ModelSystem.
type SystemConfig struct {
	// TrueMin is the known minimum of the score over the space. When nil it
	// is estimated by Latin hypercube sampling, which is approximate;
	// callers that need exact losses must supply it.
	TrueMin *float64

	// TrueMax is the known maximum of the score over the space. Estimated
	// like TrueMin when nil.
	TrueMax *float64

	// Seed, when non-zero, seeds the space's sampler before the bound
	// estimation draws, making construction reproducible.
	Seed uint64
}

// ModelSystem wraps a deterministic score function, a parameter space, and a
// noise model into a reproducible benchmark subject with known (or
// estimated) true bounds. Optimizer results are scored against it with
// ResultLoss.
//
// A ModelSystem is built once per benchmark. The noise model may be swapped
// at any time with SetNoiseModel; the bounds are not recomputed on swap,
// since noise never moves the deterministic score's extrema.
type ModelSystem struct {
	score   ScoreFunc
	space   *Space
	noise   NoiseModel
	trueMin float64
	trueMax float64
}

//////
// Methods.
//////

// Score evaluates the noiseless score at x.
func (m *ModelSystem) Score(x []float64) float64 {
	return m.score(x)
}

// GetScore evaluates the noisy score at x: the noiseless score routed
// through the current noise model. Each call consumes randomness from the
// noise model's sampling source if it has one.
func (m *ModelSystem) GetScore(x []float64) float64 {
	return m.noise.Apply(x, m.score(x))
}

// ResultLoss scores an optimization result: the noiseless score at the
// result's expected minimum, minus the system's true minimum.
//
// With an exact TrueMin the loss is zero for a globally optimal result and
// positive otherwise. With an estimated TrueMin the loss can come out
// negative when the estimate overshoots the real minimum; that is an
// artifact of the sampling heuristic, not of the result.
func (m *ModelSystem) ResultLoss(result Result) float64 {
	x, _ := result.ExpectedMinimum()

	return m.score(x) - m.trueMin
}

// SetNoiseModel re-parses the specification (see ParseNoiseModel for the
// accepted shapes) and replaces the current noise model. No other state
// changes; on a parse failure the previous model stays in place.
func (m *ModelSystem) SetNoiseModel(spec any) error {
	noise, err := ParseNoiseModel(spec)
	if err != nil {
		return err
	}

	m.noise = noise

	return nil
}

// NoiseModel returns the current noise model.
func (m *ModelSystem) NoiseModel() NoiseModel {
	return m.noise
}

// Space returns the system's parameter space.
func (m *ModelSystem) Space() *Space {
	return m.space
}

// TrueMin returns the known or estimated minimum of the noiseless score.
func (m *ModelSystem) TrueMin() float64 {
	return m.trueMin
}

// TrueMax returns the known or estimated maximum of the noiseless score.
func (m *ModelSystem) TrueMax() float64 {
	return m.trueMax
}

//////
// Factory.
//////

// NewModelSystem builds a ModelSystem from a score function, a space
// specification (see AsSpace) and a noise specification (see
// ParseNoiseModel).
//
// Bounds left nil in cfg are estimated from 10 points per dimension of
// noiseless score evaluations, one independent Latin hypercube draw per
// bound. The estimates are coarse by design; exact benchmarks must supply
// their known bounds.
func NewModelSystem(cfg SystemConfig, score ScoreFunc, space any, noiseSpec any) (*ModelSystem, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: a model system requires a score function", ErrConfiguration)
	}

	sp, err := AsSpace(space)
	if err != nil {
		return nil, err
	}

	noise, err := ParseNoiseModel(noiseSpec)
	if err != nil {
		return nil, err
	}

	if cfg.Seed != 0 {
		sp.Seed(cfg.Seed)
	}

	m := &ModelSystem{
		score: score,
		space: sp,
		noise: noise,
	}

	if cfg.TrueMin != nil {
		m.trueMin = *cfg.TrueMin
	} else {
		m.trueMin = estimateBound(score, sp, false)
	}

	if cfg.TrueMax != nil {
		m.trueMax = *cfg.TrueMax
	} else {
		m.trueMax = estimateBound(score, sp, true)
	}

	return m, nil
}

// estimateBound approximates one extremum of the noiseless score over the
// space from a fresh Latin hypercube draw. Each bound gets its own
// independent draw.
//
// TODO: 10 points per dimension badly underestimates the extrema of
// multimodal scores; raise the budget once the benchmark suite's runtime
// allows it.
func estimateBound(score ScoreFunc, space *Space, max bool) float64 {
	points := space.LHS(boundsSamplesPerDim * space.NDims())

	best := score(points[0])

	for _, p := range points[1:] {
		v := score(p)

		if (max && v > best) || (!max && v < best) {
			best = v
		}
	}

	return best
}
