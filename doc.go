// Package bench provides reproducible model systems for benchmarking
// Bayesian optimizers. A model system wraps a deterministic score function
// and a parameter space into a subject with known (or estimated) true
// bounds, injects configurable noise to simulate measurement uncertainty,
// and scores optimizer results for loss against the true minimum.
//
// # Features
//
// The package includes the following key features:
//
//   - Noise Models: additive, multiplicative (proportional), data-dependent
//     and zero noise, all behind one small NoiseModel capability
//   - Flexible Specification: noise models parse from names, configuration
//     mappings, or ready instances; spaces from dimensions or bound pairs
//   - Built-in Systems: Branin, Hartmann 3/6, peaks and sphere with their
//     published true minima, plus a registry for custom systems
//   - Loss Scoring: any optimizer result exposing an expected minimum can be
//     scored against a system's true minimum
//   - Surrogate Extraction: a kernel-regression surrogate for optimizers
//     that need an expected minimum derived from raw observations
//   - Reproducibility: every random source is independently seedable
//   - Suite Configuration: YAML-driven benchmark suites
//
// # Quick start
//
// Wrap a score function into a system and evaluate it under noise:
//
//	system, err := bench.NewModelSystem(
//	    bench.SystemConfig{Seed: 42},
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
//	    [][2]float64{{-1, 1}, {-1, 1}},
//	    "proportional",
//	)
//	if err != nil {
//	    // ...
//	}
//
//	noisy := system.GetScore([]float64{0.3, -0.2})
//
// Score an optimizer's outcome:
//
//	var record bench.Record
//	// ... optimizer loop calling record.Add(x, system.GetScore(x)) ...
//	loss := system.ResultLoss(&record)
//
// Or drive a whole suite from YAML:
//
//	systems:
//	  - system: branin
//	    noise: proportional
//	    seed: 42
//	  - system: hart6
//	    noise:
//	      model_type: constant
//	      noise_size: 0.5
//
// # True bounds are approximate
//
// When a system's true minimum or maximum is not supplied, it is estimated
// from a Latin hypercube sample of 10 points per dimension. That is a coarse
// heuristic: losses computed against an estimated minimum can come out
// negative when the estimate overshoots the real one. Benchmarks that need
// exact losses must supply known bounds, as the built-in systems do.
//
// # Reproducibility
//
// Noise models and spaces take explicit seeds, so a benchmark run can be
// replayed exactly. The default constructors fall back to the process-global
// random source for convenience.
package bench
