package bench

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//////
// Helper functions.
//////

// normalSampler returns a sampler drawing from a zero-mean normal
// distribution with the given standard deviation. A nil source falls back to
// the process-global one.
func normalSampler(size float64, src rand.Source) SampleFunc {
	dist := distuv.Normal{Mu: 0, Sigma: size, Src: src}

	return dist.Rand
}

// floatKey reads an optional numeric key from a configuration mapping.
// Accepts int and float64 values, which covers what YAML and literal maps
// produce. Reports whether the key was present.
func floatKey(cfg map[string]any, key string) (float64, bool, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number, got %T", ErrConfiguration, key, raw)
	}
}

// uintKey reads an optional non-negative integer key from a configuration
// mapping. Reports whether the key was present.
func uintKey(cfg map[string]any, key string) (uint64, bool, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, false, fmt.Errorf("%w: %s must be non-negative", ErrConfiguration, key)
		}

		return uint64(v), true, nil
	case uint64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %T", ErrConfiguration, key, raw)
	}
}

// f64ptr returns a pointer to v, for filling optional SystemConfig fields.
func f64ptr(v float64) *float64 {
	return &v
}
