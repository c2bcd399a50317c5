package bench

import "fmt"

//////
// Noise-spec parsing.
//////

// Recognized model_type values and their corresponding variants.
const (
	noiseNameConstant     = "constant"     // AdditiveNoise
	noiseNameProportional = "proportional" // MultiplicativeNoise
	noiseNameZero         = "zero"         // ZeroNoise
)

// ParseNoiseModel converts a loosely typed noise specification into a
// concrete NoiseModel. Three shapes are accepted:
//
// - A NoiseModel instance, which is passed through unchanged.
// - A model name string: "constant" (additive noise with the default size),
//   "proportional" (multiplicative noise with the default relative size), or
//   "zero" (no noise).
// - A configuration mapping with a "model_type" key naming one of the above,
//   plus optional "noise_size" (number) and "seed" (integer) keys.
//
// Any other shape, an unrecognized name, or an unknown configuration key
// fails with ErrConfiguration.
func ParseNoiseModel(spec any) (NoiseModel, error) {
	switch s := spec.(type) {
	case NoiseModel:
		return s, nil
	case string:
		return noiseModelByName(s)
	case map[string]any:
		return noiseModelFromConfig(s)
	default:
		return nil, fmt.Errorf("%w: unsupported noise specification of type %T", ErrConfiguration, spec)
	}
}

// noiseModelByName builds the named variant with default parameters.
func noiseModelByName(name string) (NoiseModel, error) {
	switch name {
	case noiseNameConstant:
		return NewAdditiveNoise(DefaultNoiseSize), nil
	case noiseNameProportional:
		return NewMultiplicativeNoise(DefaultRelativeNoiseSize), nil
	case noiseNameZero:
		return ZeroNoise{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown noise model %q", ErrConfiguration, name)
	}
}

// noiseModelFromConfig builds a variant from a configuration mapping. The
// mapping must carry "model_type"; "noise_size" and "seed" are optional.
func noiseModelFromConfig(cfg map[string]any) (NoiseModel, error) {
	for key := range cfg {
		switch key {
		case "model_type", "noise_size", "seed":
		default:
			return nil, fmt.Errorf("%w: unknown noise configuration key %q", ErrConfiguration, key)
		}
	}

	name, ok := cfg["model_type"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: noise configuration requires a model_type string", ErrConfiguration)
	}

	size, hasSize, err := floatKey(cfg, "noise_size")
	if err != nil {
		return nil, err
	}

	seed, hasSeed, err := uintKey(cfg, "seed")
	if err != nil {
		return nil, err
	}

	switch name {
	case noiseNameConstant:
		if !hasSize {
			size = DefaultNoiseSize
		}

		if hasSeed {
			return NewSeededAdditiveNoise(size, seed), nil
		}

		return NewAdditiveNoise(size), nil
	case noiseNameProportional:
		if !hasSize {
			size = DefaultRelativeNoiseSize
		}

		if hasSeed {
			return NewSeededMultiplicativeNoise(size, seed), nil
		}

		return NewMultiplicativeNoise(size), nil
	case noiseNameZero:
		if hasSize {
			return nil, fmt.Errorf("%w: zero noise takes no noise_size", ErrConfiguration)
		}

		return ZeroNoise{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown noise model %q", ErrConfiguration, name)
	}
}
