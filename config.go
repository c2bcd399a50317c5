package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//////
// Const, vars, types.
//////

// NoiseSpec captures the YAML form of a noise specification, which mirrors
// the union ParseNoiseModel accepts: either a scalar model name or a mapping
// with model_type and optional parameters.
//
//	noise: proportional
//
//	noise:
//	  model_type: constant
//	  noise_size: 0.5
//	  seed: 42
//
// A zero NoiseSpec (the key absent from the document) resolves to zero
// noise.
type NoiseSpec struct {
	value any
}

// SystemSpec describes one benchmark subject in a suite: a registered system
// name, the noise to inject, and optional bound/seed overrides.
type SystemSpec struct {
	// System is the registry name, e.g. "branin" or "hart6".
	System string `yaml:"system"`

	// Noise is the noise specification. Absent means zero noise.
	Noise NoiseSpec `yaml:"noise"`

	// TrueMin overrides the system's published minimum when set.
	TrueMin *float64 `yaml:"true_min"`

	// TrueMax overrides the system's published maximum when set.
	TrueMax *float64 `yaml:"true_max"`

	// Seed seeds the space sampler for reproducible construction.
	Seed uint64 `yaml:"seed"`
}

// SuiteConfig is a YAML-driven benchmark suite: the list of model systems a
// benchmark run exercises.
type SuiteConfig struct {
	Systems []SystemSpec `yaml:"systems"`
}

//////
// Methods.
//////

// UnmarshalYAML decodes either a scalar model name or a configuration
// mapping, deferring validation to ParseNoiseModel.
func (s *NoiseSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		s.value = name
	case yaml.MappingNode:
		var cfg map[string]any
		if err := node.Decode(&cfg); err != nil {
			return err
		}

		s.value = cfg
	default:
		return fmt.Errorf("%w: noise spec must be a model name or a mapping", ErrConfiguration)
	}

	return nil
}

// Model parses the captured specification into a NoiseModel. An unset spec
// yields zero noise.
func (s *NoiseSpec) Model() (NoiseModel, error) {
	if s.value == nil {
		return ZeroNoise{}, nil
	}

	return ParseNoiseModel(s.value)
}

// Build constructs the configured model system from the registry.
func (s *SystemSpec) Build() (*ModelSystem, error) {
	factory, ok := LookupSystem(s.System)
	if !ok {
		return nil, fmt.Errorf("%w: unknown system %q", ErrConfiguration, s.System)
	}

	noise, err := s.Noise.Model()
	if err != nil {
		return nil, err
	}

	cfg := SystemConfig{
		TrueMin: s.TrueMin,
		TrueMax: s.TrueMax,
		Seed:    s.Seed,
	}

	return factory(cfg, noise)
}

// Build constructs every configured model system, in document order.
func (c *SuiteConfig) Build() ([]*ModelSystem, error) {
	models := make([]*ModelSystem, len(c.Systems))

	for i := range c.Systems {
		model, err := c.Systems[i].Build()
		if err != nil {
			return nil, fmt.Errorf("system %d (%s): %w", i, c.Systems[i].System, err)
		}

		models[i] = model
	}

	return models, nil
}

//////
// Factories.
//////

// ParseSuiteYAML parses a SuiteConfig from YAML bytes and validates it. This
// is the entry point for suites supplied as payload rather than files.
func ParseSuiteYAML(data []byte) (*SuiteConfig, error) {
	var cfg SuiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse suite yaml: %w", err)
	}

	if len(cfg.Systems) == 0 {
		return nil, fmt.Errorf("%w: suite lists no systems", ErrConfiguration)
	}

	for i := range cfg.Systems {
		if cfg.Systems[i].System == "" {
			return nil, fmt.Errorf("%w: system %d has no name", ErrConfiguration, i)
		}
	}

	return &cfg, nil
}

// LoadSuite reads and parses a suite config file.
func LoadSuite(path string) (*SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite config: %w", err)
	}

	return ParseSuiteYAML(data)
}
