package bench

import (
	"fmt"
	"math"
)

//////
// Const, vars, types.
//////

// SystemFactory builds a named model system. The config's TrueMin/TrueMax
// override the system's published bounds when set; the noise specification
// takes any shape ParseNoiseModel accepts.
type SystemFactory func(cfg SystemConfig, noiseSpec any) (*ModelSystem, error)

// Published optima of the built-in systems.
const (
	braninTrueMin = 0.397887
	hart3TrueMin  = -3.86278
	hart6TrueMin  = -3.32237
	peaksTrueMin  = -6.5511
)

// Hartmann coefficients, shared between the 3- and 6-dimensional variants.
var hartAlpha = []float64{1.0, 1.2, 3.0, 3.2}

var hart3A = [4][3]float64{
	{3.0, 10, 30},
	{0.1, 10, 35},
	{3.0, 10, 30},
	{0.1, 10, 35},
}

var hart3P = [4][3]float64{
	{0.3689, 0.1170, 0.2673},
	{0.4699, 0.4387, 0.7470},
	{0.1091, 0.8732, 0.5547},
	{0.0381, 0.5743, 0.8828},
}

var hart6A = [4][6]float64{
	{10, 3, 17, 3.5, 1.7, 8},
	{0.05, 10, 17, 0.1, 8, 14},
	{3, 3.5, 1.7, 10, 17, 8},
	{17, 8, 0.05, 10, 0.1, 14},
}

var hart6P = [4][6]float64{
	{0.1312, 0.1696, 0.5569, 0.0124, 0.8283, 0.5886},
	{0.2329, 0.4135, 0.8307, 0.3736, 0.1004, 0.9991},
	{0.2348, 0.1451, 0.3522, 0.2883, 0.3047, 0.6650},
	{0.4047, 0.8828, 0.8732, 0.5743, 0.1091, 0.0381},
}

// systems maps registry names to factories. RegisterSystem mutates it;
// mutation is not synchronized, register before handing names to workers.
var systems = map[string]SystemFactory{
	"branin": Branin,
	"hart3":  Hart3,
	"hart6":  Hart6,
	"peaks":  Peaks,
	"sphere": func(cfg SystemConfig, noiseSpec any) (*ModelSystem, error) {
		return Sphere(cfg, 2, noiseSpec)
	},
}

//////
// Score functions.
//////

// braninScore is the Branin-Hoo function over x1 in [-5, 10], x2 in [0, 15].
// Three global minima of value 0.397887, at (-pi, 12.275), (pi, 2.275) and
// (9.42478, 2.475).
func braninScore(x []float64) float64 {
	const (
		a = 1.0
		r = 6.0
		s = 10.0
	)

	var (
		b = 5.1 / (4 * math.Pi * math.Pi)
		c = 5 / math.Pi
		t = 1 / (8 * math.Pi)
	)

	inner := x[1] - b*x[0]*x[0] + c*x[0] - r

	return a*inner*inner + s*(1-t)*math.Cos(x[0]) + s
}

// hart3Score is the 3-dimensional Hartmann function over the unit cube.
// Global minimum -3.86278 at (0.114614, 0.555649, 0.852547).
func hart3Score(x []float64) float64 {
	var sum float64

	for i := 0; i < 4; i++ {
		var arg float64

		for j := 0; j < 3; j++ {
			diff := x[j] - hart3P[i][j]
			arg += hart3A[i][j] * diff * diff
		}

		sum += hartAlpha[i] * math.Exp(-arg)
	}

	return -sum
}

// hart6Score is the 6-dimensional Hartmann function over the unit cube.
// Global minimum -3.32237 at
// (0.20169, 0.150011, 0.476874, 0.275332, 0.311652, 0.6573).
func hart6Score(x []float64) float64 {
	var sum float64

	for i := 0; i < 4; i++ {
		var arg float64

		for j := 0; j < 6; j++ {
			diff := x[j] - hart6P[i][j]
			arg += hart6A[i][j] * diff * diff
		}

		sum += hartAlpha[i] * math.Exp(-arg)
	}

	return -sum
}

// peaksScore is MATLAB's peaks function over [-3, 3] squared. Global minimum
// about -6.5511 at (0.2283, -1.6255).
func peaksScore(x []float64) float64 {
	u, v := x[0], x[1]

	return 3*(1-u)*(1-u)*math.Exp(-u*u-(v+1)*(v+1)) -
		10*(u/5-u*u*u-math.Pow(v, 5))*math.Exp(-u*u-v*v) -
		math.Exp(-(u+1)*(u+1)-v*v)/3
}

// sphereScore is the sum of squares, minimized at the origin with value 0.
func sphereScore(x []float64) float64 {
	var sum float64

	for _, v := range x {
		sum += v * v
	}

	return sum
}

//////
// Factories.
//////

// Branin returns the Branin-Hoo model system: two continuous dimensions,
// published true minimum 0.397887.
func Branin(cfg SystemConfig, noiseSpec any) (*ModelSystem, error) {
	if cfg.TrueMin == nil {
		cfg.TrueMin = f64ptr(braninTrueMin)
	}

	space := []Dimension{
		Real{Low: -5, High: 10},
		Real{Low: 0, High: 15},
	}

	return NewModelSystem(cfg, braninScore, space, noiseSpec)
}

// Hart3 returns the 3-dimensional Hartmann model system over the unit cube,
// published true minimum -3.86278.
func Hart3(cfg SystemConfig, noiseSpec any) (*ModelSystem, error) {
	if cfg.TrueMin == nil {
		cfg.TrueMin = f64ptr(hart3TrueMin)
	}

	return NewModelSystem(cfg, hart3Score, unitCube(3), noiseSpec)
}

// Hart6 returns the 6-dimensional Hartmann model system over the unit cube,
// published true minimum -3.32237.
func Hart6(cfg SystemConfig, noiseSpec any) (*ModelSystem, error) {
	if cfg.TrueMin == nil {
		cfg.TrueMin = f64ptr(hart6TrueMin)
	}

	return NewModelSystem(cfg, hart6Score, unitCube(6), noiseSpec)
}

// Peaks returns the peaks model system over [-3, 3] squared, published true
// minimum -6.5511.
func Peaks(cfg SystemConfig, noiseSpec any) (*ModelSystem, error) {
	if cfg.TrueMin == nil {
		cfg.TrueMin = f64ptr(peaksTrueMin)
	}

	space := []Dimension{
		Real{Low: -3, High: 3},
		Real{Low: -3, High: 3},
	}

	return NewModelSystem(cfg, peaksScore, space, noiseSpec)
}

// Sphere returns the sum-of-squares model system over [-1, 1] in ndims
// dimensions, true minimum 0 at the origin. The registry entry "sphere" is
// the 2-dimensional variant.
func Sphere(cfg SystemConfig, ndims int, noiseSpec any) (*ModelSystem, error) {
	if ndims < 1 {
		return nil, fmt.Errorf("%w: sphere requires at least one dimension", ErrConfiguration)
	}

	if cfg.TrueMin == nil {
		cfg.TrueMin = f64ptr(0)
	}

	dims := make([]Dimension, ndims)
	for i := range dims {
		dims[i] = Real{Low: -1, High: 1}
	}

	return NewModelSystem(cfg, sphereScore, dims, noiseSpec)
}

// unitCube builds n Real dimensions over [0, 1].
func unitCube(n int) []Dimension {
	dims := make([]Dimension, n)
	for i := range dims {
		dims[i] = Real{Low: 0, High: 1}
	}

	return dims
}

// LookupSystem returns the factory registered under name.
func LookupSystem(name string) (SystemFactory, bool) {
	factory, ok := systems[name]

	return factory, ok
}

// RegisterSystem adds a factory to the registry, replacing any previous
// entry under the same name.
func RegisterSystem(name string, factory SystemFactory) {
	systems[name] = factory
}
