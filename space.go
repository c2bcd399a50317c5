package bench

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

//////
// Const, vars, types.
//////

// Dimension describes one axis of a parameter space. Only the named variants
// (Real, Integer) implement it; the unexported mapping method keeps the set
// closed so sampling stays exhaustive over the known kinds.
type Dimension interface {
	// Bounds returns the inclusive low and high ends of the dimension.
	Bounds() (low, high float64)

	// fromUnit maps a sample u in [0, 1) onto the dimension.
	fromUnit(u float64) float64
}

// Real is a continuous dimension over [Low, High].
type Real struct {
	Low  float64
	High float64
}

// Integer is a discrete dimension over the integers in [Low, High].
type Integer struct {
	Low  int
	High int
}

// Range defines the valid span for one parameter, generic over the numeric
// type. It is a convenience for callers that keep their search space in
// typed min/max pairs; Dimensions converts a list of them into the space's
// internal representation.
//
// Type Parameter:
//   - T: The numeric type for this range (integer or float kinds)
type Range[T constraints.Integer | constraints.Float] struct {
	// Min is the minimum (inclusive) value.
	Min T

	// Max is the maximum (inclusive) value.
	Max T
}

// Space is a normalized parameter space: an ordered list of dimensions plus
// a seedable sampler. Construct one with NewSpace or the AsSpace factory.
type Space struct {
	dims []Dimension
	rng  *rand.Rand
}

//////
// Methods.
//////

// Bounds returns the dimension's low and high ends.
func (d Real) Bounds() (float64, float64) {
	return d.Low, d.High
}

func (d Real) fromUnit(u float64) float64 {
	return d.Low + u*(d.High-d.Low)
}

// Bounds returns the dimension's low and high ends as floats.
func (d Integer) Bounds() (float64, float64) {
	return float64(d.Low), float64(d.High)
}

func (d Integer) fromUnit(u float64) float64 {
	span := float64(d.High - d.Low + 1)

	// Floor, not round: every integer owns an equal share of [0, 1).
	return math.Min(float64(d.Low)+math.Floor(u*span), float64(d.High))
}

// NDims returns the number of dimensions in the space.
func (s *Space) NDims() int {
	return len(s.dims)
}

// Dims returns the dimensions in order.
func (s *Space) Dims() []Dimension {
	return s.dims
}

// Seed reseeds the space's sampler so subsequent LHS draws are reproducible.
func (s *Space) Seed(seed uint64) {
	s.rng.Seed(seed)
}

// LHS draws n points by Latin hypercube sampling: each dimension is split
// into n equally probable strata, the strata are permuted independently per
// dimension, and each point takes a uniform draw within its stratum. Every
// stratum of every dimension is therefore hit exactly once.
//
// Integer dimensions map strata onto their values, so small n over a wide
// integer range leaves gaps. This is stratified sampling, not a grid.
func (s *Space) LHS(n int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		points[i] = make([]float64, len(s.dims))
	}

	for j, dim := range s.dims {
		perm := s.rng.Perm(n)

		for i := 0; i < n; i++ {
			u := (float64(perm[i]) + s.rng.Float64()) / float64(n)
			points[i][j] = dim.fromUnit(u)
		}
	}

	return points
}

//////
// Factories.
//////

// NewSpace builds a Space from the given dimensions. It fails with
// ErrConfiguration when no dimensions are given or a dimension's bounds are
// empty or inverted.
func NewSpace(dims ...Dimension) (*Space, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: a space requires at least one dimension", ErrConfiguration)
	}

	for i, dim := range dims {
		low, high := dim.Bounds()

		if low >= high {
			return nil, fmt.Errorf(
				"%w: dimension %d has empty bounds [%v, %v]",
				ErrConfiguration, i, low, high,
			)
		}
	}

	return &Space{
		dims: dims,
		rng:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}, nil
}

// Dimensions converts typed ranges into dimensions: float ranges become Real
// dimensions, integer ranges become Integer dimensions.
func Dimensions[T constraints.Integer | constraints.Float](ranges ...Range[T]) []Dimension {
	dims := make([]Dimension, len(ranges))

	for i, r := range ranges {
		switch any(r.Min).(type) {
		case float32, float64:
			dims[i] = Real{Low: float64(r.Min), High: float64(r.Max)}
		default:
			dims[i] = Integer{Low: int(r.Min), High: int(r.Max)}
		}
	}

	return dims
}

// AsSpace normalizes a loosely typed space specification:
//
// - A *Space is passed through unchanged.
// - A []Dimension becomes a new Space.
// - A [][2]float64 of {low, high} pairs becomes a Space of Real dimensions.
//
// Any other shape fails with ErrConfiguration.
func AsSpace(spec any) (*Space, error) {
	switch s := spec.(type) {
	case *Space:
		return s, nil
	case []Dimension:
		return NewSpace(s...)
	case [][2]float64:
		dims := make([]Dimension, len(s))
		for i, b := range s {
			dims[i] = Real{Low: b[0], High: b[1]}
		}

		return NewSpace(dims...)
	default:
		return nil, fmt.Errorf("%w: unsupported space specification of type %T", ErrConfiguration, spec)
	}
}
