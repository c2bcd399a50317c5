package bench

import "math"

//////
// Const, vars, types.
//////

// Result is the slice of an optimizer's outcome this package consumes: the
// optimizer's best estimate of where the global minimum lies and what value
// it takes there. Any optimizer can be scored against a ModelSystem by
// presenting its result through this interface.
type Result interface {
	// ExpectedMinimum returns the estimated location of the global minimum
	// and the estimated value there.
	ExpectedMinimum() (x []float64, value float64)
}

// Record is a plain evaluation log implementing Result: its expected minimum
// is simply the best point observed so far. It is the Result of choice for
// optimizers without a surrogate model, and for tests.
type Record struct {
	X [][]float64
	Y []float64
}

//////
// Methods.
//////

// Add appends one observation. The point is copied, so the caller may reuse
// its slice.
func (r *Record) Add(x []float64, y float64) {
	cp := make([]float64, len(x))
	copy(cp, x)

	r.X = append(r.X, cp)
	r.Y = append(r.Y, y)
}

// Len returns the number of observations.
func (r *Record) Len() int {
	return len(r.Y)
}

// ExpectedMinimum returns the best observed point and its value. An empty
// record reports (nil, +Inf).
func (r *Record) ExpectedMinimum() ([]float64, float64) {
	if len(r.Y) == 0 {
		return nil, math.Inf(1)
	}

	best := 0

	for i := range r.Y {
		if r.Y[i] < r.Y[best] {
			best = i
		}
	}

	return r.X[best], r.Y[best]
}
