// Package accuracy measures the error of the fast 16-bit sbmath routines
// against the float64 math package.
package accuracy

import (
	"context"
	"math"
	"runtime"

	"github.com/taigrr/sugarbomb/pkg/sbmath"
	"golang.org/x/sync/errgroup"
)

// Check describes one routine and the domain and bound it is held to.
type Check struct {
	Name     string
	Fast     func(float32) float32
	Ref      func(float64) float64
	Lo, Hi   float32
	Bound    float64
	Relative bool // bound applies to |fast-ref|/|ref|
}

// Result is the worst error a Measure found.
type Result struct {
	Name     string
	MaxErr   float64
	At       float32 // input with the largest error
	Bound    float64
	Relative bool
	Samples  int
	Within   bool
}

// ctxCheckInterval is how many samples run between context checks.
const ctxCheckInterval = 4096

// DefaultChecks returns the documented bounds of the 16-bit routines.
func DefaultChecks() []Check {
	return []Check{
		{Name: "Sin16", Fast: sbmath.Sin16, Ref: math.Sin, Lo: -2 * sbmath.Pi, Hi: 2 * sbmath.Pi, Bound: 2e-6},
		{Name: "Cos16", Fast: sbmath.Cos16, Ref: math.Cos, Lo: -2 * sbmath.Pi, Hi: 2 * sbmath.Pi, Bound: 2e-6},
		{Name: "Tan16", Fast: sbmath.Tan16, Ref: math.Tan, Lo: -sbmath.OneFourthPi, Hi: sbmath.OneFourthPi, Bound: 1e-5},
		{Name: "ASin16", Fast: sbmath.ASin16, Ref: math.Asin, Lo: -1, Hi: 1, Bound: 1e-4},
		{Name: "ACos16", Fast: sbmath.ACos16, Ref: math.Acos, Lo: -1, Hi: 1, Bound: 1e-4},
		{Name: "ATan16", Fast: sbmath.ATan16, Ref: math.Atan, Lo: -10, Hi: 10, Bound: 2e-6},
		{Name: "InvSqrt16", Fast: sbmath.InvSqrt16, Ref: invSqrt, Lo: 1e-3, Hi: 1e4, Bound: 1e-4, Relative: true},
		{Name: "Sqrt16", Fast: sbmath.Sqrt16, Ref: math.Sqrt, Lo: 1e-3, Hi: 1e4, Bound: 1e-4, Relative: true},
		{Name: "Exp16", Fast: sbmath.Exp16, Ref: math.Exp, Lo: -10, Hi: 10, Bound: 1e-4, Relative: true},
		{Name: "Log16", Fast: sbmath.Log16, Ref: math.Log, Lo: 1e-3, Hi: 1e3, Bound: 2e-4},
	}
}

func invSqrt(x float64) float64 {
	return 1 / math.Sqrt(x)
}

// Measure evaluates c on samples evenly spaced inputs covering [Lo, Hi].
// Fewer than two samples are raised to two.
func Measure(c Check, samples int) Result {
	r, _ := measure(context.Background(), c, samples)
	return r
}

func measure(ctx context.Context, c Check, samples int) (Result, error) {
	samples = max(samples, 2)
	r := Result{
		Name:     c.Name,
		Bound:    c.Bound,
		Relative: c.Relative,
		Samples:  samples,
		At:       c.Lo,
	}

	step := (c.Hi - c.Lo) / float32(samples-1)
	for i := range samples {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		x := c.Lo + float32(i)*step
		if i == samples-1 {
			x = c.Hi
		}
		if e := sampleError(c, x); e > r.MaxErr || math.IsNaN(e) {
			r.MaxErr, r.At = e, x
			if math.IsNaN(e) {
				r.MaxErr = math.Inf(1)
				break
			}
		}
	}

	r.Within = r.MaxErr <= r.Bound
	return r, nil
}

func sampleError(c Check, x float32) float64 {
	ref := c.Ref(float64(x))
	e := math.Abs(float64(c.Fast(x)) - ref)
	if c.Relative && ref != 0 {
		e /= math.Abs(ref)
	}
	return e
}

// Run measures every check concurrently and returns the results in the
// order of checks. It stops early with the context's error when ctx ends.
func Run(ctx context.Context, checks []Check, samples int) ([]Result, error) {
	results := make([]Result, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range checks {
		g.Go(func() error {
			r, err := measure(ctx, c, samples)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed returns the results that exceeded their bound.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Within {
			out = append(out, r)
		}
	}
	return out
}
