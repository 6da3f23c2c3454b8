package resample

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/tensolab/forcelib/table"
)

// Rescale affinely maps xs so that its minimum lands on lo and its maximum
// on hi. The input is not modified. A series without a span (empty or
// constant) yields ErrConstantInput.
// Complexity: O(len(xs)) time.
func Rescale(xs []float64, lo, hi float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrConstantInput
	}
	min, max := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min == max {
		return nil, ErrConstantInput
	}

	factor := (hi - lo) / (max - min)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = lo + factor*(x-min)
	}

	return out, nil
}

// OntoSeconds interpolates one test's displacement and force onto a new
// time base and returns the re-gridded rows, tagged with the same test name.
//
// Each channel is fitted over the rows where that channel is valid, so a
// missing force cell does not poison the displacement fit. Outside the
// sampled time range the boundary values are held (same convention as the
// plotting collaborators expect). Requires a single-test view and at least
// two usable samples per channel; a non-increasing time base surfaces the
// fit error.
func OntoSeconds(v table.View, seconds []float64) ([]table.Row, error) {
	tests := v.Tests()
	if len(tests) != 1 {
		return nil, ErrNeedSingleTest
	}
	name := tests[0]

	disp, err := fitChannel(v, table.Displacement)
	if err != nil {
		return nil, err
	}
	force, err := fitChannel(v, table.Force)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(seconds))
	for i, s := range seconds {
		rows[i] = table.Row{
			Test:         name,
			Seconds:      s,
			Displacement: table.Val(disp.Predict(s)),
			Force:        table.Val(force.Predict(s)),
		}
	}

	return rows, nil
}

// fitChannel builds the time→channel piecewise-linear predictor from the
// rows where the channel is valid.
func fitChannel(v table.View, col table.Column) (*interp.PiecewiseLinear, error) {
	var xs, ys []float64
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		val := r.Displacement
		if col == table.Force {
			val = r.Force
		}
		if !val.Valid {
			continue
		}
		xs = append(xs, r.Seconds)
		ys = append(ys, val.F)
	}
	if len(xs) < 2 {
		return nil, ErrTooFewSamples
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("resample: fit %s over time: %w", col, err)
	}

	return &pl, nil
}
