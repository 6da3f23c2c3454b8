package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tensolab/forcelib/table"
)

// Summary is a describe()-style digest of one column over one view.
//
// Std is the sample standard deviation (n−1 denominator); quartiles are
// empirical (smallest sample at or above the requested fraction). A view
// with no valid cells yields Count 0 and NaN aggregates.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes col over v. Unknown selectors yield
// table.ErrUnknownColumn; an empty or all-missing view is a valid input.
// Complexity: O(n log n) for the quantile sort.
func Describe(v table.View, col table.Column) (Summary, error) {
	series, err := columnSeries(v, col)
	if err != nil {
		return Summary{}, err
	}

	xs := series[:0:0]
	for _, f := range series {
		if !math.IsNaN(f) {
			xs = append(xs, f)
		}
	}
	if len(xs) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}, nil
	}
	sort.Float64s(xs)

	return Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Std:    stat.StdDev(xs, nil),
		Min:    xs[0],
		Q25:    stat.Quantile(0.25, stat.Empirical, xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, xs, nil),
		Max:    xs[len(xs)-1],
	}, nil
}

// DescribeAll summarizes col for every test in t, keyed by test name.
func DescribeAll(t *table.Table, col table.Column) (map[string]Summary, error) {
	out := make(map[string]Summary, len(t.Tests()))
	for _, name := range t.Tests() {
		v, err := t.Test(name)
		if err != nil {
			return nil, err
		}
		s, err := Describe(v, col)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}

	return out, nil
}

// columnSeries maps the selector onto the view's accessor.
func columnSeries(v table.View, col table.Column) ([]float64, error) {
	switch col {
	case table.Time:
		return v.Seconds(), nil
	case table.Displacement:
		return v.Displacements(), nil
	case table.Force:
		return v.Forces(), nil
	default:
		return nil, table.ErrUnknownColumn
	}
}
