package work

import (
	"errors"

	"github.com/tensolab/forcelib/table"
)

// ErrNonMonotonic indicates a strictly decreasing displacement step between
// two usable samples while Options.StrictMonotonic is set.
var ErrNonMonotonic = errors.New("work: displacement is not monotonically non-decreasing")

// millimetresPerMetre converts a newton-millimetre integral to joules.
const millimetresPerMetre = 1000

// Options configures the work integral.
//
// Fields:
//   - StrictMonotonic — reject decreasing displacement between usable pairs
//     with ErrNonMonotonic instead of integrating the signed area.
//
// The zero value is the default behavior; DefaultOptions spells it out.
type Options struct {
	StrictMonotonic bool
}

// DefaultOptions returns the permissive configuration: signed-area
// integration, no monotonicity checking.
func DefaultOptions() Options {
	return Options{StrictMonotonic: false}
}

// Work integrates force over displacement across v with the trapezoidal
// rule. nil opts means DefaultOptions.
//
// Pairs are consecutive view rows; a pair contributes zero when either
// endpoint misses force or displacement, or when the endpoints belong to
// different tests. Fewer than two usable rows yields 0.
// Complexity: O(v.Len()) time, O(1) space.
func Work(v table.View, opts *Options) (float64, error) {
	strict := opts != nil && opts.StrictMonotonic

	var total float64
	for i := 0; i+1 < v.Len(); i++ {
		a, b := v.Row(i), v.Row(i+1)
		if a.Test != b.Test {
			continue
		}
		if !a.Force.Valid || !b.Force.Valid || !a.Displacement.Valid || !b.Displacement.Valid {
			continue
		}
		step := b.Displacement.F - a.Displacement.F
		if strict && step < 0 {
			return 0, ErrNonMonotonic
		}
		total += 0.5 * (a.Force.F + b.Force.F) * step
	}

	return total, nil
}

// All computes the work of every test in t, keyed by test name. Each entry
// equals Work over that test's own view; partitioning first and integrating
// second never disagrees with the single-slice path.
func All(t *table.Table, opts *Options) (map[string]float64, error) {
	out := make(map[string]float64, len(t.Tests()))
	for _, name := range t.Tests() {
		v, err := t.Test(name)
		if err != nil {
			return nil, err
		}
		w, err := Work(v, opts)
		if err != nil {
			return nil, err
		}
		out[name] = w
	}

	return out, nil
}

// Joules converts a newton-millimetre work value to joules. The Emperor
// export measures displacement in millimetres, so this is the usual last
// step before reporting.
func Joules(newtonMillimetres float64) float64 {
	return newtonMillimetres / millimetresPerMetre
}
