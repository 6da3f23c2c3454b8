// Package work computes the mechanical work done during a tensometer test:
// the area under the force-displacement curve.
//
// 🚀 What is computed?
//
//	The trapezoidal rule over consecutive sample pairs of one test:
//	  W = Σ 0.5 · (F[i] + F[i+1]) · (D[i+1] − D[i])
//	Samples arrive irregularly spaced, so the pairwise form is the exact
//	discretization; the result is a SIGNED area — a return stroke where
//	displacement decreases subtracts work, which is the physical truth for
//	a relaxing specimen.
//
// ✨ Missing-data policy (defined, not incidental):
//   - a pair whose force or displacement endpoint is missing contributes zero
//   - a pair spanning two different tests contributes zero
//   - fewer than two usable rows yields zero work, never an error
//
// ⚙️ Usage:
//
//	opts := work.DefaultOptions()
//	w, err := work.Work(view, &opts)     // one test slice → one scalar
//	all, err := work.All(tab, &opts)     // whole table → test name → scalar
//
// Strict mode (Options.StrictMonotonic) rejects a decreasing displacement
// step with ErrNonMonotonic for callers that treat a return stroke as a
// data-quality fault; the default integrates it as given.
//
// Work is returned in the export's raw units (force unit × displacement
// unit); Joules converts a newton-millimetre result to joules.
package work
