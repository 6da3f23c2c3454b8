// Package forcelib is your toolbox for tensometer force data — from raw
// control-software CSV exports to work integrals, summary statistics and
// report charts.
//
// 🚀 What is forcelib?
//
//	A small, synchronous, in-memory library that brings together:
//		• Loading: Mecmesin-Emperor-style CSV exports, header auto-detection,
//		  multi-test files, best-effort ingestion of noisy lab output
//		• A measurement table: nullable cells, per-test views, range selection
//		• Work: trapezoidal force-over-displacement integrals per test
//		• Statistics: describe()-style per-test summaries
//		• Resampling: rescaling and re-gridding onto a common time base
//		• Plotting: force-displacement lines and per-test work bars
//
// ✨ Why forcelib?
//
//   - Honest missing data – blank or garbled cells stay missing, never zero
//   - One arena – per-test views index the loaded rows, nothing is copied
//   - Pure values – load once, then every operation is a pure computation
//
// Everything is organized under small subpackages:
//
//	table/     — Measurement table, views, selection, column accessors
//	emperor/   — the Emperor CSV export loader
//	work/      — the work (area under force-displacement) calculator
//	stats/     — per-test summary statistics
//	resample/  — rescale and linear re-interpolation helpers
//	forceplot/ — chart rendering collaborators
//	cmd/       — the forcelib command-line tool
//
// Quick taste:
//
//	tab, err := emperor.LoadPath("results.csv")
//	...
//	works, err := work.All(tab, nil)   // test name → N·mm
//
//	go get github.com/tensolab/forcelib
package forcelib
