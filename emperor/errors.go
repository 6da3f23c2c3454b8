// SPDX-License-Identifier: MIT
// Package: forcelib/emperor
//
// errors.go — sentinel errors for the loader.
//
// Error policy (explicit and strict):
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Load wraps sentinels and lower-level errors with %w context.
//   • Malformed individual cells are NOT errors — they become missing
//     values. Only structural problems fail the load.

package emperor

import "errors"

// ErrNoHeader indicates that no data line was found within HeaderRowsMax
// lines: the file is not an Emperor export (or is empty).
// Usage: if errors.Is(err, emperor.ErrNoHeader) { /* wrong file */ }.
var ErrNoHeader = errors.New("emperor: no data line found within header search window")

// ErrColumnLayout indicates that the data body width is not a positive
// multiple of ColsPerTest: a required column (force, displacement, minutes
// or event) is absent from at least one test block.
// Usage: if errors.Is(err, emperor.ErrColumnLayout) { /* truncated export */ }.
var ErrColumnLayout = errors.New("emperor: data width is not a multiple of columns-per-test")
