// Package table holds the in-memory measurement model shared by the loader,
// the work calculator and the plotting helpers.
//
// 🚀 What is a measurement table?
//
//	One tensometer export holds one or more physical tests. The table keeps
//	every sample row in file order and tags it with its test name, so the
//	whole file lives in a single arena while per-test access goes through an
//	index of row positions:
//	  • Row    — one sample: test name, elapsed seconds, displacement, force, event flag
//	  • Value  — a nullable cell; blank or unparseable source cells stay Missing, never zero
//	  • Table  — sole owner of the rows plus the test-name index
//	  • View   — a read-only borrow of selected rows, cheap to derive and re-filter
//
// ✨ Key properties:
//   - file order is preserved through every filter
//   - a Select over the full range of any column is the identity
//   - empty selections are valid empty views, not errors
//   - missing cells never match a numeric range
//
// ⚙️ Usage:
//
//	v := tab.All()
//	window, err := v.Select(table.Displacement, 1, 5) // half-open [1,5)
//	if err != nil { ... }                             // ErrUnknownColumn only
//	forces := window.Forces()                         // NaN where missing
//
// Views borrow from their Table and stay valid until the caller reloads the
// source file; nothing here mutates after construction.
package table
