// SPDX-License-Identifier: MIT
// Package: forcelib/emperor
//
// Package emperor parses CSV exports from Mecmesin Emperor tensometer
// control software into the forcelib measurement table.
//
// 🚀 What does an Emperor export look like?
//
//	A handful of metadata/header lines (title, units, sample names), then a
//	wide data body holding four columns PER TEST, side by side:
//	  force, displacement, minutes, event | force, displacement, minutes, event | ...
//	The number of header lines varies between program versions, so the loader
//	detects it: the data body starts at the first line whose second field
//	parses as a number (the first field may be a sample name that happens to
//	be numeric, the second never is inside the header block).
//
// ✨ Ingestion policy (best effort, lab-grade input):
//   - blank trailing rows of a shorter test block are dropped for that test
//   - a row with a timestamp but a blank or garbled force/displacement cell
//     is kept, with the cell marked missing — never an error
//   - a body whose width is not a positive multiple of four fails the whole
//     load with ErrColumnLayout (a required column is absent)
//   - no header line found within HeaderRowsMax lines fails with ErrNoHeader
//
// ⚙️ Usage:
//
//	tab, err := emperor.LoadPath("results.csv", emperor.WithExclude(3))
//	if err != nil { ... } // ErrNoHeader / ErrColumnLayout / wrapped I/O error
//	fmt.Println(tab.Tests())
//
// Minutes are converted to seconds on load; test names come from the third
// header line when present and fall back to "Test N".
package emperor
