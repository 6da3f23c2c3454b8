// SPDX-License-Identifier: MIT
// Package: forcelib/emperor
//
// constants.go — the Emperor export format contract, in one place.

package emperor

const (
	// ColsPerTest is the number of data columns each test occupies in the
	// export body: force, displacement, minutes, event.
	ColsPerTest = 4

	// HeaderRowsMax bounds the search for the first data line. Emperor
	// versions differ in header length but never exceed this many lines.
	HeaderRowsMax = 10

	// testNameLine is the 0-based header line carrying sample names,
	// one every ColsPerTest fields.
	testNameLine = 2

	// secondsPerMinute converts the export's minutes column to seconds.
	secondsPerMinute = 60
)

// Field offsets within one test block.
const (
	fieldForce = iota
	fieldDisplacement
	fieldMinutes
	fieldEvent
)
