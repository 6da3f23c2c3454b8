// Package resample re-grids measurement series: Rescale maps a series'
// span onto a target interval, OntoSeconds linearly interpolates one test's
// displacement and force onto a new time base so that runs captured at
// different rates can be compared sample-for-sample.
package resample
