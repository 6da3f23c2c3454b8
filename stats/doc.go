// Package stats summarizes one column of a measurement view the way a lab
// notebook wants it: count, mean, standard deviation, extremes and empirical
// quartiles, per test. Missing cells are left out of every aggregate.
package stats
