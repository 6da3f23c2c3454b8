// SPDX-License-Identifier: MIT
// Package: forcelib/emperor
//
// options.go — functional options for Load.
//
// Contract (strict):
//   • Options are functional (type Option func(*loadConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Load itself never panics.
//   • No hidden globals; everything flows through loadConfig.

package emperor

import "fmt"

// Option customizes a Load call by mutating a loadConfig before parsing.
type Option func(*loadConfig)

// loadConfig carries the per-call loader settings.
type loadConfig struct {
	// exclude holds 1-indexed test numbers whose blocks are dropped.
	exclude map[int]struct{}
}

// defaultConfig returns the zero-exclusion configuration.
func defaultConfig() loadConfig {
	return loadConfig{exclude: make(map[int]struct{})}
}

// WithExclude drops the given 1-indexed tests from the loaded table, the
// way an operator strikes bad runs off a batch. Panics on a test number
// below 1 to surface programmer error early.
func WithExclude(tests ...int) Option {
	for _, n := range tests {
		if n < 1 {
			// Fail fast: test numbers are 1-indexed by the export convention.
			panic(fmt.Sprintf("emperor: WithExclude(%d): test numbers start at 1", n))
		}
	}
	return func(c *loadConfig) {
		for _, n := range tests {
			c.exclude[n] = struct{}{}
		}
	}
}
