package resample

import "errors"

var (
	// ErrConstantInput indicates a series with no span: empty, or every
	// element equal. There is nothing to map onto a target interval.
	ErrConstantInput = errors.New("resample: series has no span to rescale")
	// ErrNeedSingleTest indicates a view holding zero or several tests;
	// interpolation is defined per test.
	ErrNeedSingleTest = errors.New("resample: view must hold exactly one test")
	// ErrTooFewSamples indicates fewer than two usable samples in a channel.
	ErrTooFewSamples = errors.New("resample: need at least two usable samples")
)
