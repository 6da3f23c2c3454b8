package table

import "errors"

var (
	// ErrUnknownColumn indicates a column selector that is not one of
	// Time, Displacement or Force.
	ErrUnknownColumn = errors.New("table: unknown column selector")
	// ErrUnknownTest indicates a test name absent from the table.
	ErrUnknownTest = errors.New("table: unknown test name")
)
