// Package forceplot renders measurement views: force-displacement line
// charts with one line per test, and bar charts of per-test work values.
// It consumes only the table package's column accessors and owns no parsing
// or math; the output format follows the file suffix (.png, .svg, .pdf).
package forceplot
