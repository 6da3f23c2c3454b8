package forceplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensolab/forcelib/forceplot"
	"github.com/tensolab/forcelib/table"
)

func plotRows() []table.Row {
	return []table.Row{
		{Test: "Bend A", Displacement: table.Val(0), Force: table.Val(10)},
		{Test: "Bend A", Displacement: table.Val(1), Force: table.Missing()},
		{Test: "Bend A", Displacement: table.Val(2), Force: table.Val(12)},
		{Test: "Bend B", Displacement: table.Val(0), Force: table.Val(4)},
		{Test: "Bend B", Displacement: table.Val(1), Force: table.Val(5)},
	}
}

// TestLines_WritesChart renders a two-test line chart and checks a
// non-empty file appears; missing cells must not break the render.
func TestLines_WritesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forces.png")

	err := forceplot.Lines(table.New(plotRows()).All(), path,
		forceplot.WithTitle("bend batch 7"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err, "chart file must exist")
	assert.Positive(t, info.Size(), "chart file must not be empty")
}

// TestWorkBars_WritesChart renders the per-test work bars.
func TestWorkBars_WritesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.svg")

	err := forceplot.WorkBars(map[string]float64{"Bend A": 30, "Bend B": 2.5}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestLines_UnknownSuffix verifies that an unsupported output format
// surfaces as a wrapped save error naming the path.
func TestLines_UnknownSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forces.bmp")

	err := forceplot.Lines(table.New(plotRows()).All(), path)
	require.Error(t, err, "bmp is not a supported chart format")
	assert.Contains(t, err.Error(), "forces.bmp")
}

// TestWithSize_Validates verifies the option's fail-fast rule.
func TestWithSize_Validates(t *testing.T) {
	assert.Panics(t, func() { forceplot.WithSize(0, 10) })
}
