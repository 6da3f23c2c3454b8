package emperor_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensolab/forcelib/emperor"
	"github.com/tensolab/forcelib/table"
)

// sampleExport is a two-test Emperor export: Bend A has four clean rows,
// Bend B has a garbled force cell and a blank trailing row.
const sampleExport = `Mecmesin Emperor export,
Speed,mm/min
Bend A,,,,Bend B,,,
Force (N),Displacement (mm),Time (min),Event,Force (N),Displacement (mm),Time (min),Event
10,0,0.0,0,4,0,0.0,0
10,1,0.1,0,6,0.5,0.1,1
10,2,0.2,0,x,1.0,0.2,0
10,3,0.3,1,,,,
`

// TestLoad_Sample walks the whole pipeline on a realistic export: header
// detection, name extraction, minutes conversion, best-effort cells and
// trailing-row trimming.
func TestLoad_Sample(t *testing.T) {
	tab, err := emperor.Load(strings.NewReader(sampleExport))
	require.NoError(t, err, "sample export must load")

	assert.Equal(t, []string{"Bend A", "Bend B"}, tab.Tests(), "names from the sample-name line")
	assert.Equal(t, 7, tab.Len(), "4 rows for Bend A, 3 for Bend B (blank trailing row dropped)")

	a, err := tab.Test("Bend A")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 12, 18}, a.Seconds(), "minutes converted to seconds")
	assert.Equal(t, []float64{0, 1, 2, 3}, a.Displacements())
	assert.True(t, a.Row(3).Event, "event marker parsed")
	assert.False(t, a.Row(0).Event)

	b, err := tab.Test("Bend B")
	require.NoError(t, err)
	require.Equal(t, 3, b.Len(), "blank trailing row dropped for the shorter test")
	assert.False(t, b.Row(2).Force.Valid, "garbled force cell becomes missing, not an error")
	assert.Equal(t, table.Val(1.0), b.Row(2).Displacement, "its neighbor cell still parses")
}

// TestLoad_RowsAreTestContiguous pins the long layout: each test's rows
// form one contiguous run, Bend A entirely before Bend B.
func TestLoad_RowsAreTestContiguous(t *testing.T) {
	tab, err := emperor.Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	all := tab.All()
	var order []string
	for i := 0; i < all.Len(); i++ {
		order = append(order, all.Row(i).Test)
	}
	assert.Equal(t, []string{"Bend A", "Bend A", "Bend A", "Bend A", "Bend B", "Bend B", "Bend B"}, order)
}

// TestLoad_HeaderDetection covers both exporter layouts: with and without a
// blank line inside the header block.
func TestLoad_HeaderDetection(t *testing.T) {
	// Data starts on the 4th line, no blank header line.
	plain := "Force,Distance\nN,mm\nSample 1,,,\n0.123,12.3,0.0,0\n"
	tab, err := emperor.Load(strings.NewReader(plain))
	require.NoError(t, err, "3-line header must be detected")
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, []string{"Sample 1"}, tab.Tests())

	// Same export with a blank line between names and data.
	blank := "Force,Distance\nN,mm\nSample 1,,,\n,\n0.123,12.3,0.0,0\n"
	tab, err = emperor.Load(strings.NewReader(blank))
	require.NoError(t, err, "blank header line must not stop the search")
	assert.Equal(t, 1, tab.Len())
}

// TestLoad_NoHeader verifies ErrNoHeader when no line within the search
// window starts the data body.
func TestLoad_NoHeader(t *testing.T) {
	_, err := emperor.Load(strings.NewReader("Force,Distance\nN,mm\nSample 1,\n,\nX,Y\n"))
	assert.ErrorIs(t, err, emperor.ErrNoHeader, "non-numeric body must fail the load")
}

// TestLoad_ColumnLayout verifies ErrColumnLayout for bodies whose width is
// not a positive multiple of ColsPerTest — e.g. an export missing its force
// column.
func TestLoad_ColumnLayout(t *testing.T) {
	// Three columns: displacement, minutes, event — force is gone.
	missingForce := "Sample 1,,\nDisplacement (mm),Time (min),Event\n0,0.0,0\n1,0.1,0\n"
	_, err := emperor.Load(strings.NewReader(missingForce))
	assert.ErrorIs(t, err, emperor.ErrColumnLayout, "missing column must fail, not load narrow")

	// Seven columns: second test block is truncated.
	truncated := "A,,,,B,,\nF,D,T,E,F,D,T\n1,0,0.0,0,1,0,0.0\n"
	_, err = emperor.Load(strings.NewReader(truncated))
	assert.ErrorIs(t, err, emperor.ErrColumnLayout, "truncated block must fail")
}

// TestLoad_Exclude verifies 1-indexed test exclusion and the option's
// fail-fast validation.
func TestLoad_Exclude(t *testing.T) {
	tab, err := emperor.Load(strings.NewReader(sampleExport), emperor.WithExclude(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bend B"}, tab.Tests(), "Bend A struck off")
	assert.Equal(t, 3, tab.Len())

	assert.Panics(t, func() { emperor.WithExclude(0) }, "test numbers are 1-indexed")
}

// TestLoad_FallbackNames verifies the Test N fallback when the name line is
// absent or blank.
func TestLoad_FallbackNames(t *testing.T) {
	noNames := "Force,Distance\nN,mm\n1.0,0.0,0.0,0,2.0,0.0,0.0,0\n"
	tab, err := emperor.Load(strings.NewReader(noNames))
	require.NoError(t, err)
	assert.Equal(t, []string{"Test 1", "Test 2"}, tab.Tests())
}

// TestLoadPath covers the file-backed entry point and its wrapped open error.
func TestLoadPath(t *testing.T) {
	tab, err := emperor.LoadPath("testdata/emperor_sample.csv")
	require.NoError(t, err)
	assert.Equal(t, 7, tab.Len())

	_, err = emperor.LoadPath("testdata/no_such_file.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist, "open failure must stay inspectable")
	assert.Contains(t, err.Error(), "no_such_file.csv", "message must name the failing path")
}
