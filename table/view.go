package table

// View is a read-only borrow of a subset of a Table's rows.
//
// A View never copies or mutates rows; it holds the parent pointer and the
// positions of the selected rows, in the parent's file order. Deriving a
// narrower View (Select, ForTest) costs one pass over the current positions.
// A View is invalidated only by reloading the source file.
type View struct {
	tab *Table
	idx []int
}

// Len reports the number of rows in the view.
func (v View) Len() int { return len(v.idx) }

// Row returns the i-th row of the view, in file order.
func (v View) Row(i int) Row { return v.tab.rows[v.idx[i]] }

// Tests returns the test names present in the view, in order of first
// appearance within the view.
func (v View) Tests() []string {
	var names []string
	seen := make(map[string]struct{}, len(v.tab.tests))
	for _, i := range v.idx {
		name := v.tab.rows[i].Test
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ForTest narrows the view to rows of one test. An absent name yields an
// empty view, mirroring Select's empty-range behavior.
func (v View) ForTest(name string) View {
	var idx []int
	for _, i := range v.idx {
		if v.tab.rows[i].Test == name {
			idx = append(idx, i)
		}
	}
	return View{tab: v.tab, idx: idx}
}

// Select keeps the rows whose col value lies in the half-open range [lo, hi),
// preserving file order. Missing cells never match. An empty or disjoint
// range yields an empty view, not an error; only an unrecognized column
// selector errors, with ErrUnknownColumn.
func (v View) Select(col Column, lo, hi float64) (View, error) {
	switch col {
	case Time, Displacement, Force:
	default:
		return View{}, ErrUnknownColumn
	}
	var idx []int
	for _, i := range v.idx {
		f, ok := v.tab.rows[i].cell(col)
		if ok && f >= lo && f < hi {
			idx = append(idx, i)
		}
	}
	return View{tab: v.tab, idx: idx}, nil
}

// Seconds returns the elapsed-time series of the view, in row order.
func (v View) Seconds() []float64 {
	out := make([]float64, len(v.idx))
	for k, i := range v.idx {
		out[k] = v.tab.rows[i].Seconds
	}
	return out
}

// Displacements returns the displacement series, NaN where missing.
func (v View) Displacements() []float64 {
	out := make([]float64, len(v.idx))
	for k, i := range v.idx {
		out[k] = v.tab.rows[i].Displacement.Float()
	}
	return out
}

// Forces returns the force series, NaN where missing.
func (v View) Forces() []float64 {
	out := make([]float64, len(v.idx))
	for k, i := range v.idx {
		out[k] = v.tab.rows[i].Force.Float()
	}
	return out
}
