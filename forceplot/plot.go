package forceplot

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tensolab/forcelib/table"
)

// Lines renders one force-displacement line per test in v and saves the
// chart to path. Rows with a missing force or displacement cell are left
// out of their test's line (the line closes over the gap).
func Lines(v table.View, path string, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "displacement"
	p.Y.Label.Text = "force"

	for i, name := range v.Tests() {
		tv := v.ForTest(name)
		xys := pairs(tv.Displacements(), tv.Forces())
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("forceplot: line for %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("forceplot: save %s: %w", path, err)
	}

	return nil
}

// WorkBars renders one bar per test from a work mapping (as returned by
// work.All) and saves the chart to path. Bars are laid out in sorted test
// name order so repeated renders of the same data are identical.
func WorkBars(works map[string]float64, path string, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	names := make([]string, 0, len(works))
	for name := range works {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(plotter.Values, len(names))
	for i, name := range names {
		values[i] = works[name]
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.Y.Label.Text = "work"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("forceplot: bars: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("forceplot: save %s: %w", path, err)
	}

	return nil
}

// pairs zips two equal-length series into plot points, dropping pairs with
// a NaN on either axis.
func pairs(xs, ys []float64) plotter.XYs {
	var out plotter.XYs
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		out = append(out, plotter.XY{X: xs[i], Y: ys[i]})
	}

	return out
}
