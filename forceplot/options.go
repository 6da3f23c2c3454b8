package forceplot

import "gonum.org/v1/plot/vg"

// Option customizes a chart before it is saved.
type Option func(*plotConfig)

type plotConfig struct {
	title  string
	width  vg.Length
	height vg.Length
}

// defaultConfig sizes charts for a lab report page.
func defaultConfig() plotConfig {
	return plotConfig{
		width:  15 * vg.Centimeter,
		height: 10 * vg.Centimeter,
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *plotConfig) { c.title = title }
}

// WithSize sets the canvas size in centimetres. Panics on non-positive
// dimensions to surface programmer error early.
func WithSize(widthCm, heightCm float64) Option {
	if widthCm <= 0 || heightCm <= 0 {
		panic("forceplot: WithSize needs positive dimensions")
	}
	return func(c *plotConfig) {
		c.width = vg.Length(widthCm) * vg.Centimeter
		c.height = vg.Length(heightCm) * vg.Centimeter
	}
}
