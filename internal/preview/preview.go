// Package preview draws series as ASCII line graphs for the terminal.
package preview

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tsplot/internal/series"
)

const (
	DefaultHeight = 15
	DefaultWidth  = 80
)

type Options struct {
	Height        int
	Width         int
	Caption       string
	RawLabel      string
	SmoothedLabel string
}

func DefaultOptions() Options {
	return Options{
		Height:        DefaultHeight,
		Width:         DefaultWidth,
		Caption:       "Timeseries",
		RawLabel:      "raw",
		SmoothedLabel: "smoothed",
	}
}

// Plot overlays raw (red) and smoothed (blue) on one graph. It returns an
// empty string when raw has no samples.
func Plot(raw, smoothed series.Series, opts Options) string {
	if len(raw) == 0 {
		return ""
	}

	data := [][]float64{raw}
	colors := []asciigraph.AnsiColor{asciigraph.Red}
	legends := []string{opts.RawLabel}
	if len(smoothed) > 0 {
		data = append(data, smoothed)
		colors = append(colors, asciigraph.Blue)
		legends = append(legends, opts.SmoothedLabel)
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(opts.Caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
