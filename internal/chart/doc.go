// Package chart renders a raw series and its smoothed counterpart as a PNG
// line chart.
//
// Drawing is delegated to gonum.org/v1/plot with the vgimg raster backend.
// The canvas is sized in pixels, so a 640x480 [Options] yields a 640x480
// image regardless of DPI.
//
// # Example
//
//	opts := chart.DefaultOptions()
//	err := chart.RenderFile("timeseries.png", raw, smoothed, raw.Max(), opts)
package chart
