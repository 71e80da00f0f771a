package chart

import (
	"bytes"
	"fmt"
	"image"
	imgdraw "image/draw"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/tsplot/internal/series"
)

// Render draws raw and smoothed on x in [0, N-1] and y in [0, yMax] and
// writes the PNG encoding to w.
func Render(w io.Writer, raw, smoothed series.Series, yMax float64, opts Options) error {
	c, err := rasterize(raw, smoothed, yMax, opts)
	if err != nil {
		return err
	}

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}
	return nil
}

// RenderFile renders into memory and then replaces path. A failed render
// leaves an existing file untouched.
func RenderFile(path string, raw, smoothed series.Series, yMax float64, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, raw, smoothed, yMax, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("chart: write %s: %w", path, err)
	}
	return nil
}

func rasterize(raw, smoothed series.Series, yMax float64, opts Options) (*vgimg.Canvas, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, series.ErrEmptySeries
	}
	if len(raw) != len(smoothed) {
		return nil, ErrLengthMismatch
	}
	opts = opts.withDefaults()

	p, err := newPlot(raw, smoothed, yMax, opts)
	if err != nil {
		return nil, err
	}

	// UseImage copies img and sets the canvas background from it, so fill
	// before handing it over and draw on the canvas afterwards.
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	imgdraw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, imgdraw.Src)

	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))
	return c, nil
}

func newPlot(raw, smoothed series.Series, yMax float64, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = opts.Background
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.Padding = vg.Points(5)

	p.Add(plotter.NewGrid())

	rawLine, err := plotter.NewLine(toXYs(raw))
	if err != nil {
		return nil, fmt.Errorf("chart: raw series: %w", err)
	}
	rawLine.LineStyle.Color = opts.RawColor
	rawLine.LineStyle.Width = vg.Points(1)

	smoothLine, err := plotter.NewLine(toXYs(smoothed))
	if err != nil {
		return nil, fmt.Errorf("chart: smoothed series: %w", err)
	}
	smoothLine.LineStyle.Color = opts.SmoothedColor
	smoothLine.LineStyle.Width = vg.Points(1)

	p.Add(rawLine, smoothLine)
	p.Legend.Add(opts.RawLabel, rawLine)
	p.Legend.Add(opts.SmoothedLabel, smoothLine)
	p.Legend.Top = true

	// Add widens the axes to the data; pin them afterwards.
	p.X.Min, p.X.Max = axisRange(0, float64(len(raw)-1))
	p.Y.Min, p.Y.Max = axisRange(0, yMax)

	return p, nil
}

// axisRange widens an empty, inverted or non-finite span to one unit above lo.
func axisRange(lo, hi float64) (float64, float64) {
	if math.IsNaN(hi) || math.IsInf(hi, 0) || hi <= lo {
		return lo, lo + 1
	}
	return lo, hi
}

func toXYs(s series.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s))
	for i, v := range s {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}
