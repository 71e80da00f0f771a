package chart

import (
	"errors"
	"image/color"
)

const (
	DefaultTitle         = "Timeseries"
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultRawLabel      = "Timeseries"
	DefaultSmoothedLabel = "Exponential Smoothed Timeseries"
)

var (
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Blue  = color.RGBA{B: 0xff, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var (
	// ErrInvalidSize indicates a non-positive drawing area.
	ErrInvalidSize = errors.New("chart: width and height must be positive")

	// ErrLengthMismatch indicates the two series cannot share an x axis.
	ErrLengthMismatch = errors.New("chart: raw and smoothed series differ in length")
)

type Options struct {
	Title         string
	Width         int
	Height        int
	RawLabel      string
	SmoothedLabel string
	RawColor      color.Color
	SmoothedColor color.Color
	Background    color.Color
}

func DefaultOptions() Options {
	return Options{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		RawLabel:      DefaultRawLabel,
		SmoothedLabel: DefaultSmoothedLabel,
		RawColor:      Red,
		SmoothedColor: Blue,
		Background:    White,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// withDefaults fills unset colors so a partially built Options still draws.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RawColor == nil {
		o.RawColor = d.RawColor
	}
	if o.SmoothedColor == nil {
		o.SmoothedColor = d.SmoothedColor
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	return o
}
