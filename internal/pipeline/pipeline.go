package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/tsplot/internal/chart"
	"github.com/san-kum/tsplot/internal/config"
	"github.com/san-kum/tsplot/internal/series"
	"github.com/san-kum/tsplot/internal/smoothing"
	"github.com/san-kum/tsplot/internal/walk"
)

type Config struct {
	Length    int
	InitValue float64
	Seed      int64
	Output    string
	Chart     chart.Options
}

func DefaultConfig() Config {
	return Config{
		Length:    config.DefaultLength,
		InitValue: config.DefaultInitValue,
		Output:    config.DefaultOutput,
		Chart:     chart.DefaultOptions(),
	}
}

// FromFile maps a loaded file config onto a pipeline config.
func FromFile(c *config.Config) Config {
	opts := chart.DefaultOptions()
	opts.Title = c.Chart.Title
	opts.Width = c.Chart.Width
	opts.Height = c.Chart.Height

	return Config{
		Length:    c.Length,
		InitValue: c.InitValue,
		Seed:      c.Seed,
		Output:    c.Output,
		Chart:     opts,
	}
}

type Result struct {
	Raw      series.Series
	Smoothed series.Series
	Alpha    float64
	YMin     float64
	YMax     float64
	Seed     int64
	Output   string
}

type Pipeline struct {
	cfg        Config
	seed       int64
	randSource *rand.Rand
}

// New builds a pipeline whose random source is seeded from cfg.Seed, or from
// the clock when cfg.Seed is 0.
func New(cfg Config) *Pipeline {
	seed := walk.ResolveSeed(cfg.Seed)
	return &Pipeline{
		cfg:        cfg,
		seed:       seed,
		randSource: walk.NewSource(seed),
	}
}

// NewWithSource builds a pipeline drawing from r. Result.Seed is left as
// cfg.Seed since the state of r is unknown.
func NewWithSource(cfg Config, r *rand.Rand) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		seed:       cfg.Seed,
		randSource: r,
	}
}

// Compute generates and smooths the series without rendering. Non-finite
// samples fail with series.ErrNonFinite before they reach the renderer.
func (p *Pipeline) Compute() (*Result, error) {
	raw, err := walk.Generate(p.randSource, p.cfg.Length, p.cfg.InitValue)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if !raw.IsValid() {
		return nil, fmt.Errorf("generate: %w", series.ErrNonFinite)
	}

	alpha := smoothing.DefaultAlpha(len(raw))
	smoothed, err := smoothing.Exponential(raw, alpha)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}

	return &Result{
		Raw:      raw,
		Smoothed: smoothed,
		Alpha:    alpha,
		YMin:     raw.Min(),
		YMax:     raw.Max(),
		Seed:     p.seed,
		Output:   p.cfg.Output,
	}, nil
}

// Run computes both series and renders them to cfg.Output.
func (p *Pipeline) Run() (*Result, error) {
	res, err := p.Compute()
	if err != nil {
		return nil, err
	}

	if err := chart.RenderFile(p.cfg.Output, res.Raw, res.Smoothed, res.YMax, p.cfg.Chart); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return res, nil
}
