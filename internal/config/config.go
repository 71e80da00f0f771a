package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLength    = 500
	DefaultInitValue = 5.0
	DefaultOutput    = "timeseries.png"
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultTitle     = "Timeseries"
)

var (
	ErrLength = errors.New("config: length must be at least 1")
	ErrOutput = errors.New("config: output path is empty")
	ErrSize   = errors.New("config: chart width and height must be positive")
)

type Config struct {
	Length    int         `yaml:"length"`
	InitValue float64     `yaml:"init_value"`
	Seed      int64       `yaml:"seed"`
	Output    string      `yaml:"output"`
	Chart     ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Length:    DefaultLength,
		InitValue: DefaultInitValue,
		Output:    DefaultOutput,
		Chart: ChartConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a yaml file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Length < 1 {
		return ErrLength
	}
	if c.Output == "" {
		return ErrOutput
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return ErrSize
	}
	return nil
}
