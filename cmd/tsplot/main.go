package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/tsplot/internal/config"
	"github.com/san-kum/tsplot/internal/pipeline"
	"github.com/san-kum/tsplot/internal/preview"
)

var (
	length     int
	initValue  float64
	seed       int64
	output     string
	configFile string
	preset     string
	showPlot   bool
)

// main runs the random-walk pipeline with the built-in defaults when invoked
// without flags, writing timeseries.png to the working directory.
// It exits with status 1 if the pipeline or any command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tsplot",
		Short:        "plot a random walk and its exponential smoothing",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPlot,
	}

	rootCmd.Flags().IntVar(&length, "length", config.DefaultLength, "number of samples")
	rootCmd.Flags().Float64Var(&initValue, "init", config.DefaultInitValue, "initial value")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	rootCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output png path")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().BoolVar(&showPlot, "preview", false, "print an ascii preview")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s length=%d init=%.2f\n", name, p.Length, p.InitValue)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(presetsCmd, initCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and changed flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("init") {
		cfg.InitValue = initValue
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := pipeline.New(pipeline.FromFile(cfg)).Run()
	if err != nil {
		return err
	}

	if showPlot {
		fmt.Println(preview.Plot(res.Raw, res.Smoothed, preview.DefaultOptions()))
		fmt.Println()
	}

	fmt.Println(titleStyle.Render("timeseries"))
	fmt.Println(field("samples", fmt.Sprintf("%d", len(res.Raw))))
	fmt.Println(field("init", fmt.Sprintf("%.4f", res.Raw[0])))
	fmt.Println(field("alpha", fmt.Sprintf("%.6f", res.Alpha)))
	fmt.Println(field("min", fmt.Sprintf("%.4f", res.YMin)))
	fmt.Println(field("max", fmt.Sprintf("%.4f", res.YMax)))
	fmt.Println(field("seed", fmt.Sprintf("%d", res.Seed)))
	fmt.Println(field("output", pathStyle.Render(res.Output)))

	return nil
}
