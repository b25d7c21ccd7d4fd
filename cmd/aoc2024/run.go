package main

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gridwalk/aoc"
)

var (
	dayFlag        int
	partFlag       string
	sampleFlag     bool
	skipSampleFlag bool
	inputDirFlag   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the solutions",
	Args:  cobra.NoArgs,
	RunE:  runCommand,
}

func init() {
	runCmd.Flags().IntVar(&dayFlag, "day", 0, "Day to run (0 runs every day)")
	runCmd.Flags().StringVar(&partFlag, "part", "", "Part to run")
	runCmd.Flags().BoolVar(&sampleFlag, "sample", false, "Only run the samples")
	runCmd.Flags().BoolVar(&skipSampleFlag, "skip-sample", false, "Skip the samples")
	runCmd.Flags().StringVar(&inputDirFlag, "input-dir", "", "Directory holding <year>/<day>.input files")
	runCmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
}

func loadConfig(cmd *cobra.Command) (aoc.Config, error) {
	cfg, err := aoc.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.Debug().Str("config", configPath).Msg("no config file, using defaults")
		return aoc.DefaultConfig(), nil
	}
	return cfg, err
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if inputDirFlag != "" {
		cfg.InputDir = inputDirFlag
	}
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(level)
		}
	}
	cmd.SilenceUsage = true
	return aoc.Run(source, &solver{}, aoc.Options{
		Day:        dayFlag,
		Part:       partFlag,
		OnlySample: sampleFlag,
		SkipSample: skipSampleFlag,
		Config:     cfg,
	})
}
