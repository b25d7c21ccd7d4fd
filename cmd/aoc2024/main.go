// Command aoc2024 runs the Advent of Code 2024 solutions, checking each part
// against its sample before solving the real input.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed days.go
var source []byte

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "aoc2024",
	Short: "Advent of Code 2024 solutions",
	Long:  "Runs the Advent of Code 2024 solutions. Every part is checked against its sample first.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", logLevel)
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.toml", "Path to the TOML config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("aoc2024 failed")
	}
}
