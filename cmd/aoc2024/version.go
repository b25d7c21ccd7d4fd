package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aoc2024",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("aoc2024 version 1.0.0")
	},
}
