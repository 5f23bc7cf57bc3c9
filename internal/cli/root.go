// Package cli implements the command-line interface for the cube solver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "Rubik's cube solver",
	Long: `cube solves a scrambled 3x3x3 Rubik's cube using Kociemba's
two-phase algorithm and keeps a history of past solves.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "solve history database path (default: ~/.cube_solver/solves.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose flag; accepted by every command but does not change any output")
}
