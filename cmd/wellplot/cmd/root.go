package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/wellpath/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	syncLog = log.Sync
)

var rootCmd = &cobra.Command{
	Use:   "wellplot",
	Short: "wellplot - vertical-section plots from directional surveys",
	Long: `wellplot reconstructs wellbore trajectories from directional surveys
(measured depth, inclination, azimuth) using the minimum-curvature method
and prepares them for vertical-section plots.

Examples:
  wellplot trajectory survey.csv                    # Print plotted stations
  wellplot trajectory --width 1200 survey.csv       # Map onto a wider viewport
  wellplot trajectory --md DEPTH --inc INCL s.csv   # Custom column names`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(verbose)
	},
}

// Execute runs the root command
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command and flushes the log, whatever the outcome.
func execute() error {
	err := rootCmd.Execute()
	syncLog()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
