package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkonrad/crosscheck/pkg/checkmatrix"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Checks every target and feature combination",
	Long: `Checks the full Cartesian product of the supported targets and feature
sets. The product includes the empty target, which checks against the host's
default target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatrix(cmd, checkmatrix.SweepMatrix())
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
