package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkonrad/crosscheck/pkg/checkmatrix"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks the curated release targets",
	Long: `Checks the explicit list of release targets, each with the static_ser
feature enabled. Use sweep to cross every target with every feature set
instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatrix(cmd, checkmatrix.CuratedMatrix)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
