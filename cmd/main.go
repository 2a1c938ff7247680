package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mkonrad/crosscheck/pkg/checkmatrix"
)

var rootCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Checks the crate against every supported target",
	Long: `This command runs the build checker once per supported target and feature
combination. A combination that fails to check is reported but doesn't stop
the run; the remaining combinations are still checked.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("dry", "n", false, "dry run; only print the commands, don't execute anything")
	rootCmd.PersistentFlags().String("tool", checkmatrix.DefaultTool, "check command to run for each combination")
}

// runMatrix wires the flags and logger up and hands the given matrix to the
// runner. Invocation failures are fatal: the error is printed and the
// process exits with status 1.
func runMatrix(cmd *cobra.Command, matrix checkmatrix.Matrix) error {
	dryRun, err := cmd.Flags().GetBool("dry")
	if err != nil {
		return err
	}

	tool, err := cmd.Flags().GetString("tool")
	if err != nil {
		return err
	}

	logger := zerolog.New(NewConsoleWriter())
	ctx := checkmatrix.WithLogger(context.Background(), &logger)

	runner := checkmatrix.Runner{
		Tool:   tool,
		DryRun: dryRun,
	}

	err = runner.RunMatrix(ctx, matrix)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to invoke the check command")
	}

	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
