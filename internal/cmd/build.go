package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var buildCmd = &cobra.Command{
	Use:   "build <project[.service]>",
	Short: "Build the images for a target",
	Example: `  dockhand build media
  dockhand build media.transcoder`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		runtime, err := requireRuntime(cmd.Context())
		if err != nil {
			return err
		}

		if err := validateService(cmd.Context(), runtime, target); err != nil {
			return err
		}

		if err := runtime.Build(cmd.Context(), target); err != nil {
			return fmt.Errorf("build %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("built", "target", target.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
