package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var pullCmd = &cobra.Command{
	Use:   "pull <project[.service]>",
	Short: "Pull the latest images for a target",
	Long: `Pull the latest images for the target's services.

Running containers keep their current image until the target is brought
up again, so a typical update is 'dockhand pull' followed by
'dockhand up'.`,
	Example: `  # Update everything flagged by 'dockhand check'
  dockhand pull media
  dockhand up media`,
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

		if err := runtime.Pull(cmd.Context(), target); err != nil {
			return fmt.Errorf("pull %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("pulled", "target", target.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
