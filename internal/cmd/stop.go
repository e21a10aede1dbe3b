package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var stopCmd = &cobra.Command{
	Use:   "stop <project[.service]>",
	Short: "Stop a project or a single service",
	Long: `Stop the target's containers without removing them.

Stopped containers are started again with 'dockhand up'.`,
	Example: `  dockhand stop media
  dockhand stop media.jellyfin`,
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

		if err := runtime.Stop(cmd.Context(), target); err != nil {
			return fmt.Errorf("stop %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("stopped", "target", target.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
