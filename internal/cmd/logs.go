package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/compose"
)

var logsCmd = &cobra.Command{
	Use:   "logs <project[.service]>",
	Short: "Show logs for a project or a single service",
	Example: `  # Last 100 lines of every service
  dockhand logs media

  # Follow one service
  dockhand logs media.jellyfin --follow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, err := cmd.Flags().GetBool("follow")
		if err != nil {
			return fmt.Errorf("get follow flag: %w", err)
		}
		tail, err := cmd.Flags().GetString("tail")
		if err != nil {
			return fmt.Errorf("get tail flag: %w", err)
		}

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

		opts := compose.LogsOptions{Follow: follow, Tail: tail}
		if err := runtime.Logs(cmd.Context(), target, opts); err != nil {
			return fmt.Errorf("logs %s: %w", target, err)
		}

		return nil
	},
}

func init() {
	logsCmd.Flags().BoolP("follow", "f", false, "Follow log output")
	logsCmd.Flags().String("tail", "100", "Number of lines to show from the end of the logs")
	rootCmd.AddCommand(logsCmd)
}
