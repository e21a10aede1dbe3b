package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var restartCmd = &cobra.Command{
	Use:   "restart <project[.service]>",
	Short: "Restart a project or a single service",
	Example: `  dockhand restart media
  dockhand restart media.jellyfin`,
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

		if err := runtime.Restart(cmd.Context(), target); err != nil {
			return fmt.Errorf("restart %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("restarted", "target", target.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
