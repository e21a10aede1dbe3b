package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var upCmd = &cobra.Command{
	Use:   "up <project[.service]>",
	Short: "Start a project or a single service",
	Long: `Start the target in detached mode.

With a bare project name the whole project is brought up. With a
'project.service' reference only that service and its dependencies are
started.`,
	Example: `  # Start every service of the media project
  dockhand up media

  # Start only jellyfin
  dockhand up media.jellyfin`,
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

		if err := runtime.Up(cmd.Context(), target); err != nil {
			return fmt.Errorf("up %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("started", "target", target.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
