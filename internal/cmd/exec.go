package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <project.service> [command...]",
	Short: "Run a command inside a service's container",
	Long: `Run a command inside the target service's running container.

Without a command an interactive shell is started. The target must name
a service, not a whole project.`,
	Example: `  # Interactive shell
  dockhand exec media.jellyfin

  # One-off command
  dockhand exec media.jellyfin ls /config`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if target.Service == "" {
			return errors.New("exec needs a service target, e.g. 'media.jellyfin'")
		}

		runtime, err := requireRuntime(cmd.Context())
		if err != nil {
			return err
		}

		if err := validateService(cmd.Context(), runtime, target); err != nil {
			return err
		}

		command := args[1:]
		if len(command) == 0 {
			command = []string{"sh"}
		}

		if err := runtime.Exec(cmd.Context(), target, command); err != nil {
			return fmt.Errorf("exec in %s: %w", target, err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
