package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/prompt"
	"github.com/dockhand/dockhand/internal/slogger"
)

var downCmd = &cobra.Command{
	Use:   "down <project>",
	Short: "Stop a project and remove its containers",
	Long: `Stop the project and remove its containers and networks.

Named volumes are kept. Prompts for confirmation unless --yes is given.`,
	Example: `  # Tear down with confirmation prompt
  dockhand down media

  # Tear down without confirmation
  dockhand down media --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return fmt.Errorf("get yes flag: %w", err)
		}

		target, err := resolveTarget(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if target.Service != "" {
			return errors.New("down applies to whole projects, use 'dockhand stop' for a single service")
		}

		runtime, err := requireRuntime(cmd.Context())
		if err != nil {
			return err
		}

		if !yes {
			prompter, promptErr := requirePrompter(cmd.Context())
			if promptErr != nil {
				return promptErr
			}

			confirmed, confirmErr := prompter.Confirm(
				fmt.Sprintf("Tear down project %s?", target.Project),
				"Containers and networks will be removed. Named volumes are kept.",
			)
			if confirmErr != nil {
				if errors.Is(confirmErr, prompt.ErrCanceled) {
					prompter.Print("Canceled")
					return nil
				}
				return confirmErr
			}
			if !confirmed {
				prompter.Print("Canceled")
				return nil
			}
		}

		if err := runtime.Down(cmd.Context(), target); err != nil {
			return fmt.Errorf("down %s: %w", target, err)
		}

		slogger.L(cmd.Context()).Info("torn down", "project", target.Project)
		return nil
	},
}

func init() {
	downCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(downCmd)
}
