package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/prompt"
	"github.com/dockhand/dockhand/internal/slogger"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove unused container data",
	Long: `Remove stopped containers, dangling images, unused networks and build
cache via the container engine's prune.

Useful after a round of 'dockhand pull' updates has left superseded
images behind. Prompts for confirmation unless --yes is given.`,
	Example: `  dockhand prune
  dockhand prune --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return fmt.Errorf("get yes flag: %w", err)
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
				"Prune unused container data?",
				"Stopped containers, dangling images, unused networks and build cache will be removed.",
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

		if err := runtime.Prune(cmd.Context()); err != nil {
			return fmt.Errorf("prune: %w", err)
		}

		slogger.L(cmd.Context()).Info("pruned unused container data")
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(pruneCmd)
}
