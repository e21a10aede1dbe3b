package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/freshness"
)

var checkCmd = &cobra.Command{
	Use:   "check <project[.service]>",
	Short: "Check running services for image updates",
	Long: `Compare the image digest of each running service against the latest
digest published in the registry and report which services can be
updated.

With a bare project name every running service is checked. A failure for
one service (private image, registry hiccup) is reported for that
service only and does not abort the rest. Apply updates with
'dockhand pull' followed by 'dockhand up'.`,
	Example: `  # Check every running service of the media project
  dockhand check media

  # Check one service
  dockhand check media.jellyfin`,
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

		checker := freshness.NewChecker(runtime, newRegistryClient(cmd.Context()), freshness.CheckerConfig{
			DefaultTag: defaultTag(cmd.Context()),
		})

		results, err := checker.Check(cmd.Context(), target)
		if err != nil {
			return fmt.Errorf("check %s: %w", target, err)
		}

		if len(results) == 0 {
			fmt.Printf("No running services in project %s\n", target.Project)
			return nil
		}

		for _, result := range results {
			fmt.Println(result.String())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
