package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/project"
	"github.com/dockhand/dockhand/internal/slogger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in the projects directory",
	Long: `List the subdirectories of the projects directory that contain a
compose file.`,
	Example: `  dockhand list`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectsDir(cmd.Context())
		if err != nil {
			return err
		}

		projects, err := project.List(dir)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}

		if len(projects) == 0 {
			slogger.L(cmd.Context()).Info("no projects found", "dir", dir)
			return nil
		}

		for _, name := range projects {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
