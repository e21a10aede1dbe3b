package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/slogger"
)

var psCmd = &cobra.Command{
	Use:   "ps <project>",
	Short: "List a project's running services",
	Long: `List the services of a project that currently have a running
container, together with their configured images.`,
	Example: `  dockhand ps media`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		runtime, err := requireRuntime(cmd.Context())
		if err != nil {
			return err
		}

		running, err := runtime.RunningServices(cmd.Context(), target)
		if err != nil {
			return fmt.Errorf("list running services: %w", err)
		}

		if len(running) == 0 {
			slogger.L(cmd.Context()).Info("no running services", "project", target.Project)
			return nil
		}

		cfg, err := runtime.Config(cmd.Context(), target)
		if err != nil {
			return fmt.Errorf("load project configuration: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tIMAGE")
		for _, service := range running {
			image := "-"
			if svc, ok := cfg.Services[service]; ok && svc.Image != "" {
				image = svc.Image
			}
			fmt.Fprintf(w, "%s\t%s\n", service, image)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(psCmd)
}
