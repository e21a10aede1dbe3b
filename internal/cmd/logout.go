package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/credstore"
)

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Remove stored registry credentials",
	Example: `  dockhand logout`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := credstore.New()
		if err != nil {
			return fmt.Errorf("open credential store: %w", err)
		}

		if err := store.Delete(); err != nil {
			return fmt.Errorf("remove credentials: %w", err)
		}

		fmt.Println("Removed registry credentials")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
