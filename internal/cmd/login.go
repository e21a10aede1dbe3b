package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockhand/dockhand/internal/credstore"
	"github.com/dockhand/dockhand/internal/prompt"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store registry credentials",
	Long: `Store registry credentials in the system keyring.

Credentials are attached to token requests during 'dockhand check',
which raises Docker Hub's rate limit and allows checking private
images. Without stored credentials checks run anonymously.`,
	Example: `  dockhand login`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompter, err := requirePrompter(cmd.Context())
		if err != nil {
			return err
		}

		username, err := prompter.Input("Registry username")
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				prompter.Print("Canceled")
				return nil
			}
			return err
		}
		if username == "" {
			return errors.New("username must not be empty")
		}

		password, err := prompter.Secret("Password or access token")
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				prompter.Print("Canceled")
				return nil
			}
			return err
		}
		if password == "" {
			return errors.New("password must not be empty")
		}

		store, err := credstore.New()
		if err != nil {
			return fmt.Errorf("open credential store: %w", err)
		}

		if err := store.Set(credstore.Credentials{Username: username, Password: password}); err != nil {
			return fmt.Errorf("store credentials: %w", err)
		}

		prompter.Print(fmt.Sprintf("Stored registry credentials for %s", username))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
