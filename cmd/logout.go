package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/keyring"
)

// logoutOptions holds dependencies for the logout command.
type logoutOptions struct {
	store keyring.Store
}

func newLogoutCmd(opts logoutOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cred := keyring.NewCredential(opts.store)
			if err := cred.OnCredentialCleared(); err != nil {
				return fmt.Errorf("failed to clear session token: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
	cmd.SilenceUsage = true
	return cmd
}

func init() {
	rootCmd.AddCommand(newLogoutCmd(logoutOptions{
		store: keyring.NewEnvStore(keyring.NewSystemStore()),
	}))
}
