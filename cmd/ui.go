package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/catalog"
	"github.com/sixex/sixex/internal/config"
	"github.com/sixex/sixex/internal/keyring"
	"github.com/sixex/sixex/internal/session"
	"github.com/sixex/sixex/internal/tui"
)

// restoreSession fetches the profile for a persisted credential and, on
// success, authenticates the session with the returned holdings. A
// rejected credential is cleared; a missing one is not an error.
func restoreSession(cfg *config.Config, cred *keyring.Credential, sess *session.Session) error {
	token, err := cred.Token()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(cfg.APIBaseURL, token)
	user, err := client.Profile(ctx)
	if err != nil {
		if api.IsAuthError(err) {
			_ = cred.OnCredentialCleared()
			return nil
		}
		return err
	}

	sess.Authenticate(
		session.Identity{ID: user.ID, Email: user.Email},
		token,
		api.Holdings(user.Portfolio),
	)
	return nil
}

func init() {
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive terminal UI",
		Long: `Launch the full-screen terminal UI.

Views:
  - Landing: sign in or create an account
  - Markets: browse the stock catalog
  - Detail: inspect a stock and invest a dollar amount
  - Portfolio: your holdings, value and gain/loss

Keyboard shortcuts:
  1/2     Switch between markets and portfolio
  ↑/↓     Navigate rows
  enter   Open stock / submit form
  esc     Back from a stock to the markets
  r       Refresh prices
  l       Log out
  q       Quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ConfigPath())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cred := keyring.NewCredential(keyring.NewEnvStore(keyring.NewSystemStore()))
			sess := session.New(cred)

			// A restore failure only means starting anonymous.
			if err := restoreSession(cfg, cred, sess); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Note: could not restore session: %v\n", err)
			}

			p := tea.NewProgram(tui.New(cfg, sess, catalog.Builtin()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	uiCmd.SilenceUsage = true
	rootCmd.AddCommand(uiCmd)
}
