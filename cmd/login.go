package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/config"
	"github.com/sixex/sixex/internal/keyring"
)

// passwordReader abstracts terminal password input for testing.
type passwordReader interface {
	ReadPassword() (string, error)
	IsTerminal() bool
}

// terminalReader reads passwords from the terminal using golang.org/x/term.
type terminalReader struct {
	fd int
}

func newTerminalReader(fd int) *terminalReader {
	return &terminalReader{fd: fd}
}

func (r *terminalReader) ReadPassword() (string, error) {
	password, err := term.ReadPassword(r.fd)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (r *terminalReader) IsTerminal() bool {
	return term.IsTerminal(r.fd)
}

// linePrompter abstracts line input for testing.
type linePrompter interface {
	ReadLine(prompt string) (string, error)
}

// terminalPrompter implements linePrompter over stdin.
type terminalPrompter struct {
	reader io.Reader
	writer io.Writer
}

func newTerminalPrompter(r io.Reader, w io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: r, writer: w}
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.writer, prompt)
	scanner := bufio.NewScanner(p.reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// loginOptions holds dependencies for the login command.
// This allows for dependency injection in tests.
type loginOptions struct {
	baseURL        string
	store          keyring.Store
	passwordReader passwordReader
	prompt         linePrompter
}

// newLoginCmd creates the login command with the given options.
func newLoginCmd(opts loginOptions) *cobra.Command {
	var register bool
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to 6ex",
		Long: `Sign in with your email and password. The issued session token is
stored in the system keyring.

Examples:
  sixex login                      # Sign in to an existing account
  sixex login --register           # Create a new account
  sixex login --email a@b.com      # Skip the email prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts, email, register)
		},
	}

	cmd.Flags().BoolVar(&register, "register", false, "Create a new account instead of signing in")
	cmd.Flags().StringVar(&email, "email", "", "Email address (prompted if omitted)")
	cmd.SilenceUsage = true

	return cmd
}

func runLogin(cmd *cobra.Command, opts loginOptions, email string, register bool) error {
	if !opts.passwordReader.IsTerminal() {
		return fmt.Errorf("login requires an interactive terminal\nRun this command directly in your terminal (not piped or in a script)")
	}

	if email == "" {
		var err error
		email, err = opts.prompt.ReadLine("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	password, err := opts.passwordReader.ReadPassword()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout()) // Newline after hidden input

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, "")
	var resp *api.AuthResponse
	if register {
		resp, err = client.Register(ctx, email, password)
	} else {
		resp, err = client.Login(ctx, email, password)
	}
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	cred := keyring.NewCredential(opts.store)
	if err := cred.OnCredentialObtained(resp.AccessToken); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	if register {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account created. Signed in as %s\n", resp.User.Email)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", resp.User.Email)
	}
	if n := len(resp.User.Portfolio); n > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Portfolio: %d holding(s). Run: sixex portfolio\n", n)
	}
	return nil
}

func init() {
	loginCmd := newLoginCmd(loginOptions{
		baseURL:        loadBaseURL(),
		store:          keyring.NewEnvStore(keyring.NewSystemStore()),
		passwordReader: newTerminalReader(int(os.Stdin.Fd())),
		prompt:         newTerminalPrompter(os.Stdin, os.Stdout),
	})
	rootCmd.AddCommand(loginCmd)
}

// loadBaseURL reads the configured API base URL, falling back to the
// default when the config file is unreadable.
func loadBaseURL() string {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return config.DefaultAPIBaseURL
	}
	return cfg.APIBaseURL
}
