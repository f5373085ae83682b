package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/keyring"
	"github.com/sixex/sixex/internal/ledger"
	"github.com/sixex/sixex/internal/money"
	"github.com/sixex/sixex/internal/output"
)

// buyOptions holds dependencies for the buy command.
type buyOptions struct {
	baseURL  string
	store    keyring.Store
	jsonMode bool
}

func newBuyCmd(opts *buyOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy SYMBOL AMOUNT",
		Short: "Invest a dollar amount into a stock",
		Long: `Invest a dollar amount (minimum $1.00) into a stock at its current
price. Fractional shares are credited to your portfolio.

Examples:
  sixex buy TSLA 25        # Invest $25 in Tesla
  sixex buy BRK.B 1.50     # Invest $1.50 in Berkshire Hathaway`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetJSONMode() {
				opts.jsonMode = true
			}
			return runBuy(cmd, opts, args[0], args[1])
		},
	}
	cmd.SilenceUsage = true
	return cmd
}

func runBuy(cmd *cobra.Command, opts *buyOptions, symbol, rawAmount string) error {
	// Validate locally before touching the wire.
	amount, err := decimal.NewFromString(strings.TrimPrefix(rawAmount, "$"))
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", rawAmount)
	}
	if amount.LessThan(ledger.MinInvestment) {
		return ledger.ErrBelowMinimum
	}

	cred := keyring.NewCredential(opts.store)
	token, err := cred.Token()
	if err != nil {
		return fmt.Errorf("not signed in. Run: sixex login")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, token)
	resp, err := client.Buy(ctx, symbol, amount)
	if err != nil {
		if api.IsAuthError(err) {
			_ = cred.OnCredentialCleared()
			return fmt.Errorf("session expired. Run: sixex login")
		}
		return err
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	if !opts.jsonMode {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s shares)\n\n", resp.Message, money.Shares(resp.SharesPurchased))
	}
	headers := []string{"Symbol", "Shares", "Invested"}
	rows := make([][]string, 0, len(resp.Portfolio))
	for _, h := range api.Holdings(resp.Portfolio) {
		rows = append(rows, []string{
			h.Symbol,
			money.Shares(h.Shares),
			money.USD(h.Invested),
		})
	}
	return formatter.Table(headers, rows)
}

func init() {
	rootCmd.AddCommand(newBuyCmd(&buyOptions{
		baseURL: loadBaseURL(),
		store:   keyring.NewEnvStore(keyring.NewSystemStore()),
	}))
}
