package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/keyring"
	"github.com/sixex/sixex/internal/money"
	"github.com/sixex/sixex/internal/output"
)

// portfolioOptions holds dependencies for the portfolio command.
type portfolioOptions struct {
	baseURL  string
	store    keyring.Store
	jsonMode bool
}

func newPortfolioCmd(opts *portfolioOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Show your holdings valued at current prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetJSONMode() {
				opts.jsonMode = true
			}
			return runPortfolio(cmd, opts)
		},
	}
	cmd.SilenceUsage = true
	return cmd
}

func runPortfolio(cmd *cobra.Command, opts *portfolioOptions) error {
	cred := keyring.NewCredential(opts.store)
	token, err := cred.Token()
	if err != nil {
		return fmt.Errorf("not signed in. Run: sixex login")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, token)
	investments, err := client.Investments(ctx)
	if err != nil {
		if api.IsAuthError(err) {
			_ = cred.OnCredentialCleared()
			return fmt.Errorf("session expired. Run: sixex login")
		}
		return err
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	if len(investments.Investments) == 0 {
		return formatter.Print("No investments yet. Run: sixex buy SYMBOL AMOUNT")
	}

	headers := []string{"Symbol", "Name", "Shares", "Invested", "Price", "Value", "Gain", "Gain %", "Since"}
	rows := make([][]string, 0, len(investments.Investments))
	for _, row := range investments.Investments {
		since := ""
		if at := api.ParseTimestamp(row.InvestedAt); !at.IsZero() {
			since = at.Format("2006-01-02")
		}
		rows = append(rows, []string{
			row.StockSymbol,
			row.StockName,
			money.Shares(row.Shares),
			money.USD(row.InvestedAmount),
			money.USD(row.CurrentPrice),
			money.USD(row.CurrentValue),
			money.SignedUSD(row.GainLoss),
			money.SignedPercent(row.GainLossPercent),
			since,
		})
	}
	if err := formatter.Table(headers, rows); err != nil {
		return err
	}
	if opts.jsonMode {
		return nil
	}

	summary, err := client.Summary(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	return formatter.KV([][2]string{
		{"Holdings", fmt.Sprintf("%d", summary.HoldingsCount)},
		{"Total invested", money.USD(summary.TotalInvested)},
		{"Total value", money.USD(summary.TotalCurrentValue)},
		{"Total gain", fmt.Sprintf("%s (%s)", money.SignedUSD(summary.TotalGainLoss), money.SignedPercent(summary.TotalGainLossPercent))},
	})
}

func init() {
	rootCmd.AddCommand(newPortfolioCmd(&portfolioOptions{
		baseURL: loadBaseURL(),
		store:   keyring.NewEnvStore(keyring.NewSystemStore()),
	}))
}
