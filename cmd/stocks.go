package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/money"
	"github.com/sixex/sixex/internal/output"
)

// stocksOptions holds dependencies for the stocks command.
type stocksOptions struct {
	baseURL  string
	jsonMode bool
}

func newStocksCmd(opts *stocksOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stocks [SYMBOL]",
		Short: "List the stock catalog or show one stock",
		Long: `List the investable stock catalog with current prices, or show a
single stock by symbol.

Examples:
  sixex stocks           # Full catalog
  sixex stocks TSLA      # One stock
  sixex stocks --json    # Output in JSON format`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetJSONMode() {
				opts.jsonMode = true
			}
			if len(args) == 1 {
				return runStock(cmd, opts, args[0])
			}
			return runStocks(cmd, opts)
		},
	}
	cmd.SilenceUsage = true
	return cmd
}

func runStocks(cmd *cobra.Command, opts *stocksOptions) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, "")
	resp, err := client.Stocks(ctx)
	if err != nil {
		return err
	}

	instruments := resp.Instruments(nil)
	if len(instruments) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No stocks returned")
		return nil
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	headers := []string{"Symbol", "Name", "Price", "Change", "Change %"}
	rows := make([][]string, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, []string{
			inst.Symbol,
			inst.Name,
			money.USD(inst.Price),
			money.SignedUSD(inst.Change),
			money.SignedPercent(inst.ChangePercent),
		})
	}
	return formatter.Table(headers, rows)
}

func runStock(cmd *cobra.Command, opts *stocksOptions, symbol string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, "")
	stock, err := client.Stock(ctx, symbol)
	if err != nil {
		return err
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	return formatter.KV([][2]string{
		{"Symbol", stock.Symbol},
		{"Name", stock.Name},
		{"Price", money.USD(stock.Price)},
		{"Change", money.SignedUSD(stock.Change)},
		{"Change %", money.SignedPercent(stock.ChangePercent)},
	})
}

func init() {
	rootCmd.AddCommand(newStocksCmd(&stocksOptions{baseURL: loadBaseURL()}))
}
