package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/output"
)

type statusOptions struct {
	baseURL  string
	jsonMode bool
}

func newStatusCmd(opts *statusOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check backend service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetJSONMode() {
				opts.jsonMode = true
			}
			return runStatus(cmd, opts)
		},
	}
	cmd.SilenceUsage = true
	return cmd
}

func runStatus(cmd *cobra.Command, opts *statusOptions) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := api.NewClient(opts.baseURL, "")
	health, err := client.Health(ctx)
	if err != nil {
		return err
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	return formatter.KV([][2]string{
		{"Status", health.Status},
		{"Database", health.Database},
		{"Checked", health.Timestamp},
	})
}

func init() {
	rootCmd.AddCommand(newStatusCmd(&statusOptions{
		baseURL: loadBaseURL(),
	}))
}
