package main

import (
	"context"

	"github.com/spf13/cobra"
)

type secOptions struct {
	symbol     string
	filingType string
	limit      int
	output     string
}

func newSecCmd(app *App) *cobra.Command {
	o := &secOptions{}
	cmd := &cobra.Command{
		Use:   "sec",
		Short: "Get SEC filings",
		RunE: app.command("sec", func(ctx context.Context) error {
			filings, err := app.filings.Filings(ctx, o.symbol, o.filingType, o.limit)
			if err != nil {
				return err
			}
			return app.emit(filingsTable(o.symbol, filings), o.output)
		}),
	}

	cmd.Flags().StringVar(&o.symbol, "symbol", "", "Stock ticker symbol")
	cmd.Flags().StringVar(&o.filingType, "filing-type", "", "Filing type (10-K, 10-Q, 8-K, etc.)")
	cmd.Flags().IntVar(&o.limit, "limit", 20, "Number of filings")
	cmd.Flags().StringVar(&o.output, "output", "", "Output file path (CSV)")
	_ = cmd.MarkFlagRequired("symbol")

	return cmd
}
