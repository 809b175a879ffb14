package main

import (
	"context"

	"github.com/spf13/cobra"
)

type fundamentalOptions struct {
	symbol string
	output string
}

func newFundamentalCmd(app *App) *cobra.Command {
	o := &fundamentalOptions{}
	cmd := &cobra.Command{
		Use:   "fundamental",
		Short: "Get valuation ratios of a company",
		RunE: app.command("fundamental", func(ctx context.Context) error {
			v, err := app.stocks.ValuationRatios(o.symbol)
			if err != nil {
				return err
			}
			return app.emit(valuationTable(v), o.output)
		}),
	}

	cmd.Flags().StringVar(&o.symbol, "symbol", "", "Stock ticker symbol")
	cmd.Flags().StringVar(&o.output, "output", "", "Output file path (CSV)")
	_ = cmd.MarkFlagRequired("symbol")

	return cmd
}
