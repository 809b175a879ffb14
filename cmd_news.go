package main

import (
	"context"
	"strings"
	"time"

	"github.com/samgozman/fin-scraper/journalist"
	"github.com/spf13/cobra"
)

type newsOptions struct {
	symbol string
	limit  int
	output string
}

func newNewsCmd(app *App) *cobra.Command {
	o := &newsOptions{}
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Get company news",
		RunE: app.command("news", func(ctx context.Context) error {
			return app.runNews(ctx, o)
		}),
	}

	cmd.Flags().StringVar(&o.symbol, "symbol", "", "Stock ticker symbol, comma-separated for several")
	cmd.Flags().IntVar(&o.limit, "limit", 20, "Number of articles")
	cmd.Flags().StringVar(&o.output, "output", "", "Output file path (CSV)")
	_ = cmd.MarkFlagRequired("symbol")

	return cmd
}

func (a *App) runNews(ctx context.Context, o *newsOptions) error {
	symbols := splitSymbols(o.symbol)
	if len(symbols) == 0 {
		return usageError("--symbol must name at least one ticker")
	}

	j := journalist.NewJournalist("CompanyNews", a.newsProviders(symbols)).
		FlagByKeys(a.config.suspiciousKeywords).
		Limit(o.limit)

	news, err := j.GetLatestNews(ctx, time.Time{})
	if err != nil {
		if len(news) == 0 {
			return err
		}
		a.logger.Warn("some news providers failed", "error", err)
	}

	return a.emit(newsTable("Company News: "+strings.Join(symbols, ","), news), o.output)
}
