package main

import (
	"context"

	"github.com/samgozman/fin-scraper/scavenger/stocks"
	"github.com/spf13/cobra"
)

type stockOptions struct {
	symbol    string
	quote     bool
	intraday  bool
	period    string
	startDate string
	endDate   string
	interval  string
	output    string
}

func newStockCmd(app *App) *cobra.Command {
	o := &stockOptions{}
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Get stock price data",
		RunE: app.command("stock", func(ctx context.Context) error {
			return app.runStock(o)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&o.symbol, "symbol", "", "Stock ticker symbol")
	f.BoolVar(&o.quote, "quote", false, "Get real-time quote")
	f.BoolVar(&o.intraday, "intraday", false, "Get intraday data")
	f.StringVar(&o.period, "period", "1y", "Period for historical data (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
	f.StringVar(&o.startDate, "start-date", "", "Start date (YYYY-MM-DD), overrides --period")
	f.StringVar(&o.endDate, "end-date", "", "End date (YYYY-MM-DD)")
	f.StringVar(&o.interval, "interval", "1d", "Bar interval of historical data (1d, 1wk, 1mo)")
	f.StringVar(&o.output, "output", "", "Output file path (CSV)")
	_ = cmd.MarkFlagRequired("symbol")

	return cmd
}

func (a *App) runStock(o *stockOptions) error {
	switch {
	case o.quote:
		q, err := a.stocks.Quote(o.symbol)
		if err != nil {
			return err
		}
		return a.emit(quoteTable(q), o.output)

	case o.intraday:
		bars, err := a.stocks.Intraday(o.symbol)
		if err != nil {
			return err
		}
		return a.emit(barsTable("Intraday Data: "+o.symbol, bars), o.output)
	}

	now := a.now()
	start, err := parseDateFlag("start-date", o.startDate)
	if err != nil {
		return err
	}
	if start.IsZero() {
		if start, err = stocks.PeriodStart(o.period, now); err != nil {
			return usageError("%s", err)
		}
	}
	end, err := parseDateFlag("end-date", o.endDate)
	if err != nil {
		return err
	}
	if end.IsZero() {
		end = now
	}

	bars, err := a.stocks.History(o.symbol, start, end, o.interval)
	if err != nil {
		return err
	}
	return a.emit(barsTable("Historical Data: "+o.symbol, bars), o.output)
}
