package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samgozman/fin-scraper/internal/tabular"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
	"github.com/samgozman/fin-scraper/utils"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("invalid usage")

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fin-scraper",
		Short: "Stock and market economics data scraper",
		Long: `Stock and market economics data scraper.

Examples:
  # Get economic data from FRED
  fin-scraper fred --series GDP --start-date 2020-01-01

  # Walk all pages of a FRED release
  fin-scraper fred --release-id 52 --all --max-pages 10

  # Get stock price data
  fin-scraper stock --symbol AAPL --period 1y

  # Get company news and SEC filings
  fin-scraper news --symbol AAPL,MSFT --limit 10
  fin-scraper sec --symbol AAPL --filing-type 10-K --limit 5
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	root.AddCommand(
		newFredCmd(app),
		newStockCmd(app),
		newFundamentalCmd(app),
		newNewsCmd(app),
		newSecCmd(app),
	)

	return root
}

// emit prints the table and, if output is set and the table has rows, saves it as CSV.
func (a *App) emit(t *tabular.Table, output string) error {
	if err := t.Print(a.stdout); err != nil {
		return err
	}
	if output == "" || t.Len() == 0 {
		return nil
	}

	if err := t.WriteCSV(output); err != nil {
		return errlvl.Wrap(err, errlvl.ERROR)
	}
	_, err := fmt.Fprintf(a.stdout, "\nData saved to %s\n", output)
	return err
}

// parseDateFlag parses a YYYY-MM-DD flag value, empty means zero time.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(utils.DateLayout, value)
	if err != nil {
		return time.Time{}, usageError("--%s must be a YYYY-MM-DD date, got %q", name, value)
	}
	return t, nil
}

// splitSymbols splits a comma-separated list of tickers.
func splitSymbols(s string) []string {
	var symbols []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			symbols = append(symbols, part)
		}
	}
	return symbols
}

func usageError(format string, args ...any) error {
	return errlvl.Wrap(fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...)), errlvl.INFO)
}
