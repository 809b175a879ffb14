package main

import (
	"context"
	"fmt"

	"github.com/samgozman/fin-scraper/economist"
	"github.com/spf13/cobra"
)

type fredOptions struct {
	series    string
	startDate string
	endDate   string
	releaseID int
	cursor    string
	limit     int
	all       bool
	maxPages  int
	search    string
	list      bool
	output    string
	retries   uint
}

func newFredCmd(app *App) *cobra.Command {
	o := &fredOptions{}
	cmd := &cobra.Command{
		Use:   "fred",
		Short: "Get FRED economic data",
		RunE: app.command("fred", func(ctx context.Context) error {
			return app.runFred(ctx, o)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&o.series, "series", "", "FRED series ID or alias (e.g., GDP, UNRATE, CPI)")
	f.StringVar(&o.startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&o.endDate, "end-date", "", "End date (YYYY-MM-DD)")
	f.IntVar(&o.releaseID, "release-id", 0, "FRED release ID")
	f.StringVar(&o.cursor, "cursor", "", "Continuation cursor of a release, as printed by a previous run")
	f.IntVar(&o.limit, "limit", 0, "Page size of release observations (service default if 0)")
	f.BoolVar(&o.all, "all", false, "Fetch all release pages")
	f.IntVar(&o.maxPages, "max-pages", 0, "Stop --all after this many pages (0 means no limit, requires --all)")
	f.StringVar(&o.search, "search", "", "Search for series")
	f.BoolVar(&o.list, "list", false, "List the known series aliases")
	f.StringVar(&o.output, "output", "", "Output file path (CSV)")
	f.UintVar(&o.retries, "retries", 0, "Retry transient request failures this many times")

	return cmd
}

func (a *App) runFred(ctx context.Context, o *fredOptions) error {
	switch {
	case o.list:
		return a.emit(knownSeriesTable(), o.output)

	case o.search != "":
		res, err := retryTransient(ctx, a.logger, o.retries, a.retryDelay, func() ([]economist.SeriesInfo, error) {
			return a.fred.SearchSeries(ctx, o.search)
		})
		if err != nil {
			return err
		}
		return a.emit(searchTable(o.search, res), o.output)

	case o.releaseID != 0:
		return a.runRelease(ctx, o)

	case o.series != "":
		start, err := parseDateFlag("start-date", o.startDate)
		if err != nil {
			return err
		}
		end, err := parseDateFlag("end-date", o.endDate)
		if err != nil {
			return err
		}

		res, err := retryTransient(ctx, a.logger, o.retries, a.retryDelay, func() (*economist.SeriesObservations, error) {
			return a.fred.FetchSeriesObservations(ctx, o.series, start, end)
		})
		if err != nil {
			return err
		}
		return a.emit(seriesTable(res), o.output)

	default:
		return usageError("please specify --series, --release-id, --search or --list")
	}
}

func (a *App) runRelease(ctx context.Context, o *fredOptions) error {
	if o.maxPages < 0 {
		return usageError("--max-pages must not be negative")
	}
	if o.maxPages > 0 && !o.all {
		return usageError("--max-pages requires --all")
	}

	maxPages := 1
	if o.all {
		maxPages = o.maxPages
	}

	fetch := func(ctx context.Context, q economist.ReleaseQuery) (*economist.ReleasePage, error) {
		return retryTransient(ctx, a.logger, o.retries, a.retryDelay, func() (*economist.ReleasePage, error) {
			return a.fred.FetchReleaseObservations(ctx, q)
		})
	}

	res, err := collectReleasePages(ctx, fetch, economist.ReleaseQuery{
		ReleaseID: o.releaseID,
		Cursor:    economist.Cursor(o.cursor),
		Limit:     o.limit,
	}, maxPages)
	if len(res.Pages) == 0 {
		return err
	}

	if emitErr := a.emit(releaseTable(o.releaseID, res.Pages), o.output); emitErr != nil {
		return emitErr
	}
	if res.Next != "" {
		if _, werr := fmt.Fprintf(a.stdout, "\nNext cursor: %s\n", res.Next); werr != nil {
			return werr
		}
	}

	return err
}
