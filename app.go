package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samgozman/fin-scraper/economist"
	"github.com/samgozman/fin-scraper/journalist"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
	"github.com/samgozman/fin-scraper/scavenger"
	"github.com/samgozman/fin-scraper/scavenger/edgar"
	"github.com/samgozman/fin-scraper/scavenger/stocks"
	"github.com/spf13/cobra"
)

type fredClient interface {
	FetchSeriesObservations(ctx context.Context, series string, start, end time.Time) (*economist.SeriesObservations, error)
	FetchReleaseObservations(ctx context.Context, q economist.ReleaseQuery) (*economist.ReleasePage, error)
	SearchSeries(ctx context.Context, text string) ([]economist.SeriesInfo, error)
}

type stockScreener interface {
	Quote(symbol string) (*stocks.Quote, error)
	History(symbol string, start, end time.Time, interval string) ([]stocks.Bar, error)
	Intraday(symbol string) ([]stocks.Bar, error)
	ValuationRatios(symbol string) (*stocks.Valuation, error)
}

type filingsFetcher interface {
	Filings(ctx context.Context, symbol, filingType string, limit int) ([]edgar.Filing, error)
}

type App struct {
	config *Config
	logger *slog.Logger
	sentry *SentryKit
	stdout io.Writer
	ready  bool
	now    func() time.Time

	// retryDelay is the initial delay between retries of a transient FRED failure
	retryDelay time.Duration

	fred    fredClient
	stocks  stockScreener
	filings filingsFetcher

	// newsProviders builds the feeds for the requested symbols
	newsProviders func(symbols []string) []journalist.NewsProvider
}

// NewApp creates an App that writes results to stdout. The clients are created by setup.
func NewApp(stdout io.Writer) *App {
	return &App{
		config: DefaultConfig(),
		logger: slog.Default(),
		sentry: &SentryKit{log: slog.Default()},
		stdout: stdout,
		now:    time.Now,

		retryDelay: defaultRetryDelay,
	}
}

// setup loads the environment and creates the clients. It is a no-op if the app is already set up.
func (a *App) setup() error {
	if a.ready {
		return nil
	}

	env, err := LoadEnv()
	if err != nil {
		return errlvl.Wrap(err, errlvl.FATAL)
	}
	a.config = NewConfig(env)

	runID := uuid.New().String()
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(env.LogLevel),
	})).With("run_id", runID)

	a.sentry, err = NewSentryKit(a.logger, env.SentryDSN, runID)
	if err != nil {
		return errlvl.Wrap(fmt.Errorf("failed to init sentry: %w", err), errlvl.FATAL)
	}

	sc, err := scavenger.New(edgar.Config{
		UserAgent: env.SecUserAgent,
		Timeout:   env.HTTPTimeout,
		Logger:    a.logger.With("component", "edgar"),
	})
	if err != nil {
		return err
	}
	a.stocks = sc.Stocks
	a.filings = sc.Filings

	a.fred = economist.New(economist.Config{
		APIKey:  env.FredAPIKey,
		BaseURL: env.FredBaseURL,
		Timeout: env.HTTPTimeout,
		Logger:  a.logger.With("component", "economist"),
	})
	a.newsProviders = yahooProviders
	a.ready = true

	return nil
}

func yahooProviders(symbols []string) []journalist.NewsProvider {
	providers := make([]journalist.NewsProvider, 0, len(symbols))
	for _, s := range symbols {
		providers = append(providers, journalist.NewYahooProvider(s))
	}
	return providers
}

// command wraps a RunE body: the failure is logged with the level it carries and sent to Sentry.
func (a *App) command(name string, run func(ctx context.Context) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, hub := a.sentry.GetHub(cmd.Context())
		span := a.sentry.StartCommandTransaction(ctx, name)
		defer span.Finish()
		a.sentry.AddBreadcrumb(hub, "command", name)

		err := run(span.Context())
		if err != nil {
			a.logger.Log(ctx, slogLevel(errlvl.From(err)), "command failed", "command", name, "error", err)
			a.sentry.CaptureError(hub, name, err)
		}
		return err
	}
}

func parseLogLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func slogLevel(l errlvl.Lvl) slog.Level {
	switch l {
	case errlvl.DEBUG:
		return slog.LevelDebug
	case errlvl.INFO:
		return slog.LevelInfo
	case errlvl.WARN:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
