package edgar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://www.sec.gov"
	DefaultLimit   = 20

	// SEC fair access policy allows at most 10 requests per second.
	requestsPerSecond = 10
	maxRetries        = 3

	accessionPrefix = "accession-number="
)

var (
	ErrMissingUserAgent = errors.New("sec user agent is required")

	errEmptySymbol  = errors.New("symbol is empty")
	errFetchFilings = errors.New("failed to fetch filings")
)

// Config holds the settings of the Client.
type Config struct {
	UserAgent string // required by sec.gov, "Company Name admin@example.com"
	BaseURL   string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// Client fetches company filings from the SEC EDGAR Atom feed.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
}

// Filing is a single entry of the company filings feed.
type Filing struct {
	Type            string
	Title           string
	AccessionNumber string
	Link            string
	Filed           time.Time
	Summary         string
}

// New creates a new Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errlvl.Wrap(ErrMissingUserAgent, errlvl.ERROR)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		newBackOff: func() backoff.BackOff {
			bf := backoff.NewExponentialBackOff()
			bf.InitialInterval = time.Second
			bf.MaxInterval = 10 * time.Second
			return backoff.WithMaxRetries(bf, maxRetries)
		},
		logger: logger,
	}, nil
}

// Filings returns the latest filings of the company. filingType filters by form (10-K, 8-K...),
// empty means all forms. limit <= 0 means DefaultLimit.
func (c *Client) Filings(ctx context.Context, symbol, filingType string, limit int) ([]Filing, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errlvl.Wrap(errEmptySymbol, errlvl.INFO)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := url.Values{}
	q.Set("action", "getcompany")
	q.Set("CIK", symbol)
	q.Set("type", filingType)
	q.Set("dateb", "")
	q.Set("owner", "include")
	q.Set("count", strconv.Itoa(limit))
	q.Set("output", "atom")
	feedURL := c.baseURL + "/cgi-bin/browse-edgar?" + q.Encode()

	feed, err := backoff.RetryWithData[*gofeed.Feed](func() (*gofeed.Feed, error) {
		return c.fetch(ctx, feedURL)
	}, backoff.WithContext(c.newBackOff(), ctx))
	if err != nil {
		lvl := errlvl.ERROR
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
			lvl = errlvl.WARN
		}
		return nil, errlvl.Wrap(fmt.Errorf("%w for %s: %w", errFetchFilings, symbol, err), lvl)
	}

	filings := make([]Filing, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(filings) == limit {
			break
		}
		filings = append(filings, newFiling(item))
	}

	return filings, nil
}

// fetch waits for the rate limiter and parses the feed. Only throttled responses are retried.
func (c *Client) fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, backoff.Permanent(err)
	}

	fp := gofeed.NewParser()
	fp.Client = c.httpClient
	fp.UserAgent = c.userAgent

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn("sec throttled the request, retrying", "url", feedURL)
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	return feed, nil
}

func newFiling(item *gofeed.Item) Filing {
	f := Filing{
		Type:    filingType(item),
		Title:   strings.TrimSpace(item.Title),
		Link:    item.Link,
		Summary: strings.TrimSpace(item.Description),
	}
	if i := strings.Index(item.GUID, accessionPrefix); i >= 0 {
		f.AccessionNumber = item.GUID[i+len(accessionPrefix):]
	}
	switch {
	case item.UpdatedParsed != nil:
		f.Filed = item.UpdatedParsed.UTC()
	case item.PublishedParsed != nil:
		f.Filed = item.PublishedParsed.UTC()
	}
	return f
}

// filingType takes the form from the entry category, falling back to the title prefix ("10-K - Annual report").
func filingType(item *gofeed.Item) string {
	if len(item.Categories) > 0 && item.Categories[0] != "" {
		return item.Categories[0]
	}
	if form, _, ok := strings.Cut(item.Title, " - "); ok {
		return strings.TrimSpace(form)
	}
	return ""
}
