package journalist

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

// yahooHeadlineURL is the Yahoo Finance per-ticker headline feed.
const yahooHeadlineURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// userAgent is sent with feed requests, some feeds reject the default Go client.
const userAgent = "Mozilla/5.0 (compatible; fin-scraper/1.0)"

// NewsProvider is the interface for the data fetcher (via RSS, API, etc.)
type NewsProvider interface {
	Fetch(ctx context.Context, until time.Time) (NewsList, error)
}

// RssProvider is the RSS provider implementation
type RssProvider struct {
	Name string // Name is used for logging purposes
	URL  string
}

// NewRssProvider creates a new RssProvider instance
func NewRssProvider(name, url string) *RssProvider {
	return &RssProvider{
		Name: name,
		URL:  url,
	}
}

// NewYahooProvider creates an RssProvider for the Yahoo Finance headlines of the symbol.
func NewYahooProvider(symbol string) *RssProvider {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	return NewRssProvider("yahoo:"+symbol, fmt.Sprintf(yahooHeadlineURL, url.QueryEscape(symbol)))
}

// Fetch fetches the news from the RSS feed. News published before until are skipped.
// Items without a usable date are skipped too and reported as a WARN error next to the parsed news.
func (r *RssProvider) Fetch(ctx context.Context, until time.Time) (NewsList, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	feed, err := fp.ParseURLWithContext(r.URL, ctx)
	if err != nil {
		return nil, newError(errlvl.WARN, errFetchingNews, err).WithProvider(r.Name)
	}

	var (
		news    NewsList
		skipped []error
	)
	for _, item := range feed.Items {
		n, err := newsFromItem(item, r.Name)
		if err != nil {
			skipped = append(skipped, newError(errlvl.WARN, err).WithItem(item.Link))
			continue
		}
		if n.Date.Before(until) {
			continue
		}
		news = append(news, n)
	}

	if len(skipped) > 0 {
		return news, newError(errlvl.WARN, errParsingNews, errors.Join(skipped...)).WithProvider(r.Name)
	}

	return news, nil
}

// newsFromItem prefers the dates gofeed already parsed and falls back to the raw strings.
func newsFromItem(item *gofeed.Item, provider string) (*News, error) {
	switch {
	case item.PublishedParsed != nil:
		return newNewsAt(item.Title, item.Description, item.Link, *item.PublishedParsed, provider), nil
	case item.UpdatedParsed != nil:
		return newNewsAt(item.Title, item.Description, item.Link, *item.UpdatedParsed, provider), nil
	}

	date := item.Published
	if date == "" {
		date = item.Updated
	}
	return NewNews(item.Title, item.Description, item.Link, date, provider)
}
