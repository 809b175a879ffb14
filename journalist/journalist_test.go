package journalist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

type panickingProvider struct{}

func (panickingProvider) Fetch(context.Context, time.Time) (NewsList, error) {
	panic("feed exploded")
}

func TestJournalist_GetLatestNews(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	stocks := newFeedServer(t, "stocks",
		rssItem("Apple beats estimates", "https://example.com/a", now.Add(-3*time.Hour)),
		rssItem("Sponsored: buy now", "https://example.com/b", now.Add(-2*time.Hour)),
		rssItem("Ancient history", "https://example.com/c", now.AddDate(0, -1, 0)),
	)
	markets := newFeedServer(t, "markets",
		rssItem("Markets rally", "https://example.com/d", now.Add(-time.Hour)),
		// same link and date as in the stocks feed
		rssItem("Apple beats estimates", "https://example.com/a", now.Add(-3*time.Hour)),
	)
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	type fields struct {
		providers  []NewsProvider
		flagKeys   []string
		filterKeys []string
		limit      int
	}
	tests := []struct {
		name          string
		fields        fields
		wantTitles    []string
		wantSuspect   []string
		wantErr       bool
		wantErrLvl    errlvl.Lvl
		wantErrTarget error
	}{
		{
			name: "valid rss feed with 2 providers",
			fields: fields{
				providers: []NewsProvider{
					NewRssProvider("test:stocks", stocks.URL),
					NewRssProvider("test:markets", markets.URL),
				},
				flagKeys: []string{"sponsored"},
			},
			wantTitles:  []string{"Markets rally", "Sponsored: buy now", "Apple beats estimates"},
			wantSuspect: []string{"Sponsored: buy now"},
		},
		{
			name: "partial results if one of the providers is invalid",
			fields: fields{
				providers: []NewsProvider{
					NewRssProvider("test:stocks", stocks.URL),
					NewRssProvider("test:invalid", broken.URL),
				},
			},
			wantTitles: []string{"Sponsored: buy now", "Apple beats estimates"},
			wantErr:    true,
			wantErrLvl: errlvl.WARN,
		},
		{
			name: "filter and limit",
			fields: fields{
				providers: []NewsProvider{
					NewRssProvider("test:stocks", stocks.URL),
					NewRssProvider("test:markets", markets.URL),
				},
				filterKeys: []string{"apple", "markets"},
				limit:      1,
			},
			wantTitles: []string{"Markets rally"},
		},
		{
			name: "panicking provider does not discard other news",
			fields: fields{
				providers: []NewsProvider{
					NewRssProvider("test:markets", markets.URL),
					panickingProvider{},
				},
			},
			wantTitles:    []string{"Markets rally", "Apple beats estimates"},
			wantErr:       true,
			wantErrLvl:    errlvl.ERROR,
			wantErrTarget: errPanicProvider,
		},
		{
			name:          "no providers",
			fields:        fields{},
			wantErr:       true,
			wantErrLvl:    errlvl.INFO,
			wantErrTarget: errNoProviders,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJournalist("test", tt.fields.providers).
				FlagByKeys(tt.fields.flagKeys).
				FilterByKeys(tt.fields.filterKeys).
				Limit(tt.fields.limit)

			ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
			defer cancel()
			got, err := j.GetLatestNews(ctx, now.AddDate(0, 0, -3))
			if (err != nil) != tt.wantErr {
				t.Errorf("Journalist.GetLatestNews() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if lvl := errlvl.From(err); lvl != tt.wantErrLvl {
					t.Errorf("Journalist.GetLatestNews() error level = %v, want %v", lvl, tt.wantErrLvl)
				}
				if tt.wantErrTarget != nil && !errors.Is(err, tt.wantErrTarget) {
					t.Errorf("Journalist.GetLatestNews() error = %v, want %v", err, tt.wantErrTarget)
				}
			}

			if len(got) != len(tt.wantTitles) {
				t.Fatalf("Journalist.GetLatestNews() len = %v, want %v", len(got), len(tt.wantTitles))
			}
			var suspects []string
			for i, news := range got {
				if news.Title != tt.wantTitles[i] {
					t.Errorf("Journalist.GetLatestNews() news[%d].Title = %v, want %v", i, news.Title, tt.wantTitles[i])
				}
				if news.IsSuspicious {
					suspects = append(suspects, news.Title)
				}
			}
			if len(suspects) != len(tt.wantSuspect) {
				t.Errorf("Journalist.GetLatestNews() suspicious = %v, want %v", suspects, tt.wantSuspect)
			}
		})
	}
}
