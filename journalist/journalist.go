package journalist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samgozman/fin-scraper/pkg/errlvl"
	"golang.org/x/sync/errgroup"
)

// Journalist collects news from a set of providers.
type Journalist struct {
	Name       string
	providers  []NewsProvider
	flagKeys   []string
	filterKeys []string
	limit      int
}

func NewJournalist(name string, providers []NewsProvider) *Journalist {
	return &Journalist{
		Name:      name,
		providers: providers,
	}
}

// FlagByKeys sets the keywords that mark news as suspicious.
func (j *Journalist) FlagByKeys(keys []string) *Journalist {
	j.flagKeys = keys
	return j
}

// FilterByKeys keeps only news containing one of the keys. Empty keys disable the filter.
func (j *Journalist) FilterByKeys(keys []string) *Journalist {
	j.filterKeys = keys
	return j
}

// Limit caps the number of returned news, 0 means no limit.
func (j *Journalist) Limit(limit int) *Journalist {
	j.limit = limit
	return j
}

// GetLatestNews fetches news published after until from all providers in parallel.
// A failing or panicking provider does not discard the news of the others: the merged
// news are returned together with the joined provider errors.
func (j *Journalist) GetLatestNews(ctx context.Context, until time.Time) (news NewsList, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(error)
			if !ok {
				pe = fmt.Errorf("%w: %v", errPanicUnknown, r)
			}
			err = newError(errlvl.FATAL, errPanicGetLatestNews, pe)
		}
	}()

	if len(j.providers) == 0 {
		return nil, newError(errlvl.INFO, errNoProviders)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range j.providers {
		p := p
		g.Go(func() error {
			res, err := fetch(gctx, p, until)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			news = append(news, res...)
			return nil
		})
	}
	_ = g.Wait()

	news = news.MapIDs()
	if len(j.flagKeys) > 0 {
		news.FlagByKeywords(j.flagKeys)
	}
	if len(j.filterKeys) > 0 {
		news = news.FilterByKeywords(j.filterKeys)
	}
	news.SortByDate()
	if j.limit > 0 && len(news) > j.limit {
		news = news[:j.limit]
	}

	if len(errs) > 0 {
		return news, newError(errlvl.WARN, errFetchingNews, errors.Join(errs...))
	}

	return news, nil
}

// fetch calls the provider and turns its panic into an error, so one broken provider
// does not take down the others.
func fetch(ctx context.Context, p NewsProvider, until time.Time) (news NewsList, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(error)
			if !ok {
				pe = fmt.Errorf("%w: %v", errPanicUnknown, r)
			}
			news, err = nil, newError(errlvl.ERROR, errPanicProvider, pe).WithProvider(providerName(p))
		}
	}()

	return p.Fetch(ctx, until)
}

func providerName(p NewsProvider) string {
	if rp, ok := p.(*RssProvider); ok && rp != nil {
		return rp.Name
	}
	return fmt.Sprintf("%T", p)
}
