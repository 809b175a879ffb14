package journalist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

var (
	errFetchingNews       = errors.New("failed to fetch news")
	errParsingNews        = errors.New("failed to parse news item")
	errNoProviders        = errors.New("no news providers configured")
	errPanicGetLatestNews = errors.New("panic in Journalist.GetLatestNews")
	errPanicProvider      = errors.New("panic in news provider")
	errPanicUnknown       = errors.New("unknown panic")
)

// Error is a news collection failure, optionally scoped to a feed and one of its items.
type Error struct {
	level    errlvl.Lvl
	errs     []error
	provider string // feed name, e.g. yahoo:AAPL
	item     string // link of the feed item that failed
}

func (e *Error) Error() string {
	return e.wrapped().Error()
}

func (e *Error) Unwrap() error {
	return e.wrapped()
}

// WithProvider scopes the error to the named feed.
func (e *Error) WithProvider(name string) *Error {
	e.provider = name
	return e
}

// WithItem scopes the error to a single feed item, identified by its link.
func (e *Error) WithItem(link string) *Error {
	e.item = link
	return e
}

func (e *Error) wrapped() error {
	err := errors.Join(e.errs...)

	var scope []string
	if e.provider != "" {
		scope = append(scope, "provider "+e.provider)
	}
	if e.item != "" {
		scope = append(scope, "item "+e.item)
	}
	if len(scope) > 0 {
		err = fmt.Errorf("%s: %w", strings.Join(scope, ", "), err)
	}

	return errlvl.Wrap(err, e.level)
}

func newError(lvl errlvl.Lvl, errs ...error) *Error {
	return &Error{
		level: lvl,
		errs:  errs,
	}
}
