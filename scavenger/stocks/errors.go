package stocks

import (
	"errors"
	"fmt"

	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

var (
	ErrUnknownPeriod = errors.New("unknown period")
	ErrNoData        = errors.New("no data returned")

	errEmptySymbol  = errors.New("symbol is empty")
	errFetchQuote   = errors.New("failed to fetch quote")
	errFetchHistory = errors.New("failed to fetch price history")
)

// Error is the error type of the stocks Screener.
type Error struct {
	level  errlvl.Lvl
	symbol string
	errs   []error
}

func (e *Error) Error() string {
	return e.getWrappedError().Error()
}

func (e *Error) Unwrap() error {
	return e.getWrappedError()
}

func (e *Error) getWrappedError() error {
	err := errors.Join(e.errs...)
	if e.symbol != "" {
		err = fmt.Errorf("symbol %s: %w", e.symbol, err)
	}
	return errlvl.Wrap(err, e.level)
}

func newError(lvl errlvl.Lvl, symbol string, errs ...error) *Error {
	return &Error{
		level:  lvl,
		symbol: symbol,
		errs:   errs,
	}
}
