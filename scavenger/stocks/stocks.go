package stocks

import (
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
	"github.com/shopspring/decimal"
)

const intradayInterval = datetime.Interval("5m")

// barIterator is the part of chart.Iter the Screener reads.
type barIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// Screener fetches quotes, price history and valuation ratios from Yahoo Finance.
type Screener struct {
	getEquity func(symbol string) (*finance.Equity, error)
	getChart  func(params *chart.Params) barIterator
	now       func() time.Time
}

// NewScreener creates a Screener backed by the Yahoo Finance API.
func NewScreener() *Screener {
	return &Screener{
		getEquity: equity.Get,
		getChart: func(params *chart.Params) barIterator {
			return chart.Get(params)
		},
		now: time.Now,
	}
}

// Quote is the latest market data of a symbol.
type Quote struct {
	Symbol           string
	Name             string
	Currency         string
	Price            decimal.Decimal
	Change           decimal.Decimal
	ChangePercent    decimal.Decimal
	Open             decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	PreviousClose    decimal.Decimal
	Volume           int
	FiftyTwoWeekLow  decimal.Decimal
	FiftyTwoWeekHigh decimal.Decimal
	MarketCap        int64
	Time             time.Time
}

// Bar is a single OHLC candle.
type Bar struct {
	Time     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	AdjClose decimal.Decimal
	Volume   int
}

// Valuation holds the valuation ratios of a company.
type Valuation struct {
	Symbol        string
	Name          string
	TrailingPE    decimal.Decimal
	ForwardPE     decimal.Decimal
	PriceToBook   decimal.Decimal
	BookValue     decimal.Decimal
	EPS           decimal.Decimal // trailing twelve months
	ForwardEPS    decimal.Decimal
	DividendYield decimal.Decimal // trailing annual, as a fraction
	MarketCap     int64
}

// Quote returns the latest quote of the symbol.
func (s *Screener) Quote(symbol string) (*Quote, error) {
	e, err := s.equity(symbol)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Symbol:           e.Symbol,
		Name:             companyName(e),
		Currency:         e.CurrencyID,
		Price:            decimal.NewFromFloat(e.RegularMarketPrice),
		Change:           decimal.NewFromFloat(e.RegularMarketChange),
		ChangePercent:    decimal.NewFromFloat(e.RegularMarketChangePercent),
		Open:             decimal.NewFromFloat(e.RegularMarketOpen),
		High:             decimal.NewFromFloat(e.RegularMarketDayHigh),
		Low:              decimal.NewFromFloat(e.RegularMarketDayLow),
		PreviousClose:    decimal.NewFromFloat(e.RegularMarketPreviousClose),
		Volume:           e.RegularMarketVolume,
		FiftyTwoWeekLow:  decimal.NewFromFloat(e.FiftyTwoWeekLow),
		FiftyTwoWeekHigh: decimal.NewFromFloat(e.FiftyTwoWeekHigh),
		MarketCap:        e.MarketCap,
		Time:             time.Unix(int64(e.RegularMarketTime), 0).UTC(),
	}, nil
}

// ValuationRatios returns the valuation ratios of the symbol.
func (s *Screener) ValuationRatios(symbol string) (*Valuation, error) {
	e, err := s.equity(symbol)
	if err != nil {
		return nil, err
	}

	return &Valuation{
		Symbol:        e.Symbol,
		Name:          companyName(e),
		TrailingPE:    decimal.NewFromFloat(e.TrailingPE),
		ForwardPE:     decimal.NewFromFloat(e.ForwardPE),
		PriceToBook:   decimal.NewFromFloat(e.PriceToBook),
		BookValue:     decimal.NewFromFloat(e.BookValue),
		EPS:           decimal.NewFromFloat(e.EpsTrailingTwelveMonths),
		ForwardEPS:    decimal.NewFromFloat(e.EpsForward),
		DividendYield: decimal.NewFromFloat(e.TrailingAnnualDividendYield),
		MarketCap:     e.MarketCap,
	}, nil
}

// History returns the bars of the symbol between start and end with the given interval (1d, 1wk, 1mo, 5m...).
func (s *Screener) History(symbol string, start, end time.Time, interval string) ([]Bar, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return nil, newError(errlvl.INFO, "", errEmptySymbol)
	}

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.Interval(interval),
	}

	var bars []Bar
	iter := s.getChart(params)
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, Bar{
			Time:     time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			AdjClose: b.AdjClose,
			Volume:   b.Volume,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, newError(errlvl.WARN, symbol, errFetchHistory, err)
	}

	return bars, nil
}

// Intraday returns today's 5-minute bars of the symbol.
// The chart API works with whole days, so the range is today's UTC midnight to the next one.
func (s *Screener) Intraday(symbol string) ([]Bar, error) {
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.History(symbol, start, start.AddDate(0, 0, 1), string(intradayInterval))
}

func (s *Screener) equity(symbol string) (*finance.Equity, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return nil, newError(errlvl.INFO, "", errEmptySymbol)
	}

	e, err := s.getEquity(symbol)
	if err != nil {
		return nil, newError(errlvl.WARN, symbol, errFetchQuote, err)
	}
	if e == nil {
		return nil, newError(errlvl.INFO, symbol, ErrNoData)
	}

	return e, nil
}

func companyName(e *finance.Equity) string {
	if e.LongName != "" {
		return e.LongName
	}
	return e.ShortName
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
