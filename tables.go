package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/samgozman/fin-scraper/economist"
	"github.com/samgozman/fin-scraper/internal/tabular"
	"github.com/samgozman/fin-scraper/journalist"
	"github.com/samgozman/fin-scraper/scavenger/edgar"
	"github.com/samgozman/fin-scraper/scavenger/stocks"
	"github.com/samgozman/fin-scraper/utils"
	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

func seriesTable(obs *economist.SeriesObservations) *tabular.Table {
	return &tabular.Table{
		Title:   "FRED Series: " + obs.SeriesID,
		Headers: []string{"date", "value"},
		Rows: lo.Map(obs.Observations, func(o economist.Observation, _ int) []string {
			return []string{o.Date, o.Value}
		}),
	}
}

func releaseTable(releaseID int, pages []*economist.ReleasePage) *tabular.Table {
	t := &tabular.Table{
		Title:   fmt.Sprintf("FRED Release %d", releaseID),
		Headers: []string{"series_id", "title", "units", "frequency", "date", "value"},
	}
	for _, p := range pages {
		for _, s := range p.Series {
			for _, o := range s.Observations {
				t.Append(s.SeriesID, s.Title, s.Units, s.Frequency, o.Date, o.Value)
			}
		}
	}
	return t
}

func searchTable(text string, series []economist.SeriesInfo) *tabular.Table {
	return &tabular.Table{
		Title: "FRED Series Search: " + text,
		Headers: []string{
			"id", "title", "frequency", "units", "seasonal_adjustment",
			"observation_start", "observation_end", "popularity",
		},
		Rows: lo.Map(series, func(s economist.SeriesInfo, _ int) []string {
			return []string{
				s.ID, s.Title, s.Frequency, s.Units, s.SeasonalAdjustment,
				s.ObservationStart, s.ObservationEnd, strconv.Itoa(s.Popularity),
			}
		}),
	}
}

func knownSeriesTable() *tabular.Table {
	return &tabular.Table{
		Title:   "FRED Series Aliases",
		Headers: []string{"name", "series_id"},
		Rows: lo.Map(economist.KnownSeries(), func(a economist.SeriesAlias, _ int) []string {
			return []string{a.Name, a.Code}
		}),
	}
}

func quoteTable(q *stocks.Quote) *tabular.Table {
	return &tabular.Table{
		Title: "Real-time Quote: " + q.Symbol,
		Headers: []string{
			"symbol", "name", "price", "change", "change_percent", "open", "high", "low",
			"previous_close", "volume", "52w_low", "52w_high", "market_cap", "currency", "time",
		},
		Rows: [][]string{{
			q.Symbol, q.Name, q.Price.String(), q.Change.String(), q.ChangePercent.StringFixed(2),
			q.Open.String(), q.High.String(), q.Low.String(), q.PreviousClose.String(),
			strconv.Itoa(q.Volume), q.FiftyTwoWeekLow.String(), q.FiftyTwoWeekHigh.String(),
			strconv.FormatInt(q.MarketCap, 10), q.Currency, formatTimestamp(q.Time),
		}},
	}
}

func barsTable(title string, bars []stocks.Bar) *tabular.Table {
	return &tabular.Table{
		Title:   title,
		Headers: []string{"date", "open", "high", "low", "close", "adj_close", "volume"},
		Rows: lo.Map(bars, func(b stocks.Bar, _ int) []string {
			return []string{
				formatTimestamp(b.Time), price(b.Open), price(b.High), price(b.Low),
				price(b.Close), price(b.AdjClose), strconv.Itoa(b.Volume),
			}
		}),
	}
}

func valuationTable(v *stocks.Valuation) *tabular.Table {
	return &tabular.Table{
		Title: "Valuation Ratios: " + v.Symbol,
		Headers: []string{
			"symbol", "name", "trailing_pe", "forward_pe", "price_to_book", "book_value",
			"eps", "forward_eps", "dividend_yield", "market_cap",
		},
		Rows: [][]string{{
			v.Symbol, v.Name, v.TrailingPE.StringFixed(2), v.ForwardPE.StringFixed(2),
			v.PriceToBook.StringFixed(2), v.BookValue.String(), v.EPS.String(), v.ForwardEPS.String(),
			v.DividendYield.String(), strconv.FormatInt(v.MarketCap, 10),
		}},
	}
}

func newsTable(title string, news journalist.NewsList) *tabular.Table {
	return &tabular.Table{
		Title:   title,
		Headers: []string{"date", "title", "provider", "link", "suspicious"},
		Rows: lo.Map(news, func(n *journalist.News, _ int) []string {
			return []string{formatTimestamp(n.Date), n.Title, n.ProviderName, n.Link, strconv.FormatBool(n.IsSuspicious)}
		}),
	}
}

func filingsTable(symbol string, filings []edgar.Filing) *tabular.Table {
	return &tabular.Table{
		Title:   "SEC Filings: " + symbol,
		Headers: []string{"filed", "type", "title", "accession_number", "link"},
		Rows: lo.Map(filings, func(f edgar.Filing, _ int) []string {
			return []string{utils.FormatDate(f.Filed), f.Type, f.Title, f.AccessionNumber, f.Link}
		}),
	}
}

func price(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
