package scavenger

import (
	"github.com/samgozman/fin-scraper/scavenger/edgar"
	"github.com/samgozman/fin-scraper/scavenger/stocks"
)

// Scavenger is the struct that fetches some custom data from defined sources.
// The Scavenger will hold all available sources and will fetch the data from them.
//
// It shouldn't be used as journalist.Journalist to get news. The main purpose of this struct is to
// fetch market data and company filings that are not published as news feeds.
type Scavenger struct {
	Stocks  *stocks.Screener
	Filings *edgar.Client
}

// New creates a Scavenger with the Yahoo Finance screener and the SEC EDGAR client.
func New(filingsCfg edgar.Config) (*Scavenger, error) {
	filings, err := edgar.New(filingsCfg)
	if err != nil {
		return nil, err
	}

	return &Scavenger{
		Stocks:  stocks.NewScreener(),
		Filings: filings,
	}, nil
}
