package journalist

import (
	"crypto/md5"
	"encoding/hex"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"github.com/samgozman/fin-scraper/utils"
)

type News struct {
	ID           string    // ID is the md5 hash of link + date
	Title        string    // Title is the title of the news
	Description  string    // Description is the description of the news
	Link         string    // Link is the link to the news
	Date         time.Time // Date is the date of the news
	ProviderName string    // ProviderName is the name of the provider that fetched the news
	IsSuspicious bool      // IsSuspicious is true if the news contains one of the flagged keywords
}

// NewNews creates a News from raw feed fields: HTML is stripped and unicode escapes are decoded.
func NewNews(title, description, link, date, provider string) (*News, error) {
	dateTime, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	return newNewsAt(title, description, link, dateTime, provider), nil
}

func newNewsAt(title, description, link string, date time.Time, provider string) *News {
	date = date.UTC()
	hash := md5.Sum([]byte(link + date.String()))

	return &News{
		ID:           hex.EncodeToString(hash[:]),
		Title:        sanitize(title),
		Description:  sanitize(description),
		Link:         link,
		Date:         date,
		ProviderName: provider,
	}
}

var strictPolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	s = strictPolicy.Sanitize(utils.ReplaceUnicodeSymbols(s))
	return strings.TrimSpace(html.UnescapeString(s))
}

// contains reports whether the title or description contains any of the keywords, case-insensitive.
func (n *News) contains(keywords []string) bool {
	text := strings.ToLower(n.Title + " " + n.Description)
	for _, k := range keywords {
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

type NewsList []*News

// FilterByKeywords returns news that contain at least one of the keywords.
func (n NewsList) FilterByKeywords(keywords []string) NewsList {
	return lo.Filter(n, func(item *News, _ int) bool {
		return item.contains(keywords)
	})
}

// FlagByKeywords marks news containing any of the keywords as suspicious.
func (n NewsList) FlagByKeywords(keywords []string) {
	for _, item := range n {
		if item.contains(keywords) {
			item.IsSuspicious = true
		}
	}
}

// MapIDs removes news with duplicated IDs, the first occurrence is kept.
func (n NewsList) MapIDs() NewsList {
	return lo.UniqBy(n, func(item *News) string {
		return item.ID
	})
}

// SortByDate sorts the news from newest to oldest.
func (n NewsList) SortByDate() {
	sort.SliceStable(n, func(i, j int) bool {
		return n[i].Date.After(n[j].Date)
	})
}
