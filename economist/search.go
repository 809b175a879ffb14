package economist

import "context"

const seriesSearchEndpoint = "/series/search"

// SeriesInfo is the metadata of a series returned by SearchSeries.
type SeriesInfo struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	ObservationStart   string `json:"observation_start"`
	ObservationEnd     string `json:"observation_end"`
	Frequency          string `json:"frequency"`
	Units              string `json:"units"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Popularity         int    `json:"popularity"`
	Notes              string `json:"notes"`
}

// SearchSeries finds series matching a free-text query. Only the first page of results is returned.
func (c *Client) SearchSeries(ctx context.Context, text string) ([]SeriesInfo, error) {
	body, err := c.get(ctx, seriesSearchEndpoint, query{searchText: text})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Count  int          `json:"count"`
		Series []SeriesInfo `json:"seriess"` // sic, the service pluralizes "series" this way
	}
	if err := decode(seriesSearchEndpoint, body, &resp); err != nil {
		return nil, err
	}

	return resp.Series, nil
}
