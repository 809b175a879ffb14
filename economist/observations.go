package economist

import (
	"context"
	"time"

	"github.com/samgozman/fin-scraper/utils"
	"github.com/shopspring/decimal"
)

const seriesObservationsEndpoint = "/series/observations"

// missingValue is how FRED marks an observation without data.
const missingValue = "."

// Observation is a single dated value of a series.
type Observation struct {
	RealtimeStart string `json:"realtime_start,omitempty"`
	RealtimeEnd   string `json:"realtime_end,omitempty"`
	Date          string `json:"date"`
	Value         string `json:"value"` // raw vendor value, "." when missing
}

// Decimal returns the observation value. ok is false for missing or non-numeric values.
func (o Observation) Decimal() (d decimal.Decimal, ok bool) {
	if o.Value == "" || o.Value == missingValue {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(o.Value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Time returns the observation date in UTC.
func (o Observation) Time() (time.Time, error) {
	return utils.ParseDate(o.Date)
}

// SeriesObservations is the decoded response of the series observations endpoint.
type SeriesObservations struct {
	SeriesID         string        `json:"-"` // vendor code that was requested
	ObservationStart string        `json:"observation_start"`
	ObservationEnd   string        `json:"observation_end"`
	Units            string        `json:"units"`
	OrderBy          string        `json:"order_by"`
	SortOrder        string        `json:"sort_order"`
	Count            int           `json:"count"`
	Offset           int           `json:"offset"`
	Limit            int           `json:"limit"`
	Observations     []Observation `json:"observations"`
}

// FetchSeriesObservations fetches observations of a series.
// The series may be a symbolic name from KnownSeries or a FRED code, unknown names are sent verbatim.
// Zero start or end dates are omitted so the service default range applies.
func (c *Client) FetchSeriesObservations(ctx context.Context, series string, start, end time.Time) (*SeriesObservations, error) {
	seriesID := ResolveSeries(series)

	body, err := c.get(ctx, seriesObservationsEndpoint, query{
		seriesID: seriesID,
		start:    start,
		end:      end,
	})
	if err != nil {
		return nil, err
	}

	var obs SeriesObservations
	if err := decode(seriesObservationsEndpoint, body, &obs); err != nil {
		return nil, err
	}
	obs.SeriesID = seriesID

	return &obs, nil
}
