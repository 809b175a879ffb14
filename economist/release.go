package economist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const releaseObservationsEndpoint = "/v2/release/observations"

// Cursor is the continuation token of a paginated release query.
// It is produced by the service and must be sent back exactly as received:
// the client never inspects, splits or rebuilds it.
type Cursor string

// ReleaseQuery holds the parameters of a release observations request.
type ReleaseQuery struct {
	ReleaseID int    // release identifier, validated by the service
	Cursor    Cursor // continuation token from the previous page, empty for the first page
	Limit     int    // optional page size, 0 keeps the service default
}

// Release describes the release a page belongs to.
type Release struct {
	ID   int    `json:"release_id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ReleaseSeries is one series of a release page with its observations.
type ReleaseSeries struct {
	SeriesID           string        `json:"series_id"`
	Title              string        `json:"title"`
	Frequency          string        `json:"frequency"`
	Units              string        `json:"units"`
	SeasonalAdjustment string        `json:"seasonal_adjustment"`
	LastUpdated        string        `json:"last_updated"`
	Observations       []Observation `json:"observations"`
}

// ReleasePage is one page of release observations.
type ReleasePage struct {
	// Payload is the decoded response object as sent by the service, numbers kept as json.Number.
	Payload    map[string]any
	Release    Release
	Series     []ReleaseSeries
	HasMore    bool
	NextCursor Cursor // empty when the response carried no cursor
}

// Continuation returns the cursor for the next page. ok is false on the last page.
func (p *ReleasePage) Continuation() (cursor Cursor, ok bool) {
	if p == nil || p.NextCursor == "" {
		return "", false
	}
	return p.NextCursor, true
}

// FetchReleaseObservations fetches a single page of observations of all series in a release.
// Callers continue with the cursor from ReleasePage.Continuation until it reports no more pages.
func (c *Client) FetchReleaseObservations(ctx context.Context, q ReleaseQuery) (*ReleasePage, error) {
	body, err := c.get(ctx, releaseObservationsEndpoint, query{
		releaseID: q.ReleaseID,
		cursor:    q.Cursor,
		limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}

	return decodeReleasePage(body)
}

func decodeReleasePage(body []byte) (*ReleasePage, error) {
	payload := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, &DecodingError{Endpoint: releaseObservationsEndpoint, Err: errors.Join(errUnmarshalPayload, err)}
	}

	var typed struct {
		Release Release         `json:"release"`
		Series  []ReleaseSeries `json:"series"`
		HasMore bool            `json:"has_more"`
	}
	if err := decode(releaseObservationsEndpoint, body, &typed); err != nil {
		return nil, err
	}

	page := &ReleasePage{
		Payload: payload,
		Release: typed.Release,
		Series:  typed.Series,
		HasMore: typed.HasMore,
	}

	switch cursor := payload[cursorParam].(type) {
	case nil:
		// key is absent or null: last page
	case string:
		page.NextCursor = Cursor(cursor)
	default:
		return nil, &DecodingError{
			Endpoint: releaseObservationsEndpoint,
			Err:      fmt.Errorf("%w: got %T", errCursorType, cursor),
		}
	}

	return page, nil
}
