package economist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samgozman/fin-scraper/utils"
)

const (
	DefaultBaseURL = "https://api.stlouisfed.org/fred"
	DefaultTimeout = 30 * time.Second

	// cursorParam is the query key the service expects the continuation token under.
	cursorParam = "next_cursor"
	// maxErrorBody limits how much of a failed response is kept in RequestError.Message.
	maxErrorBody = 2048
)

// Config holds the settings the Client is constructed with.
type Config struct {
	APIKey  string        // FRED API key, required by every endpoint
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // per request, defaults to DefaultTimeout
	Logger  *slog.Logger  // defaults to slog.Default()
}

// Client is the FRED (Federal Reserve Economic Data) API client.
// It issues exactly one request per call and never retries or loops over pages.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new Client. The timeout is fixed for the lifetime of the client.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// query holds the optional parameters of a single request. Zero values are not sent.
type query struct {
	seriesID   string
	start      time.Time
	end        time.Time
	releaseID  int
	cursor     Cursor
	limit      int
	searchText string
}

// values converts the query into URL parameters without the credentials.
func (q query) values() url.Values {
	v := url.Values{}
	if q.seriesID != "" {
		v.Set("series_id", q.seriesID)
	}
	if !q.start.IsZero() {
		v.Set("observation_start", utils.FormatDate(q.start))
	}
	if !q.end.IsZero() {
		v.Set("observation_end", utils.FormatDate(q.end))
	}
	if q.releaseID != 0 {
		v.Set("release_id", strconv.Itoa(q.releaseID))
	}
	if q.cursor != "" {
		v.Set(cursorParam, string(q.cursor))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.searchText != "" {
		v.Set("search_text", q.searchText)
	}
	return v
}

// get performs a GET request against the endpoint and returns the raw body of a 200 response.
func (c *Client) get(ctx context.Context, endpoint string, q query) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &AuthenticationError{Err: ErrMissingAPIKey}
	}

	params := q.values()
	c.logger.Debug("fred request", "endpoint", endpoint, "params", params.Encode())

	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &RequestError{Endpoint: endpoint, Message: err.Error(), Err: errors.Join(errCreateRequest, err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the full URL including the key, keep only the cause
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &RequestError{Endpoint: endpoint, Message: err.Error(), Err: err}
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("error closing fred response body", "error", err)
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    err.Error(),
			Err:        errors.Join(errReadBody, err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		reqErr := &RequestError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    vendorMessage(body),
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, &AuthenticationError{Err: reqErr}
		}
		return nil, reqErr
	}

	return body, nil
}

// decode unmarshals a successful body into v.
func decode(endpoint string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodingError{Endpoint: endpoint, Err: errors.Join(errUnmarshalPayload, err)}
	}
	return nil
}

// vendorMessage extracts error_message from a FRED error body, falling back to the body itself.
func vendorMessage(body []byte) string {
	var e struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.ErrorMessage != "" {
		return e.ErrorMessage
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}
