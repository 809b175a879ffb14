package economist

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

var (
	// ErrMissingAPIKey is returned (wrapped in AuthenticationError) when the client has no key configured.
	ErrMissingAPIKey = errors.New("fred api key is not configured")

	errCreateRequest    = errors.New("failed to create request")
	errReadBody         = errors.New("failed to read response body")
	errUnmarshalPayload = errors.New("failed to unmarshal response payload")
	errCursorType       = errors.New("next_cursor is not a string")
)

// AuthenticationError is returned when the API key is missing or rejected by the service.
// For a rejected key Err holds the *RequestError with the vendor status and message.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s fred authentication failed: %s", errlvl.ErrError, e.Err)
}

func (e *AuthenticationError) Level() errlvl.Lvl {
	return errlvl.ERROR
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// RequestError is returned when the network call fails or the service answers with a non-200 status.
type RequestError struct {
	StatusCode int    // HTTP status, 0 if no response was received
	Message    string // vendor error_message, response body or transport error text
	Endpoint   string // endpoint path, never contains the api key
	Err        error
}

func (e *RequestError) Error() string {
	prefix := "[" + e.Level().String() + "]"
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s fred request %s failed: %s", prefix, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("%s fred request %s failed with status %d: %s", prefix, e.Endpoint, e.StatusCode, e.Message)
}

// Level is WARN for transient failures and ERROR otherwise.
func (e *RequestError) Level() errlvl.Lvl {
	if e.Transient() {
		return errlvl.WARN
	}
	return errlvl.ERROR
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Transient reports whether repeating the same request may succeed:
// transport failures, throttling and server-side errors.
func (e *RequestError) Transient() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// DecodingError is returned when the response body does not have the expected structure.
type DecodingError struct {
	Endpoint string
	Err      error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s fred response %s: %s", errlvl.ErrError, e.Endpoint, e.Err)
}

func (e *DecodingError) Level() errlvl.Lvl {
	return errlvl.ERROR
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
