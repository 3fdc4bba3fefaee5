package sheet

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned for structurally invalid requests - an
// empty range list, an empty intent list, or a write intent that does not
// carry exactly one payload kind. Never retried.
var ErrInvalidRequest = errors.New("invalid request")

// RequestError is a permanent backend rejection (bad request, auth
// failure, not found). Surfaced immediately, never retried.
type RequestError struct {
	StatusCode int
	Body       string
	err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api error %d (%v)", e.StatusCode, e.err)
}

func (e *RequestError) Unwrap() error {
	return e.err
}

// RateLimitError is returned when the backend rate limit (HTTP 429) is
// still in effect after the retry budget is exhausted.
type RateLimitError struct {
	Attempts int
	Last     error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d attempts (%v)", e.Attempts, e.Last)
}

func (e *RateLimitError) Unwrap() error {
	return e.Last
}

// UnavailableError is returned when the backend keeps failing with a
// server error (HTTP 500/503) after the retry budget is exhausted.
type UnavailableError struct {
	StatusCode int
	Attempts   int
	Last       error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("server error %d after %d attempts (%v)", e.StatusCode, e.Attempts, e.Last)
}

func (e *UnavailableError) Unwrap() error {
	return e.Last
}
