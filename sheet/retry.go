package sheet

import (
	"errors"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	// DefaultMaxAttempts is the total number of tries (first attempt
	// included) for a backend call that keeps failing transiently.
	DefaultMaxAttempts = 3

	// DefaultBackoffUnit is the base delay for exponential backoff.
	DefaultBackoffUnit = time.Second
)

// retrier reissues a backend call on transient failures (HTTP 429, 500 and
// 503), sleeping unit<<attempt between tries (1, 2, 4, ... units, no
// jitter). Permanent API failures are wrapped in *RequestError and returned
// immediately; transport errors that never reached the API propagate
// untouched.
type retrier struct {
	maxAttempts int
	unit        time.Duration
	sleep       func(time.Duration)
}

func newRetrier(maxAttempts int, unit time.Duration) retrier {
	return retrier{
		maxAttempts: maxAttempts,
		unit:        unit,
		sleep:       time.Sleep,
	}
}

func (r retrier) do(call func() error) error {
	for attempt := 0; ; attempt++ {
		err := call()
		if err == nil {
			return nil
		}

		var apierr *googleapi.Error
		if !errors.As(err, &apierr) {
			return err
		}

		switch apierr.Code {
		case 429:
			if attempt+1 >= r.maxAttempts {
				return &RateLimitError{Attempts: r.maxAttempts, Last: err}
			}

		case 500, 503:
			if attempt+1 >= r.maxAttempts {
				return &UnavailableError{StatusCode: apierr.Code, Attempts: r.maxAttempts, Last: err}
			}

		default:
			return &RequestError{StatusCode: apierr.Code, Body: apierr.Body, err: err}
		}

		r.sleep(r.unit << attempt)
	}
}
