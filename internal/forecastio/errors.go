package forecastio

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrInvalidCoordinate = errors.New("latitude and longitude must be a (float) number")
	ErrTimeout           = errors.New("request timed out")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrTransport         = errors.New("request failed")
	ErrBadResponse       = errors.New("Bad response")
	ErrDecode            = errors.New("malformed JSON response")
	ErrNoDocument        = errors.New("no forecast fetched yet")
)

// HTTPError is returned when the forecast API answers with a status other
// than 200. It matches ErrBadResponse with errors.Is.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: status code %d", ErrBadResponse, e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return ErrBadResponse
}

// Recoverable reports whether a fetch failed in a way that leaves the client
// usable for an immediate retry: timeouts and redirect loops.
func Recoverable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrTooManyRedirects)
}

// classifyTransportError maps an error returned by http.Client.Do onto the
// package error classes.
func classifyTransportError(err error) error {
	if errors.Is(err, ErrTooManyRedirects) {
		return fmt.Errorf("%w: %v", ErrTooManyRedirects, err)
	}

	var timeoutErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &timeoutErr) && timeoutErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrTransport, err)
}
