package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPageURLs is returned when no page URLs are provided
	ErrNoPageURLs = errors.New("no page URLs provided")
	// ErrInvalidMaxResponseTime is returned when the latency budget is negative
	ErrInvalidMaxResponseTime = errors.New("max_response_time must be a positive duration")
	// ErrInvalidTimeout is returned when request timeout is not greater than 0
	ErrInvalidTimeout = errors.New("request_timeout must be greater than 0")
	// ErrInvalidDelay is returned when request delay is negative
	ErrInvalidDelay = errors.New("request_delay must not be negative")
)

// InvalidPageURLError is returned when a configured page URL is not an
// absolute URL.
type InvalidPageURLError struct {
	URL string
}

func (e *InvalidPageURLError) Error() string {
	return fmt.Sprintf("invalid page URL %q: not an absolute URL", e.URL)
}
