package checker

import (
	"context"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// pacer spaces requests to the same host. Checks already run one at a
// time; the pacer adds the configured delay between consecutive
// requests to one host to bound load on the sites under test.
type pacer struct {
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// newPacer creates a pacer with the given per-host delay. A delay of
// zero disables pacing.
func newPacer(delay time.Duration) *pacer {
	return &pacer{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// wait blocks until a request to the given URL's host may proceed.
func (p *pacer) wait(ctx context.Context, urlStr string) error {
	if p.delay <= 0 {
		return nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := parsedURL.Host
	limiter, ok := p.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(p.delay), 1)
		p.limiters[host] = limiter
	}

	return limiter.Wait(ctx)
}
