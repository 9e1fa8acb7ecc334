package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"
)

// HTTPClient performs the GET/HEAD requests for page and link checks.
// Every request carries the tool's User-Agent and cache-busting
// headers so intermediaries answer with live responses.
type HTTPClient struct {
	client     *http.Client // follows redirects
	noRedirect *http.Client // returns the redirect answer itself
	userAgent  string
}

// HTTPResponse contains the response and timing of one request.
type HTTPResponse struct {
	StatusCode int
	Body       []byte        // nil for HEAD requests
	FinalURL   string        // After following redirects
	Elapsed    time.Duration // Total request time including body read
	TTFB       time.Duration // Time to first byte
}

// NewHTTPClient creates a new HTTP client.
func NewHTTPClient(userAgent string, timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		noRedirect: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: userAgent,
	}
}

// Do performs a GET or HEAD request and measures its timing. When
// followRedirects is false the response describes the redirect answer
// itself rather than its target.
func (h *HTTPClient) Do(ctx context.Context, method, url string, followRedirects bool) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	var firstByteTime time.Time
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			firstByteTime = time.Now()
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	client := h.client
	if !followRedirects {
		client = h.noRedirect
	}

	startTime := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var body []byte
	if method == http.MethodGet {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	}

	result := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		FinalURL:   resp.Request.URL.String(),
		Elapsed:    time.Since(startTime),
	}
	if !firstByteTime.IsZero() {
		result.TTFB = firstByteTime.Sub(startTime)
	}

	return result, nil
}

// Close closes idle connections held by the client.
func (h *HTTPClient) Close() {
	h.client.CloseIdleConnections()
}
