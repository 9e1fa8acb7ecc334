// Package checker implements the validation pipeline.
// It drives a sequential queue of page and link checks: each page is
// fetched and timed, its outbound references are discovered, filtered,
// and checked for reachability, and its markup is optionally validated
// for well-formedness. Failures are counted and the run fails when any
// check failed.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"sitecheck/internal/config"
)

// Checker owns the state of one validation run: the work queue, the
// shared HTTP client, the per-host pacer, and the issue counter. All
// state is run-scoped; a fresh Checker is safe to create per run.
type Checker struct {
	cfg    *config.RunConfig
	client *HTTPClient
	pacer  *pacer
	queue  taskQueue
	issues int
}

// New creates a checker for the given configuration. The configuration
// is validated before any network activity.
func New(cfg *config.RunConfig) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Checker{
		cfg:    cfg,
		client: NewHTTPClient(cfg.UserAgent, cfg.RequestTimeout),
		pacer:  newPacer(cfg.RequestDelay),
	}, nil
}

// Run drives the whole pipeline to completion: one task per configured
// page, each page prepending the link checks it discovers. It returns
// an error when any check recorded an issue.
func (c *Checker) Run(ctx context.Context) error {
	defer c.client.Close()

	for _, pageURL := range c.cfg.PageURLs {
		c.queue.pushBack(c.pageTask(pageURL))
	}
	c.queue.pushBack(c.summaryTask())

	c.queue.run(ctx)

	if c.issues > 0 {
		return fmt.Errorf("%d issue%s found (see the log above for details)",
			c.issues, plural(c.issues))
	}
	return nil
}

// Issues returns the number of failed checks recorded so far.
func (c *Checker) Issues() int {
	return c.issues
}

// recordIssue counts one failed check and logs it.
func (c *Checker) recordIssue(msg string, args ...any) {
	c.issues++
	slog.Error(msg, args...)
}

// summaryTask runs after every page task and everything those pages
// discovered.
func (c *Checker) summaryTask() task {
	return func(ctx context.Context) {
		if c.issues > 0 {
			slog.Error("Run finished with issues", "issues", c.issues)
		} else {
			slog.Info("Run finished", "issues", 0)
		}
	}
}

// statusOK reports whether a response status counts as reachable.
// 2xx always passes. A redirect answer passes only while redirect
// following is on; with following off a served redirect is a failure.
func statusOK(statusCode int, followRedirects bool) bool {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return true
	}
	if followRedirects &&
		statusCode >= http.StatusMultipleChoices && statusCode < http.StatusBadRequest {
		return true
	}
	return false
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
