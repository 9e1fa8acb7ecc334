package checker

import (
	"context"
	"log/slog"
	"net/http"

	"sitecheck/internal/markup"
	"sitecheck/internal/parser"
)

// pageTask returns the task that validates one configured page.
func (c *Checker) pageTask(pageURL string) task {
	return func(ctx context.Context) {
		c.checkPage(ctx, pageURL)
	}
}

// checkPage fetches one page, times it, and on success runs the link,
// markup, and latency checks. A fetch failure records one issue and
// suppresses the other checks; the three success-path checks are
// independent of each other.
func (c *Checker) checkPage(ctx context.Context, pageURL string) {
	if err := c.pacer.wait(ctx, pageURL); err != nil {
		c.recordIssue("Page check aborted", "url", pageURL, "error", err)
		return
	}

	resp, err := c.client.Do(ctx, http.MethodGet, pageURL, true)
	if err != nil {
		c.recordIssue("Page fetch failed", "url", pageURL, "error", err)
		return
	}

	if !statusOK(resp.StatusCode, true) {
		c.recordIssue("Page returned bad status", "url", pageURL, "status", resp.StatusCode)
		return
	}

	slog.Info("Page fetched", "url", pageURL, "status", resp.StatusCode,
		"elapsed", resp.Elapsed, "ttfb", resp.TTFB)

	if c.cfg.CheckLinks {
		c.queueLinks(pageURL, resp.Body)
	}

	if c.cfg.CheckMarkup {
		for _, v := range markup.Validate(string(resp.Body)) {
			c.recordIssue("Markup violation", "url", pageURL, "line", v.Line, "message", v.Message)
		}
	}

	if c.cfg.MaxResponseTime > 0 && resp.Elapsed > c.cfg.MaxResponseTime {
		c.recordIssue("Page too slow", "url", pageURL,
			"elapsed", resp.Elapsed, "max", c.cfg.MaxResponseTime)
	}
}

// queueLinks extracts the page's outbound references, filters them,
// and prepends one link task per accepted reference. The front-push
// keeps every link of this page ahead of the next page task, and the
// tasks are pushed as one block so they run in extraction order.
func (c *Checker) queueLinks(pageURL string, body []byte) {
	extractor, err := parser.NewRefExtractor(pageURL)
	if err != nil {
		c.recordIssue("Link extraction failed", "url", pageURL, "error", err)
		return
	}

	refs, err := extractor.Extract(body)
	if err != nil {
		c.recordIssue("Link extraction failed", "url", pageURL, "error", err)
		return
	}

	filter := newLinkFilter(c.cfg, pageURL)

	var tasks []task
	for _, ref := range refs {
		if !filter.accept(ref) {
			slog.Debug("Link skipped", "page", pageURL, "link", ref)
			continue
		}
		tasks = append(tasks, c.linkTask(ref, false))
	}

	slog.Debug("Links queued", "page", pageURL, "count", len(tasks))
	c.queue.pushFront(tasks...)
}
