package checker

import (
	"context"
	"log/slog"
	"net/http"
)

// linkTask returns the task that checks one discovered link. The
// retried flag marks the GET fallback attempt.
func (c *Checker) linkTask(linkURL string, retried bool) task {
	return func(ctx context.Context) {
		c.checkLink(ctx, linkURL, retried)
	}
}

// checkLink issues a lightweight existence check for one link: HEAD
// first, and on a bad answer one GET retry replacing the HEAD result.
// Some servers reject HEAD but serve GET correctly; the retry avoids
// reporting those as broken. A link is reported as failed at most
// once, and the page latency budget never applies here.
func (c *Checker) checkLink(ctx context.Context, linkURL string, retried bool) {
	if err := c.pacer.wait(ctx, linkURL); err != nil {
		c.recordIssue("Link check aborted", "url", linkURL, "error", err)
		return
	}

	method := http.MethodHead
	if retried {
		method = http.MethodGet
	}
	followRedirects := !c.cfg.NoRedirects

	resp, err := c.client.Do(ctx, method, linkURL, followRedirects)
	if err != nil {
		c.recordIssue("Link fetch failed", "url", linkURL, "method", method, "error", err)
		return
	}

	if !statusOK(resp.StatusCode, followRedirects) {
		if !retried {
			c.checkLink(ctx, linkURL, true)
			return
		}
		c.recordIssue("Link returned bad status", "url", linkURL, "status", resp.StatusCode)
		return
	}

	slog.Info("Link ok", "url", linkURL, "method", method,
		"status", resp.StatusCode, "elapsed", resp.Elapsed)
}
