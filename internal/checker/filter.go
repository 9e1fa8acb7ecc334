package checker

import (
	"net/url"

	"sitecheck/internal/config"
)

// linkFilter decides whether a discovered link should be queued for
// checking.
type linkFilter struct {
	sameDomainOnly bool
	pageHost       string
	ignore         map[string]struct{}
}

// newLinkFilter creates a filter for links discovered on the page with
// the given URL.
func newLinkFilter(cfg *config.RunConfig, pageURL string) *linkFilter {
	f := &linkFilter{
		sameDomainOnly: cfg.OnlySameDomain,
		ignore:         make(map[string]struct{}, len(cfg.IgnoreLinks)),
	}

	if parsed, err := url.Parse(pageURL); err == nil {
		f.pageHost = parsed.Hostname()
	}

	for _, ignored := range cfg.IgnoreLinks {
		f.ignore[ignored] = struct{}{}
	}

	return f
}

// accept reports whether the absolute link URL should be checked.
// A link is rejected when it sits on a different host while the
// same-domain restriction is on, or when it exactly matches an
// ignore-list entry. Ignore matching is plain string equality, no
// normalization.
func (f *linkFilter) accept(linkURL string) bool {
	if _, ignored := f.ignore[linkURL]; ignored {
		return false
	}

	if f.sameDomainOnly {
		parsed, err := url.Parse(linkURL)
		if err != nil {
			return false
		}
		if parsed.Hostname() != f.pageHost {
			return false
		}
	}

	return true
}
