// Package parser provides HTML parsing and reference extraction.
// It collects every outbound URL a page references through a fixed set
// of tag/attribute pairs (links, images, scripts, embedded media).
package parser

import (
	"bytes"
	"fmt"
	"net/url"

	"golang.org/x/net/html"
)

// refAttr names the attribute carrying the reference for one tag.
type refAttr struct {
	Tag  string
	Attr string
}

// refTable lists every tag/attribute pair that contributes references.
// Extraction output follows table order, then document order per tag.
var refTable = []refAttr{
	{"a", "href"},
	{"area", "href"},
	{"audio", "src"},
	{"embed", "src"},
	{"iframe", "src"},
	{"img", "src"},
	{"input", "src"},
	{"link", "href"},
	{"object", "data"},
	{"script", "src"},
	{"source", "src"},
	{"track", "src"},
	{"video", "src"},
}

// RefExtractor extracts referenced URLs from an HTML document.
type RefExtractor struct {
	baseURL *url.URL
}

// NewRefExtractor creates an extractor that resolves references
// against the given base URL.
func NewRefExtractor(baseURL string) (*RefExtractor, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &RefExtractor{baseURL: parsedURL}, nil
}

// Extract parses the document and returns every referenced URL as an
// absolute URL. Relative paths, protocol-relative URLs, and fragments
// are resolved against the base URL. Empty attribute values are
// skipped; unparseable values are dropped.
func (e *RefExtractor) Extract(htmlContent []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var refs []string
	for _, pair := range refTable {
		e.collect(doc, pair, &refs)
	}

	return refs, nil
}

// collect walks the tree in document order and appends every resolved
// reference for one tag/attribute pair.
func (e *RefExtractor) collect(n *html.Node, pair refAttr, refs *[]string) {
	if n.Type == html.ElementNode && n.Data == pair.Tag {
		if value, ok := attrValue(n, pair.Attr); ok && value != "" {
			if absURL, err := e.resolveURL(value); err == nil {
				*refs = append(*refs, absURL)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.collect(c, pair, refs)
	}
}

// resolveURL converts a reference to an absolute URL.
func (e *RefExtractor) resolveURL(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}

	return e.baseURL.ResolveReference(u).String(), nil
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}
