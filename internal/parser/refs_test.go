package parser

import (
	"reflect"
	"testing"
)

func TestRefExtractor(t *testing.T) {
	htmlContent := `
<!DOCTYPE html>
<html>
<head>
	<link href="/styles/site.css">
	<script src="app.js"></script>
</head>
<body>
	<a href="/relative-link">Relative Link</a>
	<a href="https://example.com/absolute-link">Absolute Link</a>
	<a href="//cdn.example.com/protocol-relative">Protocol Relative</a>
	<a href="#section">Fragment</a>
	<a href="">Empty</a>
	<img src="images/logo.png">
	<iframe src="https://other.example.com/frame"></iframe>
</body>
</html>
`

	extractor, err := NewRefExtractor("https://example.com/test-page")
	if err != nil {
		t.Fatalf("Failed to create extractor: %v", err)
	}

	refs, err := extractor.Extract([]byte(htmlContent))
	if err != nil {
		t.Fatalf("Failed to extract references: %v", err)
	}

	// Anchors first (document order), then iframe, img, link, script,
	// following the fixed tag order.
	expected := []string{
		"https://example.com/relative-link",
		"https://example.com/absolute-link",
		"https://cdn.example.com/protocol-relative",
		"https://example.com/test-page#section",
		"https://other.example.com/frame",
		"https://example.com/images/logo.png",
		"https://example.com/styles/site.css",
		"https://example.com/app.js",
	}

	if !reflect.DeepEqual(refs, expected) {
		t.Errorf("Extract() = %v, want %v", refs, expected)
	}
}

func TestRefExtractorMediaTags(t *testing.T) {
	htmlContent := `
<html><body>
	<audio src="/audio.ogg"></audio>
	<video src="/video.mp4">
		<source src="/video.webm">
		<track src="/captions.vtt">
	</video>
	<embed src="/widget.swf">
	<object data="/document.pdf"></object>
	<input type="image" src="/button.png">
	<map><area href="/region"></map>
</body></html>
`

	extractor, err := NewRefExtractor("http://media.example.com/")
	if err != nil {
		t.Fatalf("Failed to create extractor: %v", err)
	}

	refs, err := extractor.Extract([]byte(htmlContent))
	if err != nil {
		t.Fatalf("Failed to extract references: %v", err)
	}

	expected := []string{
		"http://media.example.com/region",
		"http://media.example.com/audio.ogg",
		"http://media.example.com/widget.swf",
		"http://media.example.com/button.png",
		"http://media.example.com/document.pdf",
		"http://media.example.com/video.webm",
		"http://media.example.com/captions.vtt",
		"http://media.example.com/video.mp4",
	}

	if !reflect.DeepEqual(refs, expected) {
		t.Errorf("Extract() = %v, want %v", refs, expected)
	}
}

func TestRefExtractorNoReferences(t *testing.T) {
	extractor, err := NewRefExtractor("https://example.com/")
	if err != nil {
		t.Fatalf("Failed to create extractor: %v", err)
	}

	refs, err := extractor.Extract([]byte("<html><body><p>No links here</p></body></html>"))
	if err != nil {
		t.Fatalf("Failed to extract references: %v", err)
	}

	if len(refs) != 0 {
		t.Errorf("Expected no references, got %v", refs)
	}
}

func TestNewRefExtractorInvalidBase(t *testing.T) {
	if _, err := NewRefExtractor("http://exa mple.com/%"); err == nil {
		t.Error("Expected error for invalid base URL, got nil")
	}
}
