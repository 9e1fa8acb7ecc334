// Package config provides configuration management for the page checker.
// It defines the run configuration structure, default values, and validation.
package config

import (
	"net/url"
	"time"
)

// RunConfig holds the configuration for one validation run.
// It is immutable once the run starts.
type RunConfig struct {
	// Pages and per-page checks
	PageURLs        []string      `mapstructure:"page_urls" yaml:"page_urls"`                 // Pages to validate
	CheckLinks      bool          `mapstructure:"check_links" yaml:"check_links"`             // Check every outbound reference
	OnlySameDomain  bool          `mapstructure:"only_same_domain" yaml:"only_same_domain"`   // Skip links on other hosts
	NoRedirects     bool          `mapstructure:"no_redirects" yaml:"no_redirects"`           // Treat redirect answers as failures for links
	IgnoreLinks     []string      `mapstructure:"ignore_links" yaml:"ignore_links"`           // Exact link URLs to skip
	CheckMarkup     bool          `mapstructure:"check_markup" yaml:"check_markup"`           // Validate markup well-formedness
	MaxResponseTime time.Duration `mapstructure:"max_response_time" yaml:"max_response_time"` // Page latency budget (0=disabled)

	// HTTP behaviour
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`           // HTTP User-Agent header
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"` // Per-request timeout
	RequestDelay   time.Duration `mapstructure:"request_delay" yaml:"request_delay"`     // Per-host delay between requests (0=none)

	// Logging
	LogLevel string `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn, error
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`   // Optional log file path
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *RunConfig {
	return &RunConfig{
		RequestTimeout: 30 * time.Second,
		UserAgent:      "sitecheck/1.0",
		LogLevel:       "info",
	}
}

// Validate checks if the configuration is valid. Validation happens
// before any network activity; a failure here aborts the run.
func (c *RunConfig) Validate() error {
	if len(c.PageURLs) == 0 {
		return ErrNoPageURLs
	}

	for _, pageURL := range c.PageURLs {
		parsed, err := url.Parse(pageURL)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return &InvalidPageURLError{URL: pageURL}
		}
	}

	if c.MaxResponseTime < 0 {
		return ErrInvalidMaxResponseTime
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.RequestDelay < 0 {
		return ErrInvalidDelay
	}

	return nil
}
