package cms

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config configures the backend client.
type Config struct {
	// BaseURL is the backend origin, e.g. https://cms.example.com. The /api
	// prefix is added per endpoint.
	BaseURL string

	// Timeout bounds each request including reading the body.
	Timeout time.Duration

	// RateLimitRPS caps outbound requests per second; 0 disables the limiter.
	RateLimitRPS float64

	// RateLimitBurst is the token bucket capacity.
	RateLimitBurst int
}

// Validate checks the configuration before a client is built.
func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) url, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %v", c.RateLimitRPS)
	}
	return nil
}
