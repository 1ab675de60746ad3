// Package config loads the cmsdesk runtime configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file named by CMSDESK_CONFIG, and finally environment variables, which
// always win.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"cmsdesk/internal/common/pagination"
	envconfig "cmsdesk/pkg/config"
)

// DefaultBaseURL is the backend the console talks to when nothing else is configured.
const DefaultBaseURL = "https://extra-brooke-yeremiadio-46b2183e.koyeb.app"

// ConfigFileEnv names the environment variable pointing at the YAML overlay.
const ConfigFileEnv = "CMSDESK_CONFIG"

// Config is the complete runtime configuration.
type Config struct {
	CMS     CMSConfig     `yaml:"cms"`
	List    ListConfig    `yaml:"list"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CMSConfig configures the backend HTTP client.
type CMSConfig struct {
	// BaseURL of the backend, without the /api prefix.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds every outbound request.
	Timeout time.Duration `yaml:"timeout"`
	// RateLimitRPS caps outbound requests per second. Zero disables the limiter.
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
	// RateLimitBurst is the token bucket size when the limiter is enabled.
	RateLimitBurst int `yaml:"rate_limit_burst"`
	// SessionFile stores the bearer token between invocations.
	SessionFile string `yaml:"session_file"`
}

// ListConfig configures the article list controller.
type ListConfig struct {
	Debounce         time.Duration `yaml:"debounce"`
	PageSize         int           `yaml:"page_size"`
	OrderedResponses bool          `yaml:"ordered_responses"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the /metrics endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CMS: CMSConfig{
			BaseURL:        DefaultBaseURL,
			Timeout:        15 * time.Second,
			RateLimitRPS:   0,
			RateLimitBurst: 5,
		},
		List: ListConfig{
			Debounce: 500 * time.Millisecond,
			PageSize: pagination.DefaultConfig().PageSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves defaults, the optional YAML overlay and the environment,
// then validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := envconfig.GetEnvString(ConfigFileEnv, ""); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) overlayFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.CMS.BaseURL = envconfig.GetEnvString("CMS_BASE_URL", c.CMS.BaseURL)
	c.CMS.Timeout = envconfig.GetEnvDuration("CMS_TIMEOUT", c.CMS.Timeout)
	c.CMS.RateLimitRPS = envconfig.GetEnvFloat("CMS_RATE_LIMIT_RPS", c.CMS.RateLimitRPS)
	c.CMS.RateLimitBurst = envconfig.GetEnvInt("CMS_RATE_LIMIT_BURST", c.CMS.RateLimitBurst)
	c.CMS.SessionFile = envconfig.GetEnvString("CMS_SESSION_FILE", c.CMS.SessionFile)

	c.List.Debounce = envconfig.GetEnvDuration("LIST_DEBOUNCE", c.List.Debounce)
	c.List.PageSize = envconfig.GetEnvInt("LIST_PAGE_SIZE", c.List.PageSize)
	c.List.OrderedResponses = envconfig.GetEnvBool("LIST_ORDERED_RESPONSES", c.List.OrderedResponses)

	c.Log.Level = envconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envconfig.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.Metrics.Addr = envconfig.GetEnvString("METRICS_ADDR", c.Metrics.Addr)
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CMS.BaseURL) == "" {
		return fmt.Errorf("CMS_BASE_URL cannot be empty")
	}
	u, err := url.Parse(c.CMS.BaseURL)
	if err != nil {
		return fmt.Errorf("CMS_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CMS_BASE_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("CMS_BASE_URL must include a host")
	}

	if err := envconfig.ValidatePositiveDuration("CMS_TIMEOUT", c.CMS.Timeout); err != nil {
		return err
	}
	if err := envconfig.ValidateNonNegative("CMS_RATE_LIMIT_RPS", c.CMS.RateLimitRPS); err != nil {
		return err
	}
	if c.CMS.RateLimitRPS > 0 && c.CMS.RateLimitBurst < 1 {
		return fmt.Errorf("CMS_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if err := envconfig.ValidatePositiveDuration("LIST_DEBOUNCE", c.List.Debounce); err != nil {
		return err
	}
	if err := envconfig.ValidateIntRange("LIST_PAGE_SIZE", c.List.PageSize, 1, pagination.DefaultConfig().MaxPageSize); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}

	return nil
}
