// Package config loads galscrape configuration from YAML files and
// environment variables. Precedence: environment variables (including
// values loaded from .env) > config file > defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/galscrape/galscrape"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the crawler.
type Config struct {
	Fetch     FetchConfig     `yaml:"fetch"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Crawl     CrawlConfig     `yaml:"crawl"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// FetchConfig holds HTTP client configuration.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// RateLimitConfig holds per-host rate limiting configuration. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CrawlConfig holds crawl fan-out configuration.
type CrawlConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 0,
			Burst:             1,
		},
		Crawl: CrawlConfig{
			Concurrency: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from all sources. An empty configPath means
// the standard locations are searched; a missing config file is not an
// error.
func Load(configPath string) (*Config, error) {
	// .env files are optional.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".galscrape.env"))

	cfg := Default()

	if err := cfg.loadFromFile(configPath); err != nil {
		return nil, err
	}
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	if path == "" {
		path = findConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return galscrape.Errorf(galscrape.EINVALID, "failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return galscrape.Errorf(galscrape.EINVALID, "failed to parse config file: %v", err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if timeout := os.Getenv("GALSCRAPE_FETCH_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			c.Fetch.Timeout = d
		}
	}
	if ua := os.Getenv("GALSCRAPE_USER_AGENT"); ua != "" {
		c.Fetch.UserAgent = ua
	}
	if rps := os.Getenv("GALSCRAPE_REQUESTS_PER_SECOND"); rps != "" {
		var val float64
		fmt.Sscanf(rps, "%f", &val)
		if val >= 0 {
			c.RateLimit.RequestsPerSecond = val
		}
	}
	if burst := os.Getenv("GALSCRAPE_BURST"); burst != "" {
		var val int
		fmt.Sscanf(burst, "%d", &val)
		if val > 0 {
			c.RateLimit.Burst = val
		}
	}
	if concurrency := os.Getenv("GALSCRAPE_CONCURRENCY"); concurrency != "" {
		var val int
		fmt.Sscanf(concurrency, "%d", &val)
		if val > 0 {
			c.Crawl.Concurrency = val
		}
	}
	if level := os.Getenv("GALSCRAPE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// findConfigFile searches the standard locations for a config file.
func findConfigFile() string {
	locations := []string{
		".galscrape.yaml",
		".galscrape.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "galscrape", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".galscrape.yaml"),
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return galscrape.Errorf(galscrape.EINVALID, "fetch timeout must be positive")
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return galscrape.Errorf(galscrape.EINVALID, "requests per second cannot be negative")
	}
	if c.RateLimit.Burst < 1 {
		return galscrape.Errorf(galscrape.EINVALID, "burst must be positive")
	}
	if c.Crawl.Concurrency <= 0 {
		return galscrape.Errorf(galscrape.EINVALID, "concurrency must be positive")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return galscrape.Errorf(galscrape.EINVALID, "invalid log level %q", c.Logging.Level)
	}
	return nil
}

// LogLevel maps the configured level name to a slog.Level. Validate
// guarantees the name is one slog understands.
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	_ = l.UnmarshalText([]byte(c.Logging.Level))
	return l
}
