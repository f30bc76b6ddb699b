package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, the two upstream lookups, and the optional
// metrics listener.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Whois contains WHOIS transport related configurations
	Whois struct {
		// Server optionally pins a specific WHOIS server instead of
		// automatic registry selection
		Server string `env:"WHOIS_SERVER" env-default:"" yaml:"server"`
		// Timeout bounds a single WHOIS exchange
		Timeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"whois"`

	// Wayback contains archive.org availability API related configurations
	Wayback struct {
		// BaseURL is the archive.org API root; overridable for mirrors and tests
		BaseURL string `env:"WAYBACK_BASE_URL" env-default:"https://archive.org" yaml:"baseUrl"`
		// UserAgent identifies the tool to archive.org
		UserAgent string `env:"WAYBACK_USER_AGENT" env-default:"domainage/1.0" yaml:"userAgent"`
		// Timeout bounds a single availability API request
		Timeout time.Duration `env:"WAYBACK_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"wayback"`

	// Resolver contains settings for the age resolution itself
	Resolver struct {
		// LookupTimeout is the per-lookup deadline; each upstream gets its own
		LookupTimeout time.Duration `env:"RESOLVER_LOOKUP_TIMEOUT" env-default:"20s" yaml:"lookupTimeout"`
	} `yaml:"resolver"`

	// Metrics contains the optional Prometheus listener configuration
	Metrics struct {
		// Addr enables the /metrics listener when non-empty, e.g. ":9090".
		// Off by default: one-shot invocations have nothing to scrape.
		Addr string `env:"METRICS_ADDR" env-default:"" yaml:"addr"`
		// Path is the HTTP path metrics are served on
		Path string `env:"METRICS_PATH" env-default:"/metrics" yaml:"path"`
	} `yaml:"metrics"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error: the tool must run with zero setup,
// so environment variables and defaults apply on their own in that case.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
