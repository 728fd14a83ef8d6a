package config

import (
	"fmt"
	"net/url"
)

// ValidateConfig checks if the global configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateHackerOneConfig(&cfg.HackerOne); err != nil {
		return fmt.Errorf("YAML global config: hackerone directive is invalid: %w", err)
	}
	if err := ValidateBugzillaConfig(&cfg.Bugzilla); err != nil {
		return fmt.Errorf("YAML global config: bugzilla directive is invalid: %w", err)
	}
	return nil
}

// ValidateHackerOneConfig checks if the HackerOne session configuration has valid values.
func ValidateHackerOneConfig(cfg *HackerOne) error {
	if cfg == nil {
		return fmt.Errorf("hackerone configuration is nil")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if cfg.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if cfg.RetryTime < 0 {
		return fmt.Errorf("retry_time must not be negative: %s", cfg.RetryTime)
	}
	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		return fmt.Errorf("cache.path must be set when cache is enabled")
	}
	return nil
}

// ValidateBugzillaConfig checks if the Bugzilla configuration has valid values.
func ValidateBugzillaConfig(cfg *Bugzilla) error {
	if cfg == nil {
		return fmt.Errorf("bugzilla configuration is nil")
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return fmt.Errorf("url is not a valid URL: %w", err)
	}
	return nil
}
