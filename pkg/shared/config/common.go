package config

import (
	"crypto/tls"
	"fmt"
	"reflect"
	"time"
)

// DefaultBugzillaURL is the Bugzilla instance used when no URL is configured.
const DefaultBugzillaURL = "https://bugzilla-dev.allizom.org"

// Duration is a time.Duration that decodes YAML values like "5s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	Timeout         time.Duration
	TLSClientConfig *tls.Config
	Proxy           string
}

// RestyHTTPClientConfig holds additional configuration settings for the resty http client.
type RestyHTTPClientConfig struct {
	BaseHTTPConfig
	Debug bool
}

// DefaultHTTPConfig returns the base configuration applicable to all HTTP clients.
func DefaultHTTPConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		Timeout: 30 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12, // Enforce a minimum TLS version
		},
		Proxy: "",
	}
}

// DefaultRestyConfig returns a specific http config for resty.
func DefaultRestyConfig() RestyHTTPClientConfig {
	return RestyHTTPClientConfig{
		BaseHTTPConfig: DefaultHTTPConfig(),
		Debug:          false,
	}
}

// DefaultHackerOneConfig returns the HackerOne session settings used when the
// configuration file leaves them unset.
func DefaultHackerOneConfig() HackerOne {
	return HackerOne{
		BaseURL:   "https://api.hackerone.com",
		Version:   "v1",
		RetryTime: Duration(5 * time.Second),
		Cache: Cache{
			Enabled: false,
			Path:    "/tmp/h1_cache.json",
		},
	}
}

// SetThen provides a utility to select the first value if set, otherwise defaults.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}
