package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	HackerOne  HackerOne  `yaml:"hackerone"`
	Bugzilla   Bugzilla   `yaml:"bugzilla"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// HTTPClient holds tuning for the underlying resty clients.
type HTTPClient struct {
	Debug           bool            `yaml:"debug"`
	Timeout         Duration        `yaml:"timeout"`
	TLSClientConfig TLSClientConfig `yaml:"tls_client_config"`
	Proxy           Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// HackerOne holds settings for the HackerOne Hacker API session.
type HackerOne struct {
	Username  string   `yaml:"username"`
	BaseURL   string   `yaml:"base_url"`
	Version   string   `yaml:"version"`
	RetryTime Duration `yaml:"retry_time"`
	Cache     Cache    `yaml:"cache"`
}

// Cache controls the local report cache.
type Cache struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Bugzilla struct {
	URL string `yaml:"url"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML reads and decodes a YAML file into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig loads the configuration file at configPath, filling unset
// directives with defaults. A missing file is not an error: the tool must
// work without any configuration, so defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		applyDefaults(config)
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	applyDefaults(config)

	return config, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultHackerOneConfig()
	cfg.HackerOne.BaseURL = SetThen(cfg.HackerOne.BaseURL, defaults.BaseURL)
	cfg.HackerOne.Version = SetThen(cfg.HackerOne.Version, defaults.Version)
	cfg.HackerOne.RetryTime = SetThen(cfg.HackerOne.RetryTime, defaults.RetryTime)
	cfg.HackerOne.Cache.Path = SetThen(cfg.HackerOne.Cache.Path, defaults.Cache.Path)

	cfg.Bugzilla.URL = SetThen(cfg.Bugzilla.URL, DefaultBugzillaURL)
	cfg.HTTPClient.Timeout = SetThen(cfg.HTTPClient.Timeout, Duration(DefaultHTTPConfig().Timeout))
}
