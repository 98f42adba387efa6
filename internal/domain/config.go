package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds the upstream locations the tool reads from. It is loaded
// from .eqdomains.yaml when present, with defaults for everything else.
type Config struct {
	// BaseURL is the raw-content root; files are fetched from
	// <BaseURL>/<ref>/<path>.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// RemoteURL is the git remote used to resolve refs to commit hashes.
	RemoteURL string `yaml:"remote_url" json:"remote_url"`

	// DefaultRef is the revision used when the caller does not name one.
	DefaultRef string `yaml:"default_ref" json:"default_ref"`

	// EnumsPath is the repo-relative path of the enum source file.
	EnumsPath string `yaml:"enums_path" json:"enums_path"`

	// DomainsPath is the repo-relative path of the domain list source file.
	DomainsPath string `yaml:"domains_path" json:"domains_path"`

	// TimeoutSeconds bounds each HTTP fetch. Zero means no limit.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// DefaultConfig returns the upstream Bitwarden server locations.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://github.com/bitwarden/server/raw",
		RemoteURL:      "https://github.com/bitwarden/server",
		DefaultRef:     "main",
		EnumsPath:      "src/Core/Enums/GlobalEquivalentDomainsType.cs",
		DomainsPath:    "src/Core/Utilities/StaticStore.cs",
		TimeoutSeconds: 30,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := validateHTTPURL("base_url", c.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("remote_url", c.RemoteURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.DefaultRef) == "" {
		return fmt.Errorf("default_ref must not be empty")
	}
	if strings.TrimSpace(c.EnumsPath) == "" {
		return fmt.Errorf("enums_path must not be empty")
	}
	if strings.TrimSpace(c.DomainsPath) == "" {
		return fmt.Errorf("domains_path must not be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns TimeoutSeconds as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %v", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", field, raw)
	}
	return nil
}
