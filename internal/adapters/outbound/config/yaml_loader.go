// Package config loads tool configuration from .eqdomains.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eqdomains/eqdomains/internal/domain"
)

const fileName = ".eqdomains.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .eqdomains.yaml
// from a directory.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads .eqdomains.yaml from dir. A missing file yields the defaults;
// otherwise explicit values overlay the defaults and the result is
// validated.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("reading %s: %w", fileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
