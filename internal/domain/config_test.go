package domain_test

import (
	"testing"
	"time"

	"github.com/eqdomains/eqdomains/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_PointsAtUpstream(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "https://github.com/bitwarden/server/raw", cfg.BaseURL)
	assert.Equal(t, "main", cfg.DefaultRef)
	assert.Equal(t, "src/Core/Enums/GlobalEquivalentDomainsType.cs", cfg.EnumsPath)
	assert.Equal(t, "src/Core/Utilities/StaticStore.cs", cfg.DomainsPath)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, domain.DefaultConfig().Validate())
}

func TestConfig_ValidateRejectsBadScheme(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.BaseURL = "ftp://example.com/raw"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestConfig_ValidateRejectsMissingHost(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.RemoteURL = "https://"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote_url")
}

func TestConfig_ValidateRejectsEmptyRef(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.DefaultRef = "  "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_ref")
}

func TestConfig_ValidateRejectsEmptyPaths(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.EnumsPath = ""
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.DomainsPath = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.TimeoutSeconds = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestConfig_Timeout(t *testing.T) {
	cfg := domain.Config{TimeoutSeconds: 15}
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}
