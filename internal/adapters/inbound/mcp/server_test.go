package mcp_test

import (
	"testing"

	mcpadapter "github.com/eqdomains/eqdomains/internal/adapters/inbound/mcp"
	"github.com/eqdomains/eqdomains/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEqdomainsMCPServer(t *testing.T) {
	s := mcpadapter.NewEqdomainsMCPServer(domain.DefaultConfig())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewEqdomainsMCPServer(domain.DefaultConfig())
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"eqdomains_preview",
		"eqdomains_resolve_ref",
		"eqdomains_verify",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
