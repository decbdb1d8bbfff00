package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"no path", errors.New("version mismatch"), "version mismatch"},
		{
			"tmp path stripped",
			errors.New("parser: failed to read /tmp/secret/spec.yaml: no such file"),
			"parser: failed to read <path>: no such file",
		},
		{
			"home path stripped",
			errors.New("open /home/alice/.config/spec.yaml: permission denied"),
			"open <path>: permission denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "boom", result.Content[0].(*mcp.TextContent).Text)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 path", formatCount(1, "path"))
	assert.Equal(t, "0 paths", formatCount(0, "path"))
	assert.Equal(t, "3 definitions", formatCount(3, "definition"))
}
