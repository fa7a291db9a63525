package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid code URI", uri: "onetimepaste://codes/482913", expected: "482913"},
		{name: "invalid prefix", uri: "file://codes/482913", expected: ""},
		{name: "missing code", uri: "onetimepaste://codes/", expected: ""},
		{name: "nested path", uri: "onetimepaste://codes/482913/extra", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCode(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCodesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all codes as JSON", func(t *testing.T) {
		server := newTestServer(&mockScanner{records: sampleRecords()})

		req := makeReadResourceRequest("onetimepaste://codes")
		result, err := server.handleCodesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var codes []CodeOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &codes))
		require.Len(t, codes, 3)
		assert.Equal(t, []string{"482913", "5512", "771"}, []string{codes[0].Code, codes[1].Code, codes[2].Code})
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		server := newTestServer(&mockScanner{})

		req := makeReadResourceRequest("onetimepaste://codes")
		result, err := server.handleCodesResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		server := newTestServer(&mockScanner{err: errors.New("store locked")})

		req := makeReadResourceRequest("onetimepaste://codes")
		_, err := server.handleCodesResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scanning messages")
	})
}

func TestServer_handleCodeResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching code", func(t *testing.T) {
		server := newTestServer(&mockScanner{records: sampleRecords()})

		req := makeReadResourceRequest("onetimepaste://codes/5512")
		result, err := server.handleCodeResource(ctx, req)

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, "Your code: 5512")
	})

	t.Run("unknown code returns not found", func(t *testing.T) {
		server := newTestServer(&mockScanner{records: sampleRecords()})

		req := makeReadResourceRequest("onetimepaste://codes/0000")
		_, err := server.handleCodeResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("invalid URI does not scan", func(t *testing.T) {
		scanner := &mockScanner{records: sampleRecords()}
		server := newTestServer(scanner)

		req := makeReadResourceRequest("onetimepaste://invalid")
		_, err := server.handleCodeResource(ctx, req)

		require.Error(t, err)
		assert.Equal(t, 0, scanner.calls)
	})
}

func TestServer_handleStoreResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns path", func(t *testing.T) {
		server := newTestServer(&mockScanner{path: "/Users/test/Library/Messages/chat.db"})

		req := makeReadResourceRequest("onetimepaste://store")
		result, err := server.handleStoreResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "/Users/test/Library/Messages/chat.db", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("returns error when store missing", func(t *testing.T) {
		server := newTestServer(&mockScanner{pathErr: errors.New("not found")})

		req := makeReadResourceRequest("onetimepaste://store")
		_, err := server.handleStoreResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "locating store")
	})
}
