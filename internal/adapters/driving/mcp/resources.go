package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for OneTimePaste resources.
	uriScheme = "onetimepaste://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the current code list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "codes",
		Name:        "codes",
		Description: "One-time passcodes found in recent messages, newest first",
		MIMEType:    "application/json",
	}, s.handleCodesResource)

	// Template for a single code.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "codes/{code}",
		Name:        "code",
		Description: "The message a specific code was found in",
		MIMEType:    "application/json",
	}, s.handleCodeResource)

	// Static resource for the store location.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "store",
		Name:        "store",
		Description: "Path of the Messages store being read",
		MIMEType:    "text/plain",
	}, s.handleStoreResource)
}

// handleCodesResource returns all detected codes.
func (s *Server) handleCodesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning messages: %w", err)
	}

	codes := make([]CodeOutput, len(records))
	for i := range records {
		codes[i] = toCodeOutput(&records[i])
	}

	return jsonResult(req.Params.URI, codes)
}

// handleCodeResource returns the record for one code.
func (s *Server) handleCodeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract code from URI: onetimepaste://codes/{code}
	code := extractCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning messages: %w", err)
	}

	for i := range records {
		if records[i].Code == code {
			return jsonResult(req.Params.URI, toCodeOutput(&records[i]))
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// handleStoreResource returns the store path.
func (s *Server) handleStoreResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path, err := s.ports.Scanner.StorePath()
	if err != nil {
		return nil, fmt.Errorf("locating store: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     path,
		}},
	}, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCode extracts the code from a URI like onetimepaste://codes/{code}.
func extractCode(uri string) string {
	const prefix = uriScheme + "codes/"

	code, ok := strings.CutPrefix(uri, prefix)
	if !ok || code == "" || strings.Contains(code, "/") {
		return ""
	}
	return code
}
