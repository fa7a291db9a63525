package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// defaultListLimit caps list_codes when no limit is given.
const defaultListLimit = 10

// ListCodesInput is the input schema for the list_codes tool.
type ListCodesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of codes to return (default 10)"`
}

// ListCodesOutput is the output schema for the list_codes tool.
type ListCodesOutput struct {
	Codes []CodeOutput `json:"codes"`
	Count int          `json:"count"`
}

// LatestCodeInput is the input schema for the latest_code tool.
type LatestCodeInput struct{}

// LatestCodeOutput is the output schema for the latest_code tool.
type LatestCodeOutput struct {
	Found bool        `json:"found"`
	Code  *CodeOutput `json:"code,omitempty"`
}

// CodeOutput represents a single detected code.
type CodeOutput struct {
	Code       string `json:"code"`
	Sender     string `json:"sender"`
	ReceivedAt string `json:"received_at"`
	Message    string `json:"message"`
}

func toCodeOutput(r *domain.OTPRecord) CodeOutput {
	return CodeOutput{
		Code:       r.Code,
		Sender:     r.Sender,
		ReceivedAt: r.Timestamp.UTC().Format(time.RFC3339),
		Message:    r.FullMessage,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_codes",
		Description: "List one-time passcodes found in recent messages, newest first",
	}, s.handleListCodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "latest_code",
		Description: "Return the most recently received one-time passcode",
	}, s.handleLatestCode)
}

// handleListCodes handles the list_codes tool invocation.
func (s *Server) handleListCodes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListCodesInput,
) (*mcp.CallToolResult, ListCodesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := s.ports.Scanner.Scan(ctx)
	if err != nil {
		return nil, ListCodesOutput{}, err
	}

	if len(records) > limit {
		records = records[:limit]
	}

	output := ListCodesOutput{
		Codes: make([]CodeOutput, len(records)),
		Count: len(records),
	}
	for i := range records {
		output.Codes[i] = toCodeOutput(&records[i])
	}

	return nil, output, nil
}

// handleLatestCode handles the latest_code tool invocation.
func (s *Server) handleLatestCode(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ LatestCodeInput,
) (*mcp.CallToolResult, LatestCodeOutput, error) {
	records, err := s.ports.Scanner.Scan(ctx)
	if err != nil {
		return nil, LatestCodeOutput{}, err
	}

	if len(records) == 0 {
		return nil, LatestCodeOutput{Found: false}, nil
	}

	latest := toCodeOutput(&records[0])
	return nil, LatestCodeOutput{Found: true, Code: &latest}, nil
}
