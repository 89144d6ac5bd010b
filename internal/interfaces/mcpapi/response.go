package mcpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

const (
	reasonInvalidInput               = "invalid_input"
	reasonMissingRequiredAlternative = "missing_required_alternative"
	reasonUpstreamUnavailable        = "upstream_unavailable"
	reasonMalformedResponse          = "malformed_response"
	reasonNotFound                   = "not_found"
	reasonTimeout                    = "timeout"
	reasonCancelled                  = "cancelled"
	reasonInternal                   = "internal"
)

type toolErrorEnvelope struct {
	Error toolErrorBody `json:"error"`
}

type toolErrorBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolJSON(payload any) (*mcp.CallToolResult, error) {
	raw, err := sonic.ConfigDefault.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return toolText(string(raw)), nil
}

func toolError(err error) *mcp.CallToolResult {
	if err == nil {
		err = errors.New("unknown error")
	}
	body := toolErrorEnvelope{Error: toolErrorBody{
		Reason:  errorReason(err),
		Message: err.Error(),
	}}

	text := err.Error()
	if raw, encodeErr := sonic.ConfigDefault.Marshal(body); encodeErr == nil {
		text = string(raw)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorReason maps an error chain to a stable machine-readable reason.
// Deadline and cancellation are checked first because the upstream client
// also marks them as unavailable.
func errorReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return reasonTimeout
	case errors.Is(err, context.Canceled):
		return reasonCancelled
	case errors.Is(err, usecase.ErrInvalidInput):
		return reasonInvalidInput
	case errors.Is(err, usecase.ErrMissingRequiredAlternative):
		return reasonMissingRequiredAlternative
	case errors.Is(err, usecase.ErrNotFound):
		return reasonNotFound
	case errors.Is(err, usecase.ErrMalformedResponse):
		return reasonMalformedResponse
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return reasonUpstreamUnavailable
	default:
		return reasonInternal
	}
}

func writeHTTPJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}
