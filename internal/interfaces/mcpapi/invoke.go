package mcpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var toolTracer = otel.Tracer("matchday-mcp/internal/interfaces/mcpapi")

type toolHandler[T any] func(ctx context.Context, args T) (*mcp.CallToolResult, error)

func addTool[T any](s *Server, name, description string, handle toolHandler[T]) {
	s.tools = append(s.tools, ToolInfo{Name: name, Description: description})
	mcp.AddTool(s.mcp, &mcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
			return invoke(ctx, s, name, args, handle), nil, nil
		})
}

// invoke runs one tool call under its own deadline. Validation failures,
// handler errors and panics all come back as error results, never as
// protocol errors.
func invoke[T any](ctx context.Context, s *Server, name string, args T, handle toolHandler[T]) *mcp.CallToolResult {
	callID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "call id unavailable", "tool", name, "error", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	ctx, span := toolTracer.Start(ctx, "mcp.tool "+name, trace.WithAttributes(
		attribute.String("mcp.tool.name", name),
		attribute.String("mcp.call_id", callID),
	))
	defer span.End()

	logger := s.logger.With("tool", name, "call_id", callID)
	started := time.Now()
	logger.DebugContext(ctx, "tool call started")

	if err := s.validateArgs(ctx, args); err != nil {
		logger.InfoContext(ctx, "tool call rejected", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return toolError(err)
	}

	var (
		result    *mcp.CallToolResult
		handleErr error
		catcher   panics.Catcher
	)
	catcher.Try(func() {
		result, handleErr = handle(ctx, args)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		logger.ErrorContext(ctx, "tool handler panicked", "panic", recovered.Value, "stack", string(recovered.Stack))
		handleErr = recovered.AsError()
	}
	if handleErr == nil && result == nil {
		handleErr = fmt.Errorf("tool %s returned no result", name)
	}

	duration := time.Since(started)
	if handleErr != nil {
		span.RecordError(handleErr)
		span.SetStatus(codes.Error, handleErr.Error())
		logger.WarnContext(ctx, "tool call failed",
			"reason", errorReason(handleErr),
			"duration_ms", duration.Milliseconds(),
			"error", handleErr,
		)
		return toolError(handleErr)
	}

	logger.InfoContext(ctx, "tool call finished", "duration_ms", duration.Milliseconds())
	return result
}

func (s *Server) validateArgs(ctx context.Context, args any) error {
	if err := s.validator.StructCtx(ctx, args); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
