package mcpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/matchday-mcp/internal/platform/id"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

const defaultCallTimeout = 30 * time.Second

type ServerConfig struct {
	Name        string
	Version     string
	Weather     *usecase.WeatherService
	Football    *usecase.FootballService
	Logger      *logging.Logger
	IDGenerator id.Generator
	CallTimeout time.Duration
}

// ToolInfo describes one registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server exposes the weather and football services as MCP tools.
type Server struct {
	mcp         *mcp.Server
	weather     *usecase.WeatherService
	football    *usecase.FootballService
	validator   *validator.Validate
	logger      *logging.Logger
	ids         id.Generator
	callTimeout time.Duration
	tools       []ToolInfo
}

func NewServer(cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	s := &Server{
		mcp:         mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil),
		weather:     cfg.Weather,
		football:    cfg.Football,
		validator:   validator.New(),
		logger:      logger.Named("mcpapi"),
		ids:         ids,
		callTimeout: timeout,
	}

	if s.weather != nil {
		s.registerWeatherTools()
	}
	if s.football != nil {
		s.registerFootballTools()
	}
	return s
}

// Tools returns the registered tools in registration order.
func (s *Server) Tools() []ToolInfo {
	out := make([]ToolInfo, len(s.tools))
	copy(out, s.tools)
	return out
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// RunStdio serves a single session over stdin/stdout until the client
// disconnects or ctx is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.InfoContext(ctx, "mcp server listening on stdio", "tools", len(s.tools))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler mounts the streamable HTTP transport at path next to a health
// probe, wrapped with request tracing and logging.
func (s *Server) HTTPHandler(path string) http.Handler {
	if path == "" {
		path = "/mcp"
	}

	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.healthz)
	mux.Handle(path, streamable)

	return RequestTracing(RequestLogging(s.logger, recoverPanic(s.logger, mux)))
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeHTTPJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"tools":  len(s.tools),
	})
}
