package app

import (
	"context"
	"net"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-mcp/external/apifootball"
	"github.com/riskibarqy/matchday-mcp/external/nws"
	"github.com/riskibarqy/matchday-mcp/internal/config"
	"github.com/riskibarqy/matchday-mcp/internal/interfaces/mcpapi"
	idgen "github.com/riskibarqy/matchday-mcp/internal/platform/id"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/platform/resilience"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// App owns the tool server and the transport it is served over.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	server *mcpapi.Server
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Transport != config.TransportStdio && cfg.Transport != config.TransportHTTP {
		return nil, crerr.Newf("unsupported transport %q", cfg.Transport)
	}

	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.UpstreamCircuitEnabled,
		FailureThreshold: cfg.UpstreamCircuitFailureCount,
		OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMaxReq,
	}

	weatherClient := nws.NewClient(nws.ClientConfig{
		BaseURL:        cfg.NWSBaseURL,
		UserAgent:      cfg.NWSUserAgent,
		Timeout:        cfg.NWSTimeout,
		Logger:         logger,
		CircuitBreaker: breaker,
	})
	footballClient := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:        cfg.FootballBaseURL,
		APIKey:         cfg.RapidAPIKey,
		Host:           cfg.RapidAPIHost,
		Timeout:        cfg.FootballTimeout,
		Logger:         logger,
		CircuitBreaker: breaker,
	})
	if !cfg.FootballEnabled() {
		logger.Warn("RAPIDAPI_KEY is empty; football tools will report provider errors")
	}

	server := mcpapi.NewServer(mcpapi.ServerConfig{
		Name:        cfg.ServiceName,
		Version:     cfg.ServiceVersion,
		Weather:     usecase.NewWeatherService(weatherClient, logger.Named("weather")),
		Football:    usecase.NewFootballService(footballClient),
		Logger:      logger,
		IDGenerator: idgen.NewUUIDGenerator(),
		CallTimeout: cfg.ToolCallTimeout,
	})

	return &App{cfg: cfg, logger: logger, server: server}, nil
}

func (a *App) Server() *mcpapi.Server {
	return a.server
}

// Run serves the configured transport until ctx is cancelled or the
// transport fails.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Transport == config.TransportHTTP {
		return a.runHTTP(ctx)
	}

	err := a.server.RunStdio(ctx)
	if err != nil && !crerr.Is(err, context.Canceled) {
		return crerr.Wrap(err, "stdio transport")
	}
	return nil
}

func (a *App) runHTTP(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.cfg.HTTPAddr)
	if err != nil {
		return crerr.Wrapf(err, "listen %s", a.cfg.HTTPAddr)
	}
	return a.serveHTTP(ctx, listener)
}

func (a *App) serveHTTP(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           a.server.HTTPHandler(a.cfg.HTTPPath),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("mcp http server starting", "addr", listener.Addr().String(), "path", a.cfg.HTTPPath)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if crerr.Is(err, http.ErrServerClosed) {
			return nil
		}
		return crerr.Wrap(err, "http transport")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return crerr.Wrap(err, "graceful shutdown")
	}
	a.logger.Info("mcp http server stopped")
	return nil
}
