package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/platform/resilience"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 6 << 20
	redacted        = "REDACTED"
)

type ClientConfig struct {
	// Service names the upstream in logs, errors and spans.
	Service    string
	HTTPClient *http.Client
	BaseURL    string
	// Headers are attached to every request, including absolute URLs.
	Headers map[string]string
	// Secrets are scrubbed from every log line and error message.
	Secrets        []string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
	// MaxResponseBytes caps the accepted body size. Zero means 6 MiB.
	MaxResponseBytes int64
}

// Client performs single-attempt GETs against one upstream and reports every
// failure through usecase.ErrUpstreamUnavailable or usecase.ErrMalformedResponse.
type Client struct {
	service        string
	httpClient     *http.Client
	baseURL        string
	headers        http.Header
	secrets        []string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	maxBytes       int64
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	service := strings.TrimSpace(cfg.Service)
	if service == "" {
		service = "upstream"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return service + " " + r.Method + " " + r.URL.Path
				}),
			),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	headers := make(http.Header, len(cfg.Headers))
	for key, value := range cfg.Headers {
		if strings.TrimSpace(value) == "" {
			continue
		}
		headers.Set(key, value)
	}

	secrets := make([]string, 0, len(cfg.Secrets))
	for _, secret := range cfg.Secrets {
		if secret = strings.TrimSpace(secret); secret != "" {
			secrets = append(secrets, secret)
		}
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = maxResponseSize
	}

	return &Client{
		service:        service,
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		headers:        headers,
		secrets:        secrets,
		logger:         logger.Named(service),
		breaker:        resilience.NewCircuitBreakerWithClock(breakerCfg, cfg.Clock),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		maxBytes:       maxBytes,
	}
}

// GetJSON fetches pathOrURL and decodes it into a generic tree. pathOrURL is
// joined to the base URL unless it is already absolute.
func (c *Client) GetJSON(ctx context.Context, pathOrURL string, query *Query) ([]byte, any, error) {
	raw, err := c.fetch(ctx, pathOrURL, query)
	if err != nil {
		return nil, nil, err
	}

	var decoded any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return raw, nil, crerr.Wrapf(usecase.ErrMalformedResponse, "%s decode body: %v", c.service, err)
	}
	return raw, decoded, nil
}

// Get fetches pathOrURL and decodes it into target.
func (c *Client) Get(ctx context.Context, pathOrURL string, query *Query, target any) ([]byte, error) {
	raw, err := c.fetch(ctx, pathOrURL, query)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return raw, crerr.Wrapf(usecase.ErrMalformedResponse, "%s decode body: %v", c.service, err)
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, pathOrURL string, query *Query) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected request", "state", c.breaker.State())
			return nil, crerr.Wrapf(usecase.ErrUpstreamUnavailable, "%s is temporarily unavailable", c.service)
		}
	}

	fullURL := c.resolveURL(pathOrURL, query)
	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if crerr.Is(err, context.Canceled) {
			c.breaker.Release()
		} else {
			c.breaker.Record(countsAsBreakerFailure(err))
		}
	}
	if err != nil {
		c.logger.WarnContext(ctx, "upstream request failed", "url", c.redact(fullURL), "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) resolveURL(pathOrURL string, query *Query) string {
	target := strings.TrimSpace(pathOrURL)
	if !isAbsoluteURL(target) {
		if target != "" && !strings.HasPrefix(target, "/") {
			target = "/" + target
		}
		target = c.baseURL + target
	}

	encoded := query.Encode()
	if encoded == "" {
		return target
	}
	if strings.Contains(target, "?") {
		return target + "&" + encoded
	}
	return target + "?" + encoded
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrapf(usecase.ErrUpstreamUnavailable, "%s build request: %s", c.service, c.redact(err.Error()))
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s request: %w", usecase.ErrUpstreamUnavailable, c.service, ctxErr)
		}
		return nil, crerr.Wrapf(usecase.ErrUpstreamUnavailable, "%s send request: %s", c.service, c.redact(err.Error()))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, crerr.Wrapf(usecase.ErrUpstreamUnavailable, "%s read response body: %v", c.service, err)
	}
	if int64(len(raw)) > c.maxBytes {
		return nil, crerr.Wrapf(usecase.ErrUpstreamUnavailable, "%s response exceeds limit of %d bytes", c.service, c.maxBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Body:       c.redact(abbreviateBody(raw)),
		}
	}

	c.logger.DebugContext(ctx, "upstream request completed", "url", c.redact(fullURL), "status", resp.StatusCode, "bytes", len(raw))
	return raw, nil
}

func (c *Client) redact(value string) string {
	for _, secret := range c.secrets {
		value = strings.ReplaceAll(value, secret, redacted)
	}
	return value
}

// countsAsBreakerFailure keeps client errors (bad ids, unsupported
// coordinates) from tripping the breaker. Cancelled calls never reach it.
func countsAsBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.Transient()
	}
	return true
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
