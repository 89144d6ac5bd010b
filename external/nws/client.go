package nws

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday-mcp/external/upstream"
	"github.com/riskibarqy/matchday-mcp/internal/domain/weather"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/platform/resilience"
)

const (
	defaultBaseURL   = "https://api.weather.gov"
	defaultUserAgent = "weather-app/1.0"
	acceptGeoJSON    = "application/geo+json"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client reads alerts and forecasts from the National Weather Service.
type Client struct {
	http *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		http: upstream.NewClient(upstream.ClientConfig{
			Service:    "nws",
			HTTPClient: cfg.HTTPClient,
			BaseURL:    baseURL,
			Headers: map[string]string{
				"User-Agent": userAgent,
				"Accept":     acceptGeoJSON,
			},
			Timeout:        cfg.Timeout,
			Logger:         cfg.Logger,
			CircuitBreaker: cfg.CircuitBreaker,
			Clock:          cfg.Clock,
		}),
	}
}

func (c *Client) Alerts(ctx context.Context, state string) (weather.AlertsResponse, error) {
	var out weather.AlertsResponse
	query := upstream.NewQuery().Set("area", strings.ToUpper(state))
	if _, err := c.http.Get(ctx, "/alerts", query, &out); err != nil {
		return weather.AlertsResponse{}, err
	}
	return out, nil
}

// Point resolves the grid point owning a coordinate. Coordinates are sent with
// four decimals, the precision NWS redirects to.
func (c *Client) Point(ctx context.Context, latitude, longitude float64) (weather.PointsResponse, error) {
	var out weather.PointsResponse
	if _, err := c.http.Get(ctx, pointsPath(latitude, longitude), nil, &out); err != nil {
		return weather.PointsResponse{}, err
	}
	return out, nil
}

// Forecast fetches the absolute forecast URL advertised by a grid point.
func (c *Client) Forecast(ctx context.Context, forecastURL string) (weather.ForecastResponse, error) {
	var out weather.ForecastResponse
	if _, err := c.http.Get(ctx, forecastURL, nil, &out); err != nil {
		return weather.ForecastResponse{}, err
	}
	return out, nil
}

func pointsPath(latitude, longitude float64) string {
	return "/points/" + strconv.FormatFloat(latitude, 'f', 4, 64) + "," + strconv.FormatFloat(longitude, 'f', 4, 64)
}
