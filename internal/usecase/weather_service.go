package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/matchday-mcp/internal/domain/weather"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// WeatherService never returns an error: every upstream failure becomes a
// plain-English sentence for the caller.
type WeatherService struct {
	provider weather.Provider
	logger   *logging.Logger
}

func NewWeatherService(provider weather.Provider, logger *logging.Logger) *WeatherService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeatherService{
		provider: provider,
		logger:   logger,
	}
}

func (s *WeatherService) GetAlertsForState(ctx context.Context, state string) string {
	state = strings.ToUpper(strings.TrimSpace(state))
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.GetAlertsForState", attribute.String("weather.state", state))
	defer span.End()

	alerts, err := s.provider.Alerts(ctx, state)
	if err != nil {
		failUsecaseSpan(span, err)
		s.logger.WarnContext(ctx, "fetch weather alerts failed", "state", state, "error", err)
		return "Failed to retrieve alerts data"
	}

	if len(alerts.Features) == 0 {
		return "No active alerts for " + state
	}

	blocks := make([]string, 0, len(alerts.Features))
	for _, feature := range alerts.Features {
		blocks = append(blocks, FormatAlert(feature))
	}
	return joinBlocks("Active alerts for "+state+":", blocks)
}

func (s *WeatherService) GetForecastForLocation(ctx context.Context, latitude, longitude float64) string {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.GetForecastForLocation",
		attribute.Float64("weather.latitude", latitude),
		attribute.Float64("weather.longitude", longitude),
	)
	defer span.End()

	coordinates := formatCoordinate(latitude) + ", " + formatCoordinate(longitude)

	point, err := s.provider.Point(ctx, latitude, longitude)
	if err != nil {
		failUsecaseSpan(span, err)
		s.logger.WarnContext(ctx, "fetch grid point failed", "latitude", latitude, "longitude", longitude, "error", err)
		return "Failed to retrieve grid point data for coordinates: " + coordinates +
			". This location may not be supported by the NWS API (only US locations are supported)."
	}

	forecastURL, ok := point.ForecastURL()
	if !ok {
		return "Failed to get forecast URL from grid point data"
	}

	forecast, err := s.provider.Forecast(ctx, forecastURL)
	if err != nil {
		failUsecaseSpan(span, err)
		s.logger.WarnContext(ctx, "fetch forecast failed", "forecast_url", forecastURL, "error", err)
		return "Failed to retrieve forecast data"
	}

	periods := forecast.Properties.Periods
	if len(periods) == 0 {
		return "No forecast periods available"
	}

	blocks := make([]string, 0, len(periods))
	for _, period := range periods {
		blocks = append(blocks, FormatForecastPeriod(period))
	}
	return joinBlocks("Forecast for "+coordinates+":", blocks)
}
