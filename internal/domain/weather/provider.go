package weather

import "context"

// Provider is the weather port implemented by the NWS adapter.
type Provider interface {
	Alerts(ctx context.Context, state string) (AlertsResponse, error)
	Point(ctx context.Context, latitude, longitude float64) (PointsResponse, error)
	Forecast(ctx context.Context, forecastURL string) (ForecastResponse, error)
}
