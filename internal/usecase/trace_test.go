package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/matchday-mcp/internal/domain/weather"
	weathermock "github.com/riskibarqy/matchday-mcp/internal/mocks/domain/weather"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newSpanRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	return recorder, provider
}

func findEndedSpan(t *testing.T, recorder *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()

	for _, span := range recorder.Ended() {
		if span.Name() == name {
			return span
		}
	}
	t.Fatalf("span %q was not recorded", name)
	return nil
}

func TestWeatherService_FailedCallsMarkSpanAsError(t *testing.T) {
	t.Parallel()

	recorder, tp := newSpanRecorder(t)

	provider := weathermock.NewProvider(t)
	provider.On("Alerts", mock.Anything, "TX").Return(weather.AlertsResponse{}, ErrUpstreamUnavailable).Once()
	provider.On("Point", mock.Anything, 39.7456, -97.0892).Return(weather.PointsResponse{}, ErrUpstreamUnavailable).Once()

	ctx, parent := tp.Tracer("test").Start(context.Background(), "tool call")
	service := NewWeatherService(provider, nil)
	_ = service.GetAlertsForState(ctx, "tx")
	_ = service.GetForecastForLocation(ctx, 39.7456, -97.0892)
	parent.End()

	for _, name := range []string{
		"usecase.WeatherService.GetAlertsForState",
		"usecase.WeatherService.GetForecastForLocation",
	} {
		span := findEndedSpan(t, recorder, name)
		if span.Status().Code != codes.Error {
			t.Fatalf("%s: expected error status, got %v", name, span.Status().Code)
		}
		if len(span.Events()) == 0 {
			t.Fatalf("%s: expected recorded error event", name)
		}
	}
}

func TestWeatherService_SuccessfulCallLeavesSpanUnset(t *testing.T) {
	t.Parallel()

	recorder, tp := newSpanRecorder(t)

	provider := weathermock.NewProvider(t)
	provider.On("Alerts", mock.Anything, "CA").Return(weather.AlertsResponse{}, nil).Once()

	ctx, parent := tp.Tracer("test").Start(context.Background(), "tool call")
	_ = NewWeatherService(provider, nil).GetAlertsForState(ctx, "ca")
	parent.End()

	span := findEndedSpan(t, recorder, "usecase.WeatherService.GetAlertsForState")
	if span.Status().Code != codes.Unset {
		t.Fatalf("expected unset status, got %v", span.Status().Code)
	}
}
