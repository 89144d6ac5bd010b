package mcpapi

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type getAlertsArgs struct {
	State string `json:"state" jsonschema:"Two-letter US state code (e.g. CA, NY)" validate:"required,len=2,alpha"`
}

type getForecastArgs struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location" validate:"gte=-180,lte=180"`
}

func (s *Server) registerWeatherTools() {
	addTool(s, "get-alerts", "Get active weather alerts for a US state", s.getAlerts)
	addTool(s, "get-forecast", "Get the weather forecast for a US location", s.getForecast)
}

func (s *Server) getAlerts(ctx context.Context, args getAlertsArgs) (*mcp.CallToolResult, error) {
	return toolText(s.weather.GetAlertsForState(ctx, args.State)), nil
}

func (s *Server) getForecast(ctx context.Context, args getForecastArgs) (*mcp.CallToolResult, error) {
	return toolText(s.weather.GetForecastForLocation(ctx, args.Latitude, args.Longitude)), nil
}
