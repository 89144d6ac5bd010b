package usecase

import (
	"strconv"

	"github.com/riskibarqy/matchday-mcp/internal/domain/weather"
	"github.com/valyala/bytebufferpool"
)

const weatherBlockSeparator = "---"

// FormatAlert renders one alert as a fixed-order block ending in a separator line.
func FormatAlert(feature weather.AlertFeature) string {
	props := feature.Properties

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine(buf, "Event: ", textOr(props.Event, "Unknown"))
	writeLine(buf, "Area: ", textOr(props.AreaDesc, "Unknown"))
	writeLine(buf, "Severity: ", textOr(props.Severity, "Unknown"))
	writeLine(buf, "Status: ", textOr(props.Status, "Unknown"))
	writeLine(buf, "Headline: ", textOr(props.Headline, "No headline"))
	_, _ = buf.WriteString(weatherBlockSeparator)

	return buf.String()
}

// FormatForecastPeriod renders one forecast period. Temperature falls back to
// "Unknown" only when absent; zero degrees is a real reading.
func FormatForecastPeriod(period weather.ForecastPeriod) string {
	temperature := "Unknown"
	if period.Temperature != nil {
		temperature = strconv.FormatFloat(*period.Temperature, 'f', -1, 64)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine(buf, textOr(period.Name, "Unknown"), ":")
	writeLine(buf, "Temperature: ", temperature, "°", textOr(period.TemperatureUnit, "F"))
	writeLine(buf, "Wind: ", textOr(period.WindSpeed, "Unknown"), " ", textOr(period.WindDirection, ""))
	writeLine(buf, textOr(period.ShortForecast, "No forecast available"))
	_, _ = buf.WriteString(weatherBlockSeparator)

	return buf.String()
}

// joinBlocks separates rendered blocks by exactly one blank line.
func joinBlocks(header string, blocks []string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(header)
	_, _ = buf.WriteString("\n\n")
	for i, block := range blocks {
		if i > 0 {
			_, _ = buf.WriteString("\n\n")
		}
		_, _ = buf.WriteString(block)
	}
	return buf.String()
}

func writeLine(buf *bytebufferpool.ByteBuffer, parts ...string) {
	for _, part := range parts {
		_, _ = buf.WriteString(part)
	}
	_ = buf.WriteByte('\n')
}

func textOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
