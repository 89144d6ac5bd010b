package weather

// Provider-native NWS shapes. Every leaf is a pointer because NWS omits fields freely.

type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

type AlertProperties struct {
	Event       *string `json:"event"`
	AreaDesc    *string `json:"areaDesc"`
	Severity    *string `json:"severity"`
	Status      *string `json:"status"`
	Headline    *string `json:"headline"`
	Description *string `json:"description"`
	Instruction *string `json:"instruction"`
}

type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

type PointsProperties struct {
	Forecast *string `json:"forecast"`
	GridID   *string `json:"gridId"`
	GridX    *int    `json:"gridX"`
	GridY    *int    `json:"gridY"`
}

type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

type ForecastPeriod struct {
	Number           *int     `json:"number"`
	Name             *string  `json:"name"`
	Temperature      *float64 `json:"temperature"`
	TemperatureUnit  *string  `json:"temperatureUnit"`
	WindSpeed        *string  `json:"windSpeed"`
	WindDirection    *string  `json:"windDirection"`
	ShortForecast    *string  `json:"shortForecast"`
	DetailedForecast *string  `json:"detailedForecast"`
}

// ForecastURL returns the dynamic forecast address advertised by a grid point.
func (p PointsResponse) ForecastURL() (string, bool) {
	if p.Properties.Forecast == nil || *p.Properties.Forecast == "" {
		return "", false
	}
	return *p.Properties.Forecast, true
}
