package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config stores runtime configuration for the tool server.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	LogLevel                      logging.Level
	Transport                     string
	HTTPAddr                      string
	HTTPPath                      string
	ToolCallTimeout               time.Duration
	NWSBaseURL                    string
	NWSUserAgent                  string
	NWSTimeout                    time.Duration
	FootballBaseURL               string
	RapidAPIKey                   string
	RapidAPIHost                  string
	FootballTimeout               time.Duration
	UpstreamCircuitEnabled        bool
	UpstreamCircuitFailureCount   int
	UpstreamCircuitOpenTimeout    time.Duration
	UpstreamCircuitHalfOpenMaxReq int
	UptraceEnabled                bool
	UptraceDSN                    string
	PprofEnabled                  bool
	PprofAddr                     string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
}

// Load reads an optional .env file, then the process environment. Variables
// already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	transport, err := parseTransport(getEnv("MCP_TRANSPORT", TransportStdio))
	if err != nil {
		return Config{}, err
	}
	httpAddr := strings.TrimSpace(getEnv("MCP_HTTP_ADDR", ":8080"))
	httpPath := strings.TrimSpace(getEnv("MCP_HTTP_PATH", "/mcp"))
	if !strings.HasPrefix(httpPath, "/") {
		return Config{}, fmt.Errorf("MCP_HTTP_PATH must start with /")
	}

	toolCallTimeout, err := getEnvAsPositiveDuration("TOOL_CALL_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	nwsBaseURL, err := getEnvAsURL("NWS_BASE_URL", "https://api.weather.gov")
	if err != nil {
		return Config{}, err
	}
	nwsTimeout, err := getEnvAsPositiveDuration("NWS_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	footballBaseURL, err := getEnvAsURL("FOOTBALL_BASE_URL", "https://api-football-v1.p.rapidapi.com/v3")
	if err != nil {
		return Config{}, err
	}
	footballTimeout, err := getEnvAsPositiveDuration("FOOTBALL_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("UPSTREAM_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := getEnvAsPositiveDuration("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", "localhost:6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "matchday-mcp"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                      parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		Transport:                     transport,
		HTTPAddr:                      httpAddr,
		HTTPPath:                      httpPath,
		ToolCallTimeout:               toolCallTimeout,
		NWSBaseURL:                    nwsBaseURL,
		NWSUserAgent:                  strings.TrimSpace(getEnv("NWS_USER_AGENT", "weather-app/1.0")),
		NWSTimeout:                    nwsTimeout,
		FootballBaseURL:               footballBaseURL,
		RapidAPIKey:                   strings.TrimSpace(getEnv("RAPIDAPI_KEY", "")),
		RapidAPIHost:                  strings.TrimSpace(getEnv("RAPIDAPI_HOST", "api-football-v1.p.rapidapi.com")),
		FootballTimeout:               footballTimeout,
		UpstreamCircuitEnabled:        circuitEnabled,
		UpstreamCircuitFailureCount:   circuitFailureCount,
		UpstreamCircuitOpenTimeout:    circuitOpenTimeout,
		UpstreamCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if cfg.Transport == TransportHTTP && cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("MCP_HTTP_ADDR is required when MCP_TRANSPORT=http")
	}

	return cfg, nil
}

// FootballEnabled reports whether the football tools can reach the provider.
func (c Config) FootballEnabled() bool {
	return c.RapidAPIKey != ""
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnvAsURL(key, fallback string) (string, error) {
	raw := strings.TrimRight(strings.TrimSpace(getEnv(key, fallback)), "/")
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%s must include a host, got %q", key, raw)
	}
	return raw, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseTransport(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case TransportStdio, TransportHTTP:
		return value, nil
	default:
		return "", fmt.Errorf("invalid MCP_TRANSPORT %q: valid values are %s, %s", v, TransportStdio, TransportHTTP)
	}
}
