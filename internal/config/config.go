package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coachboard/coachboard/internal/platform/logging"
)

// Config stores runtime configuration for the game-day client.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	GatewayMode                  string
	BaseURL                      string
	GameID                       int64
	SessionCookie                string
	GatewayTimeout               time.Duration
	GatewayCircuitEnabled        bool
	GatewayCircuitFailureCount   int
	GatewayCircuitOpenTimeout    time.Duration
	GatewayCircuitHalfOpenMaxReq int
	LiveEnabled                  bool
	LiveURL                      string
	LiveReconnectDelay           time.Duration
	UptraceEnabled               bool
	UptraceDSN                   string
	LogLevel                     logging.Level
}

const (
	GatewayHTTP   = "http"
	GatewayMemory = "memory"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	gatewayMode, err := parseGatewayMode(getEnv("GATEWAY_MODE", GatewayHTTP))
	if err != nil {
		return Config{}, err
	}

	baseURL := strings.TrimSpace(getEnv("COACHBOARD_BASE_URL", "http://localhost:5000"))
	if gatewayMode == GatewayHTTP && baseURL == "" {
		return Config{}, fmt.Errorf("COACHBOARD_BASE_URL is required when GATEWAY_MODE=%s", GatewayHTTP)
	}

	gameIDDefault := ""
	if gatewayMode == GatewayMemory {
		gameIDDefault = "1"
	}
	rawGameID := strings.TrimSpace(getEnv("COACHBOARD_GAME_ID", gameIDDefault))
	if rawGameID == "" {
		return Config{}, fmt.Errorf("COACHBOARD_GAME_ID is required")
	}
	gameID, err := strconv.ParseInt(rawGameID, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse COACHBOARD_GAME_ID: %w", err)
	}
	if gameID <= 0 {
		return Config{}, fmt.Errorf("COACHBOARD_GAME_ID must be > 0")
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

	gatewayTimeout, err := time.ParseDuration(getEnv("GATEWAY_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEWAY_TIMEOUT: %w", err)
	}
	if gatewayTimeout <= 0 {
		return Config{}, fmt.Errorf("GATEWAY_TIMEOUT must be > 0")
	}
	gatewayCircuitEnabled, err := strconv.ParseBool(getEnv("GATEWAY_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEWAY_CIRCUIT_ENABLED: %w", err)
	}
	gatewayCircuitFailureCount, err := getEnvAsInt("GATEWAY_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEWAY_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if gatewayCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("GATEWAY_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	gatewayCircuitOpenTimeout, err := time.ParseDuration(getEnv("GATEWAY_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEWAY_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if gatewayCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GATEWAY_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	gatewayCircuitHalfOpenMaxReq, err := getEnvAsInt("GATEWAY_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEWAY_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if gatewayCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("GATEWAY_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	liveEnabled, err := strconv.ParseBool(getEnv("LIVE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_ENABLED: %w", err)
	}
	liveURL := strings.TrimSpace(getEnv("LIVE_URL", ""))
	if liveEnabled && liveURL == "" {
		return Config{}, fmt.Errorf("LIVE_URL is required when LIVE_ENABLED=true")
	}
	liveReconnectDelay, err := time.ParseDuration(getEnv("LIVE_RECONNECT_DELAY", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_RECONNECT_DELAY: %w", err)
	}
	if liveReconnectDelay <= 0 {
		return Config{}, fmt.Errorf("LIVE_RECONNECT_DELAY must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "coachboard"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", "127.0.0.1:8787"),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		GatewayMode:                  gatewayMode,
		BaseURL:                      baseURL,
		GameID:                       gameID,
		SessionCookie:                strings.TrimSpace(getEnv("COACHBOARD_SESSION_COOKIE", "")),
		GatewayTimeout:               gatewayTimeout,
		GatewayCircuitEnabled:        gatewayCircuitEnabled,
		GatewayCircuitFailureCount:   gatewayCircuitFailureCount,
		GatewayCircuitOpenTimeout:    gatewayCircuitOpenTimeout,
		GatewayCircuitHalfOpenMaxReq: gatewayCircuitHalfOpenMaxReq,
		LiveEnabled:                  liveEnabled,
		LiveURL:                      liveURL,
		LiveReconnectDelay:           liveReconnectDelay,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		LogLevel:                     logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
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

func parseGatewayMode(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case GatewayHTTP, GatewayMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid GATEWAY_MODE %q: valid values are %s, %s", v, GatewayHTTP, GatewayMemory)
	}
}
