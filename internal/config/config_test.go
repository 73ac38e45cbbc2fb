package config

import (
	"testing"
	"time"
)

func setBase(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("GATEWAY_MODE", GatewayHTTP)
	t.Setenv("COACHBOARD_GAME_ID", "7")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBase(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBase(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_GameIDRequired(t *testing.T) {
	setBase(t)

	t.Run("missing in http mode", func(t *testing.T) {
		t.Setenv("COACHBOARD_GAME_ID", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when COACHBOARD_GAME_ID is empty")
		}
	})

	t.Run("not positive", func(t *testing.T) {
		t.Setenv("COACHBOARD_GAME_ID", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when COACHBOARD_GAME_ID=0")
		}
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("COACHBOARD_GAME_ID", "seven")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when COACHBOARD_GAME_ID is not numeric")
		}
	})

	t.Run("memory mode defaults to the demo game", func(t *testing.T) {
		t.Setenv("GATEWAY_MODE", "Memory")
		t.Setenv("COACHBOARD_GAME_ID", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.GatewayMode != GatewayMemory {
			t.Fatalf("unexpected gateway mode: %q", cfg.GatewayMode)
		}
		if cfg.GameID != 1 {
			t.Fatalf("unexpected default game id: %d", cfg.GameID)
		}
	})
}

func TestLoad_GatewayModeValidation(t *testing.T) {
	setBase(t)
	t.Setenv("GATEWAY_MODE", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid GATEWAY_MODE")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBase(t)
	for _, key := range []string{
		"COACHBOARD_BASE_URL", "APP_HTTP_ADDR", "GATEWAY_TIMEOUT", "GATEWAY_CIRCUIT_ENABLED",
		"GATEWAY_CIRCUIT_FAILURE_COUNT", "LIVE_ENABLED", "LIVE_RECONNECT_DELAY", "APP_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GameID != 7 {
		t.Fatalf("unexpected game id: %d", cfg.GameID)
	}
	if cfg.BaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL)
	}
	if cfg.HTTPAddr != "127.0.0.1:8787" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.GatewayTimeout != 10*time.Second {
		t.Fatalf("unexpected gateway timeout: %s", cfg.GatewayTimeout)
	}
	if !cfg.GatewayCircuitEnabled || cfg.GatewayCircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: enabled=%v count=%d", cfg.GatewayCircuitEnabled, cfg.GatewayCircuitFailureCount)
	}
	if cfg.LiveEnabled {
		t.Fatalf("expected LiveEnabled=false by default")
	}
	if cfg.LiveReconnectDelay != 3*time.Second {
		t.Fatalf("unexpected live reconnect delay: %s", cfg.LiveReconnectDelay)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel.String())
	}
}

func TestLoad_GatewayCircuitValidation(t *testing.T) {
	setBase(t)

	t.Run("failure count below one", func(t *testing.T) {
		t.Setenv("GATEWAY_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for GATEWAY_CIRCUIT_FAILURE_COUNT=0")
		}
	})

	t.Run("invalid open timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_CIRCUIT_OPEN_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid GATEWAY_CIRCUIT_OPEN_TIMEOUT")
		}
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_TIMEOUT", "-1s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative GATEWAY_TIMEOUT")
		}
	})
}

func TestLoad_LiveConfigParsing(t *testing.T) {
	setBase(t)

	t.Run("enabled requires url", func(t *testing.T) {
		t.Setenv("LIVE_ENABLED", "true")
		t.Setenv("LIVE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when LIVE_ENABLED=true without LIVE_URL")
		}
	})

	t.Run("enabled with url", func(t *testing.T) {
		t.Setenv("LIVE_ENABLED", "true")
		t.Setenv("LIVE_URL", " ws://localhost:5000/ws ")
		t.Setenv("LIVE_RECONNECT_DELAY", "500ms")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LiveURL != "ws://localhost:5000/ws" {
			t.Fatalf("unexpected live url: %q", cfg.LiveURL)
		}
		if cfg.LiveReconnectDelay != 500*time.Millisecond {
			t.Fatalf("unexpected reconnect delay: %s", cfg.LiveReconnectDelay)
		}
	})
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setBase(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when CORS_ALLOWED_ORIGINS has no entries")
		}
	})
}
