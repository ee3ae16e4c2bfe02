package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/1234"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1234" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "match-predictor-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "match-predictor-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Run("defaults to wildcard", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CORS_ALLOWED_ORIGINS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("parses csv and trims", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , https://b.example.com ,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first origin: %q", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=false")
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
}

func TestLoad_APIFootballConfigParsing(t *testing.T) {
	t.Run("requires token when enabled", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("APIFOOTBALL_ENABLED", "true")
		t.Setenv("APIFOOTBALL_TOKEN", "")
		t.Setenv("APIFOOTBALL_LEAGUE_ID_MAP", "eng-premier-league:39")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when APIFOOTBALL_ENABLED=true without token")
		}
	})

	t.Run("requires league map when enabled", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("APIFOOTBALL_ENABLED", "true")
		t.Setenv("APIFOOTBALL_TOKEN", "token-123")
		t.Setenv("APIFOOTBALL_LEAGUE_ID_MAP", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when APIFOOTBALL_ENABLED=true without league map")
		}
	})

	t.Run("parses full provider config", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("APIFOOTBALL_ENABLED", "true")
		t.Setenv("APIFOOTBALL_TOKEN", "token-123")
		t.Setenv("APIFOOTBALL_LEAGUE_ID_MAP", "eng-premier-league:39,idn-liga-1:274")
		t.Setenv("APIFOOTBALL_TIMEOUT", "30s")
		t.Setenv("APIFOOTBALL_MAX_RETRIES", "2")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.APIFootballEnabled {
			t.Fatalf("expected APIFootballEnabled=true")
		}
		if cfg.APIFootballTimeout != 30*time.Second {
			t.Fatalf("unexpected timeout: %s", cfg.APIFootballTimeout)
		}
		if cfg.APIFootballMaxRetries != 2 {
			t.Fatalf("unexpected max retries: %d", cfg.APIFootballMaxRetries)
		}
		if got := cfg.APIFootballLeagueRefIDs["eng-premier-league"]; got != 39 {
			t.Fatalf("unexpected league ref id: %d", got)
		}
		if got := cfg.APIFootballLeagueRefIDs["idn-liga-1"]; got != 274 {
			t.Fatalf("unexpected league ref id: %d", got)
		}
	})

	t.Run("rejects malformed league map", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("APIFOOTBALL_LEAGUE_ID_MAP", "eng-premier-league=39")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for malformed league map")
		}
	})
}

func TestLoad_DBConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_URL", "postgres://app:secret@db:5432/match_predictor?sslmode=disable")
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	t.Setenv("DB_BOOTSTRAP_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DBEnabled {
		t.Fatalf("expected DBEnabled=true")
	}
	if cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=false")
	}
	if !cfg.DBBootstrapSeed {
		t.Fatalf("expected DBBootstrapSeed=true")
	}
}
