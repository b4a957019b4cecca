package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("NATS_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("expected postgres backend by default, got %q", cfg.StoreBackend)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected 24h JWT expiry, got %v", cfg.JWTExpirationDur)
	}
	if cfg.NATSURL != "" {
		t.Errorf("expected NATS disabled by default, got %q", cfg.NATSURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("PIPELINE_API_KEY", "pipeline-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreBackend != BackendRedis {
		t.Errorf("expected redis backend, got %q", cfg.StoreBackend)
	}
	if cfg.JWTExpirationDur != 90*time.Minute {
		t.Errorf("expected 90m, got %v", cfg.JWTExpirationDur)
	}
	if cfg.PipelineAPIKey != "pipeline-key" {
		t.Errorf("expected pipeline key to be loaded, got %q", cfg.PipelineAPIKey)
	}
}

func TestLoadInvalidJWTExpiryFallsBack(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("JWT_EXPIRES_IN", "tomorrow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected fallback to 24h, got %v", cfg.JWTExpirationDur)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "etcd")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
