package config

import (
	"errors"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.SessionCheckInterval != time.Minute {
		t.Errorf("session check interval = %v, want 1m", cfg.Auth.SessionCheckInterval)
	}
	if cfg.Attempts.TickInterval != time.Second {
		t.Errorf("tick interval = %v, want 1s", cfg.Attempts.TickInterval)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v, want 24h", cfg.Auth.TokenTTL)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_CHECK_INTERVAL", "30s")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_NAME", "mock")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Auth.SessionCheckInterval != 30*time.Second {
		t.Errorf("session check interval = %v, want 30s", cfg.Auth.SessionCheckInterval)
	}
	if cfg.Database.Host != "db" || cfg.Database.Name != "mock" {
		t.Errorf("database = %+v", cfg.Database)
	}
}

func TestNewConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewConfig(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("err = %v, want ErrMissingJWTSecret", err)
	}
}
