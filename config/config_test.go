package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.LoginPath != "/users/login" || cfg.RegisterPath != "/users/register" {
		t.Fatalf("auth paths = %q %q", cfg.LoginPath, cfg.RegisterPath)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Session.Backend != "file" || cfg.Session.Dir != "" {
		t.Fatalf("session config = %+v", cfg.Session)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.KeyPrefix != "unihub" {
		t.Fatalf("redis config = %+v", cfg.Redis)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("UNIHUB_API_URL", "https://unihub.example.com/api")
	t.Setenv("UNIHUB_LOGIN_PATH", "/auth/login")
	t.Setenv("UNIHUB_HTTP_TIMEOUT", "3s")
	t.Setenv("UNIHUB_SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "https://unihub.example.com/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.LoginPath != "/auth/login" {
		t.Fatalf("LoginPath = %q", cfg.LoginPath)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Session.Backend != "redis" || cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("session/redis config = %+v %+v", cfg.Session, cfg.Redis)
	}
}
