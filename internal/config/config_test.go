package config

import (
	"testing"
	"time"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("NOTIFY_DISABLED", "true")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("NOTIFY_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Http.Port != ":9090" {
		t.Fatalf("port=%s", cfg.Http.Port)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("ttl=%s", cfg.Auth.TokenTTL)
	}
	if cfg.Postgres.Port != 6543 {
		t.Fatalf("pg port=%d", cfg.Postgres.Port)
	}
	if cfg.Notify.Workers != 2 {
		t.Fatalf("expected default workers on parse failure, got %d", cfg.Notify.Workers)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Http:      HttpConfig{Port: ":8080"},
			Postgres:  PostgresConfig{Host: "db"},
			Auth:      AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour},
			Notify:    NotifyConfig{URL: "http://hook", Workers: 1},
			RateLimit: RateLimitConfig{PublicRPS: 1, AuthRPS: 1},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cases := map[string]func(c *Config){
		"port without colon": func(c *Config) { c.Http.Port = "8080" },
		"no pg host":         func(c *Config) { c.Postgres.Host = "" },
		"short secret":       func(c *Config) { c.Auth.JWTSecret = "short" },
		"no notify url":      func(c *Config) { c.Notify.URL = "" },
		"zero workers":       func(c *Config) { c.Notify.Workers = 0 },
		"zero rps":           func(c *Config) { c.RateLimit.PublicRPS = 0 },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
