package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "ai:\n  model: gpt-4o-mini\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.RateLimit.Capacity != 10 || cfg.RateLimit.RefillRate != 5 {
		t.Errorf("rate limit = %+v, want defaults 10/5", cfg.RateLimit)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.AI.Model)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
ai:
  model: gpt-4o
auth:
  keys:
    webapp: secret
rateLimit:
  capacity: 20
  refillRate: 2
cors:
  allowedOrigins:
    - https://study.example.com
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.Keys["webapp"] != "secret" {
		t.Errorf("auth keys = %v", cfg.Auth.Keys)
	}
	if cfg.RateLimit.Capacity != 20 || cfg.RateLimit.RefillRate != 2 {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
	if cfg.CORS.AllowedOrigins[0] != "https://study.example.com" {
		t.Errorf("cors origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
