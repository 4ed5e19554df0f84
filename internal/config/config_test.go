package config

import (
	"os"
	"testing"
)

func TestLoadFile(t *testing.T) {
	yamlContent := []byte(`
api:
  base_url: "https://api.example.com"
  user_agent: "hood-test/1.0"
auth:
  username: "trader"
  password: "hunter2"
  oauth_client_id: "client-123"
  oauth_scope: "internal"
logging:
  level: "debug"
  format: "text"
`)

	tmpFile, err := os.CreateTemp("", "hood-config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(yamlContent); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	// Clear overrides that might interfere.
	for _, key := range []string{
		"HOOD_BASE_URL", "HOOD_USER_AGENT", "HOOD_USERNAME", "HOOD_PASSWORD",
		"HOOD_OAUTH_CLIENT_ID", "HOOD_OAUTH_SCOPE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://api.example.com")
	}
	if cfg.API.UserAgent != "hood-test/1.0" {
		t.Errorf("API.UserAgent = %q, want %q", cfg.API.UserAgent, "hood-test/1.0")
	}
	if cfg.Auth.Username != "trader" {
		t.Errorf("Auth.Username = %q, want %q", cfg.Auth.Username, "trader")
	}
	if cfg.Auth.Password != "hunter2" {
		t.Errorf("Auth.Password = %q, want %q", cfg.Auth.Password, "hunter2")
	}
	if cfg.Auth.OAuthClientID != "client-123" {
		t.Errorf("Auth.OAuthClientID = %q, want %q", cfg.Auth.OAuthClientID, "client-123")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOOD_USERNAME", "env-user")
	t.Setenv("HOOD_PASSWORD", "env-pass")
	t.Setenv("HOOD_BASE_URL", "http://localhost:9999")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Auth.Username != "env-user" {
		t.Errorf("Auth.Username = %q, want %q", cfg.Auth.Username, "env-user")
	}
	if cfg.Auth.Password != "env-pass" {
		t.Errorf("Auth.Password = %q, want %q", cfg.Auth.Password, "env-pass")
	}
	if cfg.API.BaseURL != "http://localhost:9999" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:9999")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/hood.yaml"); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}
