package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `api_key = "key"
api_secret = "secret"
username = "bob"
password = "hunter2"
session = "sess"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIKey != "key" || cfg.APISecret != "secret" {
		t.Errorf("credentials = %q/%q", cfg.APIKey, cfg.APISecret)
	}
	if cfg.Username != "bob" {
		t.Errorf("Username = %q", cfg.Username)
	}
	// md5("hunter2")
	if cfg.PasswordHash != "2ab96390c7dbe3439de74d0c9b0b1767" {
		t.Errorf("PasswordHash = %q", cfg.PasswordHash)
	}
	if !cfg.HasAPIKey() || !cfg.CanAuthenticate() || !cfg.HasSession() {
		t.Errorf("predicates failed for %+v", cfg)
	}
}

func TestLoadFrom_EnvFallback(t *testing.T) {
	t.Setenv("LASTFM_API_KEY", "envkey")
	t.Setenv("LASTFM_PASSWORD", "hunter2")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIKey != "envkey" {
		t.Errorf("APIKey = %q, want envkey", cfg.APIKey)
	}
	if cfg.PasswordHash != "2ab96390c7dbe3439de74d0c9b0b1767" {
		t.Errorf("PasswordHash = %q", cfg.PasswordHash)
	}
}

func TestLoadFrom_FileOverridesEnv(t *testing.T) {
	t.Setenv("LASTFM_API_KEY", "envkey")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = "filekey"`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIKey != "filekey" {
		t.Errorf("APIKey = %q, want filekey", cfg.APIKey)
	}
}

func TestLoadFrom_Empty(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.HasAPIKey() || cfg.CanAuthenticate() || cfg.HasSession() {
		t.Errorf("expected empty config, got %+v", cfg)
	}
	if cfg.PasswordHash != "" {
		t.Errorf("PasswordHash = %q, want empty", cfg.PasswordHash)
	}
}
