// Package config loads the Last.fm credentials from the environment and
// the user's config file. Loading is explicit: there is no process-wide
// instance, and reconfiguring means calling Load again and passing the new
// value around.
package config

import (
	"crypto/md5" //nolint:gosec // the API authentication scheme mandates MD5
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix names the environment fallbacks: LASTFM_API_KEY,
// LASTFM_API_SECRET, LASTFM_USERNAME, LASTFM_PASSWORD, LASTFM_SESSION.
const envPrefix = "LASTFM_"

// Config holds the Last.fm API credentials. The password is replaced by
// its MD5 hex digest at load time and the plaintext is never retained;
// the digest is what the mobile-session authentication flow consumes.
type Config struct {
	APIKey       string
	APISecret    string
	Username     string
	PasswordHash string
	Session      string
}

// fileConfig is the on-disk and environment shape of the credentials.
type fileConfig struct {
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
	Username  string `koanf:"username"`
	Password  string `koanf:"password"`
	Session   string `koanf:"session"`
}

// Load reads the credentials from the default locations: environment
// variables first, then the config files, last value wins.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the credentials, using path as the config file when
// non-empty. A config without an API key loads fine; requests made with
// it fail at first use.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// Environment fallback first so explicit file values win.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, err
	}

	paths := configPaths()
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	raw := &fileConfig{}
	if err := k.Unmarshal("", raw); err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:    raw.APIKey,
		APISecret: raw.APISecret,
		Username:  raw.Username,
		Session:   raw.Session,
	}
	if raw.Password != "" {
		cfg.PasswordHash = hashPassword(raw.Password)
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/lastfm/config.toml
		filepath.Join(xdg.ConfigHome, "lastfm", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func hashPassword(password string) string {
	sum := md5.Sum([]byte(password)) //nolint:gosec // mandated by the auth scheme
	return hex.EncodeToString(sum[:])
}

// HasAPIKey returns true if an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// CanAuthenticate returns true if the config carries enough to open a
// mobile session.
func (c *Config) CanAuthenticate() bool {
	return c.Username != "" && c.PasswordHash != ""
}

// HasSession returns true if a session key is configured.
func (c *Config) HasSession() bool {
	return c.Session != ""
}
