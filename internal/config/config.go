// Package config loads settings for the hood example programs from a YAML
// file, with environment variable overrides on top.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the example programs.
type Config struct {
	API     API     `yaml:"api"`
	Auth    Auth    `yaml:"auth"`
	Logging Logging `yaml:"logging"`
}

// API holds the endpoint and identification settings for the brokerage API.
type API struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// Auth holds the login credentials. An empty OAuthClientID selects the
// legacy token flow; empty credentials produce an unauthenticated client.
type Auth struct {
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	OAuthClientID string `yaml:"oauth_client_id"`
	OAuthScope    string `yaml:"oauth_scope"`
}

// Logging configures the program logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML configuration file at the given path, parses it, and
// applies environment variable overrides. An empty path skips the file and
// builds the config from the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOOD_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("HOOD_USER_AGENT"); v != "" {
		cfg.API.UserAgent = v
	}

	if v := os.Getenv("HOOD_USERNAME"); v != "" {
		cfg.Auth.Username = v
	}
	if v := os.Getenv("HOOD_PASSWORD"); v != "" {
		cfg.Auth.Password = v
	}
	if v := os.Getenv("HOOD_OAUTH_CLIENT_ID"); v != "" {
		cfg.Auth.OAuthClientID = v
	}
	if v := os.Getenv("HOOD_OAUTH_SCOPE"); v != "" {
		cfg.Auth.OAuthScope = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
