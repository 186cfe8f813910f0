package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Mind     MindConfig     `json:"mind"`
}

type ServerConfig struct {
	Port     int    `json:"port"`
	LogLevel string `json:"log_level"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
}

type PostgresConfig struct {
	DSN string `json:"dsn"`
}

type RedisConfig struct {
	URL string `json:"url"`
}

// MindConfig tunes the decision and learning engines.
type MindConfig struct {
	// Temperature of style selection. Zero keeps the model default.
	Temperature float64 `json:"temperature"`
	// WeightsPath points at a saved decision model artifact. Empty or
	// missing falls back to the built-in model.
	WeightsPath string `json:"weights_path"`
	// TranslationPolicy is "mood" or "threshold".
	TranslationPolicy string `json:"translation_policy"`
	// HistoryLimit caps the per-creature interaction history kept in
	// Redis. Zero uses the default.
	HistoryLimit int `json:"history_limit"`
}

// envVarRe matches ${VAR} and ${VAR:default} patterns.
var envVarRe = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// Load reads a JSON config file and substitutes environment variable references.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Substitute ${VAR} and ${VAR:default} with environment values.
	resolved := envVarRe.ReplaceAllStringFunc(string(data), func(match string) string {
		parts := envVarRe.FindStringSubmatch(match)
		name := parts[1]
		defaultVal := parts[2]
		if v := os.Getenv(name); v != "" {
			return v
		}
		return defaultVal
	})

	var cfg Config
	if err := json.Unmarshal([]byte(resolved), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Mind.TranslationPolicy == "" {
		c.Mind.TranslationPolicy = "mood"
	}
	if c.Mind.HistoryLimit <= 0 {
		c.Mind.HistoryLimit = 200
	}
}
