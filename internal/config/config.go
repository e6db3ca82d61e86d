// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration.
type Config struct {
	Server struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Limits struct {
		MaxKlines int `yaml:"max_klines"`
		MaxPoints int `yaml:"max_points"`
	} `yaml:"limits"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = ParseOrigins(v)
	}
	if v := os.Getenv("MAX_KLINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxKlines = n
		} else {
			log.Printf("WARN: ignoring MAX_KLINES=%q: %v", v, err)
		}
	}
	if v := os.Getenv("MAX_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxPoints = n
		} else {
			log.Printf("WARN: ignoring MAX_POINTS=%q: %v", v, err)
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Limits.MaxKlines == 0 {
		cfg.Limits.MaxKlines = 1000
	}
	if cfg.Limits.MaxPoints == 0 {
		cfg.Limits.MaxPoints = 100000
	}

	return cfg, nil
}

// ParseOrigins parses a comma-separated origin list, dropping empty entries.
func ParseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Limits.MaxKlines <= 0 {
		return fmt.Errorf("limits.max_klines must be positive")
	}
	if c.Limits.MaxPoints <= 0 {
		return fmt.Errorf("limits.max_points must be positive")
	}
	return nil
}
