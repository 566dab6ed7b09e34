package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// DefaultFile is the optional YAML file Load looks for when main doesn't
// override it.
const DefaultFile = "config.yaml"

// Config holds everything the process reads from its environment. It is built
// once in main and handed to the packages that need it; nothing reads
// os.Getenv after startup.
type Config struct {
	Port         string
	DatabaseURL  string
	SessionTTL   time.Duration
	CookieSecure bool
}

// fileConfig is the YAML shape of the non-secret settings. Durations are
// strings ("1h", "30m") so the file stays human-editable.
type fileConfig struct {
	Port         string `yaml:"port"`
	SessionTTL   string `yaml:"session_ttl"`
	CookieSecure *bool  `yaml:"cookie_secure"`
}

// Load builds the process configuration. Precedence, lowest to highest:
// built-in defaults, the YAML file (if present), environment variables.
// .env.local is pulled in first so local dev can keep secrets out of the
// shell. DATABASE_URL is required; everything else has a default.
func Load(file string) (*Config, error) {
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		Port:       "3000",
		SessionTTL: time.Hour,
	}

	if file != "" {
		if err := applyFile(cfg, file); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "true" || v == "1"
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	return cfg, nil
}

func applyFile(cfg *Config, file string) error {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.SessionTTL != "" {
		ttl, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("%s: session_ttl: %w", file, err)
		}
		cfg.SessionTTL = ttl
	}
	if fc.CookieSecure != nil {
		cfg.CookieSecure = *fc.CookieSecure
	}
	return nil
}
