package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBURL              string   `koanf:"db_url" validate:"required"`
	Port               string   `koanf:"port" validate:"required,numeric"`
	RabbitMQURL        string   `koanf:"rabbitmq_url" validate:"omitempty,url"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
	LogLevel           string   `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogPretty          bool     `koanf:"log_pretty"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"gte=0"`
}

// ShutdownGrace is the time the server and worker get to drain on exit.
func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// EventsEnabled reports whether customer change events go to RabbitMQ.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

var knownKeys = map[string]struct{}{
	"db_url":               {},
	"port":                 {},
	"rabbitmq_url":         {},
	"cors_allowed_origins": {},
	"log_level":            {},
	"log_pretty":           {},
	"shutdown_timeout":     {},
}

func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("", ".", func(s, v string) (string, interface{}) {
		key := strings.ToLower(s)
		if _, ok := knownKeys[key]; !ok {
			return "", nil
		}
		if key == "cors_allowed_origins" {
			return key, splitList(v)
		}
		return key, v
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.DBURL == "" {
		log.Error().Msg("DB_URL environment variable is not set")
		return nil, errors.New("DB_URL is required")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10
	}

	if cfg.RabbitMQURL == "" {
		log.Info().Msg("RABBITMQ_URL not set, customer events are disabled")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// splitList parses a comma-separated env value, dropping blank entries.
func splitList(v string) []string {
	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
