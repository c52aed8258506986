package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SanteonNL/transparencydata/client"
)

// config is read from the environment, after .env has been loaded.
type config struct {
	APIKey      string
	BaseURL     string
	Debug       bool
	DatabaseURL string
	Timeout     time.Duration
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		APIKey:      strings.TrimSpace(getenv("TD_API_KEY")),
		BaseURL:     strings.TrimSpace(getenv("TD_BASE_URL")),
		DatabaseURL: strings.TrimSpace(getenv("TD_DATABASE_URL")),
	}

	if v := strings.TrimSpace(getenv("TD_DEBUG")); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("TD_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	if v := strings.TrimSpace(getenv("TD_HTTP_TIMEOUT")); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("TD_HTTP_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

func (c config) clientConfig(log zerolog.Logger) client.Config {
	return client.Config{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Debug:   c.Debug,
		Timeout: c.Timeout,
		Logger:  leveledLogger{log: log.With().Str("component", "http").Logger()},
	}
}
