// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = 8080
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvFile         = ".env"
)

// Config holds the server settings.
type Config struct {
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// Addr is the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the given env files (".env" when none are named) into the process
// environment and builds a Config from it. Variables already set in the
// environment win over file values. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            defaultPort,
		LogLevel:        defaultLogLevel,
		ShutdownTimeout: defaultShutdownTimeout,
		MetricsEnabled:  true,
	}

	if v := env("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		if port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
		}
		cfg.Port = port
	}

	if v := env("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := env("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", v)
		}
		cfg.ShutdownTimeout = d
	}

	if v := env("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = enabled
	}

	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
