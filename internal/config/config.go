// Package config loads optional user defaults from the environment and a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CONFIRM_ICON.
const EnvPrefix = "CONFIRM"

// Config holds user defaults. The command line always overrides them.
type Config struct {
	Icon      string
	LogLevel  string
	LogFormat string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Getenv looks up an environment variable.
type Getenv func(key string) string

// DefaultPath returns <UserConfigDir>/confirm/config.yaml, or "" if the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "confirm", "config.yaml")
}

// Load reads defaults from the config file (CONFIRM_CONFIG or DefaultPath)
// and CONFIRM_* environment variables. A missing file is not an error.
func Load(getenv Getenv) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("icon", def.Icon)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.format", def.LogFormat)

	// Bound explicitly so the injected getenv, not the process environment,
	// is consulted.
	for key, env := range map[string]string{
		"icon":       "ICON",
		"log.level":  "LOG_LEVEL",
		"log.format": "LOG_FORMAT",
	} {
		if val := getenv(EnvPrefix + "_" + env); val != "" {
			v.Set(key, val)
		}
	}

	path := getenv(EnvPrefix + "_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := readFile(v, path, explicit); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Icon:      strings.TrimSpace(v.GetString("icon")),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
