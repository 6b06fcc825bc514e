// Package config loads settings for the xdgicons command.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "xdgicons"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "XDGICONS_"
)

// Config holds the lookup settings. Empty fields mean "use the library
// default".
type Config struct {
	Theme         string   `mapstructure:"theme" toml:"theme" env:"THEME"`
	FallbackTheme string   `mapstructure:"fallback_theme" toml:"fallback_theme" env:"FALLBACK_THEME"`
	SearchPaths   []string `mapstructure:"search_paths" toml:"search_paths" env:"SEARCH_PATHS" envSeparator:":"`
	Size          uint16   `mapstructure:"size" toml:"size" env:"SIZE"`
	Scale         uint16   `mapstructure:"scale" toml:"scale" env:"SCALE"`
	LogLevel      string   `mapstructure:"log_level" toml:"log_level" env:"LOG_LEVEL"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		FallbackTheme: "hicolor",
		Size:          48,
		Scale:         1,
		LogLevel:      "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xdgicons/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName+"."+ConfigFileExt)
}

// Load reads defaults, then the config file, then XDGICONS_* environment
// variables, each overriding the previous. With an empty path the default
// location is used and a missing file is not an error; an explicit path
// must exist.
func Load(path string) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("fallback_theme", defaults.FallbackTheme)
	v.SetDefault("size", defaults.Size)
	v.SetDefault("scale", defaults.Scale)
	v.SetDefault("log_level", defaults.LogLevel)

	resolvedPath := ""
	v.SetConfigType(ConfigFileExt)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		resolvedPath = path
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config: %w", err)
			}
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, "", fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// Validate rejects sizes the lookup cannot use.
func (c *Config) Validate() error {
	if c.Size == 0 {
		return errors.New("size must be greater than 0")
	}
	if c.Scale == 0 {
		return errors.New("scale must be greater than 0")
	}
	return nil
}

// TOML renders the config as a config file.
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(out), nil
}
