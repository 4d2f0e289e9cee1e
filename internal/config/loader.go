package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"app.name":    "page-index-service",
	"app.version": "0.1.0",
	"app.env":     "prod",

	"http.host":             "0.0.0.0",
	"http.port":             8080,
	"http.read_timeout":     "5s",
	"http.write_timeout":    "10s",
	"http.shutdown_timeout": "10s",

	"pagination.strict":                 true,
	"pagination.default_items_per_page": 10,

	// empty logger values are filled in by logger.New; listing them lets APP_LOGGER_* override
	"logger.level":           "",
	"logger.format":          "",
	"logger.output_target":   "",
	"logger.time_field":      "",
	"logger.time_format":     "",
	"logger.env":             "",
	"logger.service_name":    "",
	"logger.service_version": "",
	"logger.with_caller":     false,
	"logger.stacktrace":      false,
	"logger.fields":          map[string]any{},
}

// Load reads the YAML file at path, then applies APP_* environment overrides.
// A .env file next to the config file, if any, is loaded into the environment first;
// variables already set in the process win over it.
func Load(path string) (*Config, error) {
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

// Addr is the listen address of the HTTP server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
