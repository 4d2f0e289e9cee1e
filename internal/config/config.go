package config

import (
	"time"

	"github.com/maxviazov/page-index-service/internal/logger"
)

// Config is the whole application configuration. Logger is skipped by Load's
// validation; logger.New validates it after filling in its defaults.
type Config struct {
	App        AppConfig           `mapstructure:"app"`
	HTTP       HTTPConfig          `mapstructure:"http"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// PaginationConfig is the page-size policy of this service.
type PaginationConfig struct {
	// Strict rejects page numbers and sizes below 1 instead of returning raw arithmetic.
	Strict bool `mapstructure:"strict"`
	// DefaultItemsPerPage applies when a request does not name a page size.
	DefaultItemsPerPage int `mapstructure:"default_items_per_page" validate:"min=1"`
}
