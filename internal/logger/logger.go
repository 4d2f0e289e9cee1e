package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// DebugLogPath receives a copy of every event when Env is dev and Level is debug.
var DebugLogPath = "logs/debug.log"

var (
	debugMu   sync.Mutex
	debugFile *os.File
)

// Close releases the debug log file opened by New, if any. Safe to call more than once.
func Close() error {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile == nil {
		return nil
	}
	err := debugFile.Close()
	debugFile = nil
	return err
}

type LoggerConfig struct {
	Level          string         `mapstructure:"level" json:"level,omitempty" validate:"oneof=trace debug info warn error"`
	Format         string         `mapstructure:"format" json:"format,omitempty" validate:"oneof=json console"`
	OutputTarget   string         `mapstructure:"output_target" json:"outputTarget,omitempty" validate:"oneof=stdout stderr"`
	TimeField      string         `mapstructure:"time_field" json:"timeField,omitempty"`
	TimeFormat     string         `mapstructure:"time_format" json:"timeFormat,omitempty" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string         `mapstructure:"service_name" json:"serviceName,omitempty"`
	ServiceVersion string         `mapstructure:"service_version" json:"serviceVersion,omitempty"`
	Env            string         `mapstructure:"env" json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller     bool           `mapstructure:"with_caller" json:"withCaller,omitempty"`
	Stacktrace     bool           `mapstructure:"stacktrace" json:"stacktrace,omitempty"`
	Fields         map[string]any `mapstructure:"fields" json:"fields,omitempty"`
}

// zerolog wants layouts (or its unix markers), the config speaks in names.
var timeFormats = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"unix":        zerolog.TimeFormatUnix,
	"unix_ms":     zerolog.TimeFormatUnixMs,
}

// New builds the process logger and sets the global level. cfg is completed with
// defaults in place, so callers can log the effective settings afterwards.
func New(cfg *LoggerConfig) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger level: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = timeFormats[cfg.TimeFormat]
	if cfg.Stacktrace {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	}

	logger := zerolog.New(cfg.writer()).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if cfg.Stacktrace {
		logger = logger.With().Stack().Logger()
	}
	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}

	zerolog.SetGlobalLevel(level)
	return logger, nil
}

func (c *LoggerConfig) writer() io.Writer {
	var out io.Writer = os.Stdout
	if c.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if c.Format == "console" {
		layout := timeFormats[c.TimeFormat]
		if layout == zerolog.TimeFormatUnix || layout == zerolog.TimeFormatUnixMs {
			layout = time.RFC3339
		}
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: layout}
	}

	if c.Env != "dev" || c.Level != "debug" {
		return out
	}
	// dev + debug: tee into a file for full history; console only if the file is unusable
	if err := os.MkdirAll(filepath.Dir(DebugLogPath), 0o755); err != nil {
		return out
	}
	file, err := os.OpenFile(DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return out
	}
	// a second New replaces the file; the previous one is no longer written to
	_ = Close()
	debugMu.Lock()
	debugFile = file
	debugMu.Unlock()
	return zerolog.MultiLevelWriter(out, file)
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.OutputTarget == "" {
		c.OutputTarget = "stdout"
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "page-index-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.1.0"
	}
	if c.Fields == nil {
		c.Fields = make(map[string]any)
	}
}
