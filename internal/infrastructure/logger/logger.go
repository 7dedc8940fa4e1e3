// Package logger wraps zerolog behind a small config surface so every
// component logs with the same service context.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, format and service tagging for the logger.
type Config struct {
	// Level is the minimum level emitted (debug, info, warn, error, fatal, panic)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is json for machines or console for humans
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller stamps each entry with its call site
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName tags every entry so aggregated logs stay attributable
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-offers"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "flight-offers",
	}
}

// Logger embeds a zerolog.Logger carrying the service context.
type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput builds a logger writing to the given writer. Tests use this
// to capture output. An unknown level falls back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithContext returns a child logger with one extra string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithProvider tags entries with the upstream provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process-wide logger, set once at startup.
var Global *Logger

// Init builds the global logger from cfg.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal installs an already-built logger as the global one.
func SetGlobal(l *Logger) {
	Global = l
}
