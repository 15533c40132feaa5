//nolint:mnd //no magic number
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env             string
	Port            int
	WebURL          string
	SentryDsn       string
	SampleRate      float64
	Release         string
	CalendarID      string
	APIKey          string
	MaxEvents       int
	LogVerbosity    string
	RefreshInterval int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("HTTP_PORT", 3000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:3000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.CalendarID = parser.EnvStr("CALENDAR_ID", "")
	cfg.APIKey = parser.EnvStr("API_KEY", "")
	cfg.MaxEvents = parser.EnvInt("NUM_EVENTS_TO_FETCH", 10)
	cfg.LogVerbosity = parser.EnvStr("LOG_VERBOSITY", "info")
	cfg.RefreshInterval = parser.EnvInt("SECONDS_BETWEEN_CACHE_REFRESH", 60)

	return cfg
}

// Validate reports missing required configuration. The process must not
// bind its listener when this fails.
func (cfg Config) Validate() error {
	if cfg.CalendarID == "" {
		return errors.New("CALENDAR_ID environment variable not set")
	}

	if cfg.APIKey == "" {
		return errors.New("API_KEY environment variable not set")
	}

	return nil
}

// LogLevel maps LOG_VERBOSITY to a slog level, defaulting to info for
// unknown names.
func (cfg Config) LogLevel() slog.Level {
	switch strings.ToLower(cfg.LogVerbosity) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
