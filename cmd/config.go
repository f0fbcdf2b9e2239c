package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

type Config struct {
	LogLevel  string
	LogFormat string
}

// LoadConfig reads the configuration through getenv, applying defaults for
// unset keys. getenv is usually os.Getenv.
func LoadConfig(getenv func(string) string) Config {
	return Config{
		LogLevel:  valueOrDefault(getenv("LOG_LEVEL"), defaultLogLevel),
		LogFormat: valueOrDefault(getenv("LOG_FORMAT"), defaultLogFormat),
	}
}

// NewLogger builds the application logger writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: expected text or json", c.LogFormat)
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
