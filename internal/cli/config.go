package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Words      string
	Dictionary string
	Output     string
	LogLevel   string
	LogFile    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  os.Getenv("GUAVAGRAMS_SERVER"),
		Words:      getEnvOrDefault("GUAVAGRAMS_WORDS", "dictionaries"),
		Dictionary: getEnvOrDefault("GUAVAGRAMS_DICTIONARY", "english"),
		Output:     "text",
		LogLevel:   getEnvOrDefault("GUAVAGRAMS_LOG_LEVEL", "info"),
		LogFile:    os.Getenv("GUAVAGRAMS_LOG_FILE"),
	}
}

// Remote returns true when commands go to a server instead of running in process
func (c *Config) Remote() bool {
	return c.ServerURL != ""
}

// Validate checks flag values
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output must be text or json, got %q", c.Output)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NewLogger builds the logger. Without a log file output is discarded
// so that it never draws over the terminal UI.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
